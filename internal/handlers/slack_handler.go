package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/slack-go/slack"

	"github.com/qattan/daily-post-bot/internal/domain"
	"github.com/qattan/daily-post-bot/internal/domain/contract"
	slackcmd "github.com/qattan/daily-post-bot/internal/slack"
)

type SlackHandler struct {
	dailyPostService contract.DailyPostService
	signingSecret    string
}

func New(dailyPostService contract.DailyPostService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		dailyPostService: dailyPostService,
		signingSecret:    signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSchedule:
		return h.handleSchedule(cmd, slashCmd)
	case slackcmd.CmdStop:
		return h.handleStop(cmd, slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleSchedule(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 3 {
		return h.createErrorResponse("Usage: `/dailypost schedule <dua|hadith> #channel <time> [arabic]`")
	}

	postType := strings.ToLower(cmd.Args[0])
	channelID := parseChannelMention(cmd.Args[1])
	if channelID == "" {
		return h.createErrorResponse("Please mention the destination channel: `/dailypost schedule dua #channel 2pm`")
	}

	// The time may span several words ("2:04 pm"); an optional trailing
	// "arabic" flag requests the Arabic variant.
	timeArgs := cmd.Args[2:]
	arabic := false
	if last := strings.ToLower(timeArgs[len(timeArgs)-1]); last == "arabic" {
		arabic = true
		timeArgs = timeArgs[:len(timeArgs)-1]
	}
	if len(timeArgs) == 0 {
		return h.createErrorResponse("Usage: `/dailypost schedule <dua|hadith> #channel <time> [arabic]`")
	}
	timeInput := strings.Join(timeArgs, " ")

	result, err := h.dailyPostService.Schedule(slashCmd.TeamID, postType, channelID, timeInput, arabic)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownPostType):
			return h.createErrorResponse("Unknown post type. Use `dua` or `hadith`.")
		case errors.Is(err, domain.ErrUnparsableTime):
			return h.createErrorResponse("⚠️ *Invalid time format.* Please use 24-hour format (e.g. 14:04) or 12-hour format (e.g. 2:04 pm).")
		case errors.Is(err, domain.ErrChannelNotFound):
			return h.createErrorResponse(fmt.Sprintf("⚠️ *Cannot access <#%s>.* Please invite the bot to the channel, then try again.", channelID))
		default:
			return h.createErrorResponse(fmt.Sprintf("Failed to save the schedule: %v", err))
		}
	}

	message := fmt.Sprintf("✅ *Success! A random %s will be sent in <#%s> every day at %s UTC.*\n",
		postType, result.ChannelID, result.DailyTime)
	if result.MinutesUntil <= 0 {
		message += "The first post will be sent soon, and subsequent posts will occur daily at the chosen time."
	} else {
		message += fmt.Sprintf("Next post in %dh %dm.", result.MinutesUntil/60, result.MinutesUntil%60)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         message,
	}
}

func (h *SlackHandler) handleStop(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `/dailypost stop <dua|hadith>`")
	}

	postType := strings.ToLower(cmd.Args[0])

	existed, err := h.dailyPostService.Stop(slashCmd.TeamID, postType)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPostType) {
			return h.createErrorResponse("Unknown post type. Use `dua` or `hadith`.")
		}
		return h.createErrorResponse(fmt.Sprintf("Failed to cancel the schedule: %v", err))
	}

	if !existed {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("*No daily %s post was scheduled.* There's nothing to stop.", postType),
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("✅ *Successfully canceled the daily %s post schedule.* "+
			"You will no longer receive daily %s posts.", postType, postType),
	}
}

func (h *SlackHandler) handleStatus(slashCmd *slack.SlashCommand) *slack.Msg {
	posts := h.dailyPostService.Status(slashCmd.TeamID)
	if len(posts) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No daily posts are scheduled. Use `/dailypost schedule` to create one.",
		}
	}

	var status strings.Builder
	status.WriteString("*Scheduled daily posts:*\n")
	for _, post := range posts {
		status.WriteString(fmt.Sprintf("• %s in <#%s> at %s UTC", post.PostType, post.ChannelID, post.DailyTime))
		if post.UseArabic {
			status.WriteString(" (Arabic)")
		}
		if post.LastSendDate != domain.NeverSent {
			status.WriteString(fmt.Sprintf(", last sent %s", post.LastSendDate))
		}
		status.WriteString("\n")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         status.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         message,
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.createErrorResponse(message))
}

// parseChannelMention extracts the channel ID from a slash-command channel
// mention like <#C123456789|general>. A bare ID is accepted too.
func parseChannelMention(mention string) string {
	s := strings.TrimSpace(mention)
	s = strings.TrimPrefix(s, "<#")
	s = strings.TrimSuffix(s, ">")
	if name := strings.Index(s, "|"); name >= 0 {
		s = s[:name]
	}
	if s == "" || !strings.HasPrefix(s, "C") {
		return ""
	}
	return s
}
