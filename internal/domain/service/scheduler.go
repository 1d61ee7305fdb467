package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/qattan/daily-post-bot/internal/domain"
	"github.com/qattan/daily-post-bot/internal/domain/contract"
	"github.com/qattan/daily-post-bot/internal/domain/entity"
)

// pollInterval bounds worst-case delivery latency; it only needs to be
// short relative to a day.
const pollInterval = 50 * time.Second

const readyRetryInterval = 5 * time.Second

// maxSectionLen keeps section blocks under Slack's text limit.
const maxSectionLen = 2900

// Scheduler drives the delivery sweep: every interval it loads the due
// schedules from storage, dispatches each one, and records the delivery.
// Because due-ness lives in the database and not in timers, schedules
// survive process restarts.
type Scheduler struct {
	repo        contract.DailyPostRepo
	slackClient contract.SlackClient
	providers   map[domain.PostType]contract.ContentProvider
	log         *zap.Logger
	interval    time.Duration
	now         func() time.Time
}

func newScheduler(repo contract.DailyPostRepo, slackClient contract.SlackClient,
	providers map[domain.PostType]contract.ContentProvider, log *zap.Logger) *Scheduler {
	return &Scheduler{
		repo:        repo,
		slackClient: slackClient,
		providers:   providers,
		log:         log,
		interval:    pollInterval,
		now:         time.Now,
	}
}

// Run executes sweep cycles until ctx is canceled. The first cycle waits
// for the Slack client to be usable; cycles never overlap because each
// tick completes before the next one is taken off the ticker.
func (s *Scheduler) Run(ctx context.Context) {
	if err := s.waitForReady(ctx); err != nil {
		s.log.Info("scheduler stopping before first cycle", zap.Error(err))
		return
	}
	s.log.Info("scheduler started", zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopping")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// waitForReady blocks until the Slack token authenticates, so no cycle
// runs while the client cannot resolve channels.
func (s *Scheduler) waitForReady(ctx context.Context) error {
	for {
		_, err := s.slackClient.AuthTest()
		if err == nil {
			return nil
		}
		s.log.Warn("slack client not ready, retrying", zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readyRetryInterval):
		}
	}
}

// tick runs one sweep cycle. A single task's failure never aborts the
// remaining due tasks.
func (s *Scheduler) tick(ctx context.Context) {
	now := s.now().UTC()

	due, err := s.repo.GetDue(now)
	if err != nil {
		s.log.Error("failed to load due posts", zap.Error(err))
		return
	}

	for _, post := range due {
		s.dispatch(ctx, post, now)
	}
}

// dispatch delivers one due schedule: resolve the channel, render the
// content, send, then acknowledge by advancing last_send_date to today.
// An unresolvable channel is skipped silently and stays due, so it is
// retried every cycle until it works or the schedule is deleted. A render
// failure is not retried: a placeholder is sent and the day is still
// acknowledged.
func (s *Scheduler) dispatch(ctx context.Context, post entity.DailyPost, now time.Time) {
	channel, err := s.slackClient.GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: post.ChannelID})
	if err != nil {
		s.log.Debug("channel not resolvable, will retry next cycle",
			zap.String("channel", post.ChannelID), zap.Error(err))
		return
	}
	if channel.IsArchived || !channel.IsMember {
		s.log.Debug("cannot post to channel, will retry next cycle",
			zap.String("channel", post.ChannelID),
			zap.Bool("archived", channel.IsArchived), zap.Bool("member", channel.IsMember))
		return
	}

	options := s.render(ctx, post)

	if _, _, err := s.slackClient.PostMessage(post.ChannelID, options...); err != nil {
		s.log.Error("failed to post message",
			zap.String("server", post.ServerID),
			zap.String("post_type", post.PostType),
			zap.String("channel", post.ChannelID),
			zap.Error(err))
		return
	}

	post.LastSendDate = now.Format(domain.DateLayout)
	if err := s.repo.Upsert(post); err != nil {
		// Not fatal: the entry stays due and the post will be sent again
		// next cycle, which the user sees as a duplicate, not a loss.
		s.log.Error("failed to record delivery",
			zap.String("server", post.ServerID),
			zap.String("post_type", post.PostType),
			zap.Error(err))
		return
	}

	s.log.Info("daily post delivered",
		zap.String("server", post.ServerID),
		zap.String("post_type", post.PostType),
		zap.String("channel", post.ChannelID))
}

// render produces the message options for a schedule, falling back to a
// user-visible placeholder when the provider fails.
func (s *Scheduler) render(ctx context.Context, post entity.DailyPost) []slack.MsgOption {
	provider, ok := s.providers[domain.PostType(post.PostType)]
	if !ok {
		s.log.Warn("no provider for post type", zap.String("post_type", post.PostType))
		return placeholderOptions(post.PostType)
	}

	rendered, err := provider.Render(ctx, post.UseArabic)
	if err != nil {
		s.log.Warn("failed to render post, sending placeholder",
			zap.String("post_type", post.PostType), zap.Error(err))
		return placeholderOptions(post.PostType)
	}

	return messageOptions(rendered)
}

func placeholderOptions(postType string) []slack.MsgOption {
	return []slack.MsgOption{
		slack.MsgOptionText(fmt.Sprintf("Error: Could not find a %s to post", postType), false),
	}
}

func messageOptions(post *entity.Post) []slack.MsgOption {
	body := post.Body
	if len(body) > maxSectionLen {
		cut := maxSectionLen
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut] + "…"
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, post.Title, true, false)),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, body, false, false), nil, nil),
	}
	if post.Footer != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, post.Footer, false, false)))
	}

	return []slack.MsgOption{
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(post.Title, false),
	}
}
