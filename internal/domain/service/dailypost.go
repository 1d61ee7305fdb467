package service

import (
	"fmt"
	"time"

	"github.com/slack-go/slack"

	"github.com/qattan/daily-post-bot/internal/domain"
	"github.com/qattan/daily-post-bot/internal/domain/contract"
	"github.com/qattan/daily-post-bot/internal/domain/entity"
)

type dailyPostService struct {
	repo        contract.DailyPostRepo
	slackClient contract.SlackClient
	now         func() time.Time
}

func newDailyPost(repo contract.DailyPostRepo, slackClient contract.SlackClient) *dailyPostService {
	return &dailyPostService{
		repo:        repo,
		slackClient: slackClient,
		now:         time.Now,
	}
}

// Schedule creates or replaces the workspace's schedule for one post type.
// The last-send date is reset to the never-sent sentinel, so the first
// delivery happens on the next sweep once the daily time has passed.
func (s *dailyPostService) Schedule(serverID, postType, channelID, timeInput string, arabic bool) (*entity.ScheduleResult, error) {
	pt, ok := domain.ParsePostType(postType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPostType, postType)
	}

	dailyTime, err := domain.NormalizeTime(timeInput)
	if err != nil {
		return nil, err
	}

	// Refuse channels the bot cannot resolve now; the scheduler would
	// otherwise skip the entry forever without anyone noticing.
	if _, err := s.slackClient.GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: channelID}); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrChannelNotFound, channelID)
	}

	post := entity.DailyPost{
		ServerID:     serverID,
		PostType:     string(pt),
		ChannelID:    channelID,
		DailyTime:    dailyTime,
		LastSendDate: domain.NeverSent,
		UseArabic:    arabic,
	}
	if err := s.repo.Upsert(post); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}

	return &entity.ScheduleResult{
		ChannelID:    channelID,
		DailyTime:    dailyTime,
		MinutesUntil: domain.MinutesUntil(s.now(), dailyTime),
	}, nil
}

// Stop deletes the schedule for one post type and reports whether one was
// actually configured.
func (s *dailyPostService) Stop(serverID, postType string) (bool, error) {
	pt, ok := domain.ParsePostType(postType)
	if !ok {
		return false, fmt.Errorf("%w: %q", domain.ErrUnknownPostType, postType)
	}

	_, status := s.repo.Get(serverID, string(pt))
	if !status.Stored() {
		return false, nil
	}

	if err := s.repo.Delete(serverID, string(pt)); err != nil {
		return true, fmt.Errorf("failed to delete schedule: %w", err)
	}

	return true, nil
}

// Status lists the schedules configured for a workspace.
func (s *dailyPostService) Status(serverID string) []entity.DailyPost {
	var posts []entity.DailyPost
	for _, pt := range domain.PostTypes {
		post, status := s.repo.Get(serverID, string(pt))
		if status.Stored() {
			posts = append(posts, post)
		}
	}
	return posts
}
