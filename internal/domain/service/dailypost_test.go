package service

import (
	"errors"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/qattan/daily-post-bot/internal/domain"
	"github.com/qattan/daily-post-bot/internal/domain/entity"
)

func newTestDailyPost(t *testing.T, m allMocks, now time.Time) *dailyPostService {
	t.Helper()

	s := newDailyPost(m.mockRepo, m.mockSlackClient)
	require.NotNil(t, s)
	s.now = func() time.Time { return now }

	return s
}

func TestDailyPostService_Schedule(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := newTestDailyPost(t, m, now)

	m.mockSlackClient.EXPECT().
		GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: "C123456789"}).
		Return(&slack.Channel{}, nil)

	expected := entity.DailyPost{
		ServerID:     "T123456789",
		PostType:     "dua",
		ChannelID:    "C123456789",
		DailyTime:    "14:00",
		LastSendDate: domain.NeverSent,
		UseArabic:    true,
	}
	m.mockRepo.EXPECT().Upsert(expected).Return(nil)

	result, err := s.Schedule("T123456789", "dua", "C123456789", "2pm", true)
	require.NoError(t, err)

	assert.Equal(t, "14:00", result.DailyTime)
	assert.Equal(t, "C123456789", result.ChannelID)
	assert.Equal(t, 120, result.MinutesUntil)
}

func TestDailyPostService_ScheduleTimeAlreadyPassed(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	now := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)
	s := newTestDailyPost(t, m, now)

	m.mockSlackClient.EXPECT().GetConversationInfo(gomock.Any()).Return(&slack.Channel{}, nil)
	m.mockRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	result, err := s.Schedule("T123456789", "dua", "C123456789", "14:00", false)
	require.NoError(t, err)

	// Already passed today means imminent, not negative.
	assert.Equal(t, 0, result.MinutesUntil)
}

func TestDailyPostService_ScheduleUnparsableTime(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestDailyPost(t, m, time.Now())

	_, err := s.Schedule("T123456789", "dua", "C123456789", "25:99", false)
	require.ErrorIs(t, err, domain.ErrUnparsableTime)
}

func TestDailyPostService_ScheduleUnknownPostType(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestDailyPost(t, m, time.Now())

	_, err := s.Schedule("T123456789", "quran", "C123456789", "14:00", false)
	require.ErrorIs(t, err, domain.ErrUnknownPostType)
}

func TestDailyPostService_ScheduleChannelNotFound(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestDailyPost(t, m, time.Now())

	m.mockSlackClient.EXPECT().
		GetConversationInfo(gomock.Any()).
		Return(nil, errors.New("channel_not_found"))

	_, err := s.Schedule("T123456789", "dua", "C000000000", "14:00", false)
	require.ErrorIs(t, err, domain.ErrChannelNotFound)
}

func TestDailyPostService_ScheduleUpsertFailure(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestDailyPost(t, m, time.Now())

	m.mockSlackClient.EXPECT().GetConversationInfo(gomock.Any()).Return(&slack.Channel{}, nil)
	m.mockRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("database is locked"))

	// Write failures are reported to the requester, unlike read failures.
	_, err := s.Schedule("T123456789", "dua", "C123456789", "14:00", false)
	require.Error(t, err)
}

func TestDailyPostService_Stop(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestDailyPost(t, m, time.Now())

	stored := entity.DailyPost{ServerID: "T123456789", PostType: "dua", ChannelID: "C123456789"}
	m.mockRepo.EXPECT().Get("T123456789", "dua").Return(stored, domain.LookupFound)
	m.mockRepo.EXPECT().Delete("T123456789", "dua").Return(nil)

	existed, err := s.Stop("T123456789", "dua")
	require.NoError(t, err)
	assert.True(t, existed)
}

func TestDailyPostService_StopNothingScheduled(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestDailyPost(t, m, time.Now())

	m.mockRepo.EXPECT().
		Get("T123456789", "hadith").
		Return(entity.DailyPost{}, domain.LookupNotFound)

	existed, err := s.Stop("T123456789", "hadith")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestDailyPostService_Status(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestDailyPost(t, m, time.Now())

	duaPost := entity.DailyPost{ServerID: "T123456789", PostType: "dua", ChannelID: "C1", DailyTime: "09:00"}
	m.mockRepo.EXPECT().Get("T123456789", "dua").Return(duaPost, domain.LookupFound)
	m.mockRepo.EXPECT().Get("T123456789", "hadith").Return(entity.DailyPost{}, domain.LookupNotFound)

	posts := s.Status("T123456789")
	require.Len(t, posts, 1)
	assert.Equal(t, "dua", posts[0].PostType)
}
