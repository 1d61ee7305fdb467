package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/qattan/daily-post-bot/internal/domain"
	"github.com/qattan/daily-post-bot/internal/domain/contract"
	"github.com/qattan/daily-post-bot/mocks"
)

type allMocks struct {
	mockRepo        *mocks.MockDailyPostRepo
	mockSlackClient *mocks.MockSlackClient
	mockDuaProvider *mocks.MockContentProvider
	mockHadith      *mocks.MockContentProvider
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockRepo:        mocks.NewMockDailyPostRepo(ctrl),
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
		mockDuaProvider: mocks.NewMockContentProvider(ctrl),
		mockHadith:      mocks.NewMockContentProvider(ctrl),
	}

	return
}

func (m allMocks) providers() map[domain.PostType]contract.ContentProvider {
	return map[domain.PostType]contract.ContentProvider{
		domain.PostTypeDua:    m.mockDuaProvider,
		domain.PostTypeHadith: m.mockHadith,
	}
}

// newTestScheduler builds a scheduler pinned to a fixed clock.
func newTestScheduler(t *testing.T, m allMocks, now time.Time) *Scheduler {
	t.Helper()

	s := newScheduler(m.mockRepo, m.mockSlackClient, m.providers(), zap.NewNop())
	require.NotNil(t, s)
	s.now = func() time.Time { return now }

	return s
}
