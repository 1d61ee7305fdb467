package service

import (
	"go.uber.org/zap"

	"github.com/qattan/daily-post-bot/internal/domain"
	"github.com/qattan/daily-post-bot/internal/domain/contract"
)

type Services struct {
	DailyPost contract.DailyPostService
	Scheduler *Scheduler
}

func New(repo contract.DailyPostRepo, slackClient contract.SlackClient,
	providers map[domain.PostType]contract.ContentProvider, log *zap.Logger) *Services {
	return &Services{
		DailyPost: newDailyPost(repo, slackClient),
		Scheduler: newScheduler(repo, slackClient, providers, log),
	}
}
