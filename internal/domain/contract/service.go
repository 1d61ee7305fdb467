package contract

import (
	"github.com/qattan/daily-post-bot/internal/domain/entity"
)

// DailyPostService is the surface the command handlers talk to.
type DailyPostService interface {
	// Schedule creates or replaces the daily post schedule for a workspace
	// and post type. timeInput is free-form and normalized before storage.
	Schedule(serverID, postType, channelID, timeInput string, arabic bool) (*entity.ScheduleResult, error)

	// Stop deletes the schedule and reports whether one existed.
	Stop(serverID, postType string) (bool, error)

	// Status lists the workspace's configured schedules.
	Status(serverID string) []entity.DailyPost
}
