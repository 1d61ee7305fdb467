package contract

import (
	"time"

	"github.com/qattan/daily-post-bot/internal/domain"
	"github.com/qattan/daily-post-bot/internal/domain/entity"
)

// DailyPostRepo defines the contract for the daily post schedule repository.
type DailyPostRepo interface {
	// Get returns the schedule for (serverID, postType), or a defaults-filled
	// entry when no row exists or the backend is unreachable. The status
	// tells those cases apart; reads never fail.
	Get(serverID, postType string) (entity.DailyPost, domain.LookupStatus)

	// Upsert inserts or replaces the schedule keyed by (ServerID, PostType).
	// An empty LastSendDate is normalized to the never-sent sentinel.
	Upsert(post entity.DailyPost) error

	// Delete removes the schedule. Deleting a missing key is not an error.
	Delete(serverID, postType string) error

	// GetDue returns every schedule whose daily time has passed now's UTC
	// wall clock and which has not been delivered on now's UTC date.
	GetDue(now time.Time) ([]entity.DailyPost, error)
}
