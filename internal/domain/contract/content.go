package contract

import (
	"context"

	"github.com/qattan/daily-post-bot/internal/domain/entity"
)

// ContentProvider produces the content for one post type. The scheduler
// picks the provider by the schedule's post type; arabic selects the
// alternate-language variant where the provider supports one.
type ContentProvider interface {
	Render(ctx context.Context, arabic bool) (*entity.Post, error)
}
