package database

import (
	"fmt"
	"time"

	"github.com/qattan/daily-post-bot/internal/domain"
	"github.com/qattan/daily-post-bot/internal/domain/contract"
	"github.com/qattan/daily-post-bot/internal/domain/entity"
)

type dailyPostRepo struct {
	db    dbConn
	store *RecordStore
}

// NewDailyPostRepo creates the daily post schedule repository over db.
func NewDailyPostRepo(db *DB) contract.DailyPostRepo {
	return newDailyPostRepo(db.conn)
}

func newDailyPostRepo(db dbConn) *dailyPostRepo {
	return &dailyPostRepo{
		db: db,
		store: NewRecordStore(db, Schema{
			Table:        "daily_posts",
			KeyColumns:   []string{"server", "post_type"},
			ValueColumns: []string{"channel", "daily_time", "last_send_date", "use_arabic"},
			Defaults:     []any{"", "", domain.NeverSent, int64(0)},
		}),
	}
}

func (r *dailyPostRepo) Get(serverID, postType string) (entity.DailyPost, domain.LookupStatus) {
	lookup := r.store.Get(serverID, postType)

	return entity.DailyPost{
		ServerID:     serverID,
		PostType:     postType,
		ChannelID:    asString(lookup.Values[0]),
		DailyTime:    asString(lookup.Values[1]),
		LastSendDate: asString(lookup.Values[2]),
		UseArabic:    asBool(lookup.Values[3]),
	}, lookup.Status
}

func (r *dailyPostRepo) Upsert(post entity.DailyPost) error {
	// Ordering in GetDue relies on canonical zero-padded times, so reject
	// anything that was not normalized first.
	if len(post.DailyTime) != len(domain.TimeLayout) {
		return fmt.Errorf("daily time must be canonical HH:MM, got %q", post.DailyTime)
	}
	if _, err := time.Parse(domain.TimeLayout, post.DailyTime); err != nil {
		return fmt.Errorf("daily time must be canonical HH:MM, got %q", post.DailyTime)
	}

	lastSendDate := post.LastSendDate
	if lastSendDate == "" {
		lastSendDate = domain.NeverSent
	}

	return r.store.Upsert(
		[]any{post.ServerID, post.PostType},
		[]any{post.ChannelID, post.DailyTime, lastSendDate, boolToInt(post.UseArabic)},
	)
}

func (r *dailyPostRepo) Delete(serverID, postType string) error {
	return r.store.Delete(serverID, postType)
}

// GetDue selects every schedule whose trigger time has passed today and
// which has not yet been delivered today. Both comparisons are on canonical
// zero-padded strings, so lexicographic order is chronological order. An
// entry stays due for the rest of its day until acknowledged.
func (r *dailyPostRepo) GetDue(now time.Time) ([]entity.DailyPost, error) {
	now = now.UTC()

	query := `
		SELECT server, post_type, channel, daily_time, last_send_date, use_arabic
		FROM daily_posts
		WHERE daily_time <= ? AND last_send_date < ?
	`

	rows, err := r.db.Query(query, now.Format(domain.TimeLayout), now.Format(domain.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to get due posts: %w", err)
	}
	defer rows.Close()

	var posts []entity.DailyPost
	for rows.Next() {
		var post entity.DailyPost
		var useArabic int64
		err := rows.Scan(
			&post.ServerID,
			&post.PostType,
			&post.ChannelID,
			&post.DailyTime,
			&post.LastSendDate,
			&useArabic,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due post: %w", err)
		}
		post.UseArabic = useArabic != 0
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate due posts: %w", err)
	}

	return posts, nil
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	}
	return ""
}

func asBool(v any) bool {
	switch n := v.(type) {
	case int64:
		return n != 0
	case bool:
		return n
	}
	return false
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
