package entity

// DailyPost is one recurring post schedule. A workspace has at most one
// schedule per post type, so (ServerID, PostType) is the row key.
type DailyPost struct {
	ServerID     string `json:"server" db:"server"`
	PostType     string `json:"post_type" db:"post_type"`
	ChannelID    string `json:"channel" db:"channel"`
	DailyTime    string `json:"daily_time" db:"daily_time"`         // canonical HH:MM, UTC
	LastSendDate string `json:"last_send_date" db:"last_send_date"` // YYYY-MM-DD, domain.NeverSent until first delivery
	UseArabic    bool   `json:"use_arabic" db:"use_arabic"`
}

// Post is rendered content ready to be delivered to a channel.
type Post struct {
	Title  string
	Body   string
	Footer string
}

// ScheduleResult describes a successfully created or replaced schedule.
type ScheduleResult struct {
	ChannelID    string
	DailyTime    string // canonical HH:MM, UTC
	MinutesUntil int    // until the first delivery; 0 means imminent
}
