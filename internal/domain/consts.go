package domain

// PostType enumerates the supported daily post categories.
type PostType string

const (
	PostTypeDua    PostType = "dua"
	PostTypeHadith PostType = "hadith"
)

// PostTypes lists every supported category, in presentation order.
var PostTypes = []PostType{PostTypeDua, PostTypeHadith}

// ParsePostType matches user input against the known post types.
func ParsePostType(s string) (PostType, bool) {
	switch PostType(s) {
	case PostTypeDua:
		return PostTypeDua, true
	case PostTypeHadith:
		return PostTypeHadith, true
	}
	return "", false
}

// NeverSent is the sentinel last-send date for schedules that have not
// delivered yet. It sorts below every real date, so a fresh schedule is
// immediately eligible.
const NeverSent = "1900-01-01"

// DateLayout is the calendar date format used for last_send_date.
const DateLayout = "2006-01-02"

// TimeLayout is the canonical time-of-day format stored for schedules.
const TimeLayout = "15:04"

// LookupStatus tells a caller how a stored record lookup was resolved.
// Reads never fail: a missing row and an unreachable backend both fall back
// to defaults, and callers that care can tell the cases apart through this.
type LookupStatus int

const (
	// LookupFound means the row exists and the values were read from storage.
	LookupFound LookupStatus = iota
	// LookupNotFound means no row matched and defaults were returned.
	LookupNotFound
	// LookupUnavailable means the backend could not be queried and defaults
	// were returned.
	LookupUnavailable
)

// Stored reports whether the values came from an actual row.
func (s LookupStatus) Stored() bool { return s == LookupFound }
