package models

import "time"

// MoodEntry is a persisted journal entry: one categorical mood rating with
// optional notes, tags, and context captured at a point in time.
type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date"`      // calendar day the entry belongs to
	Mood      string    `json:"mood"`      // one of the seven scale labels
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"` // full capture time, UTC
	Tags      []string  `json:"tags,omitempty"`
	Location  string    `json:"location,omitempty"`
	Activity  string    `json:"activity,omitempty"`
	Weather   string    `json:"weather,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateMoodRequest is the request to record a new mood entry.
type CreateMoodRequest struct {
	Mood      string     `json:"mood" binding:"required"`
	Notes     string     `json:"notes"`
	Timestamp *time.Time `json:"timestamp"`
	Date      string     `json:"date"` // "2006-01-02"; derived from timestamp when empty
	Tags      []string   `json:"tags"`
	Location  string     `json:"location"`
	Activity  string     `json:"activity"`
	Weather   string     `json:"weather"`
}

// UpdateMoodRequest is the request to update an existing mood entry.
// Nil fields are left unchanged.
type UpdateMoodRequest struct {
	Mood      *string    `json:"mood"`
	Notes     *string    `json:"notes"`
	Timestamp *time.Time `json:"timestamp"`
	Tags      []string   `json:"tags"`
	Location  *string    `json:"location"`
	Activity  *string    `json:"activity"`
	Weather   *string    `json:"weather"`
}

// MoodRecord is the canonical record shape consumed by the analytics engine.
// The persistence collaborator may hand back native times or string-encoded
// values; both are accepted and normalized exactly once at ingestion. When a
// native field is zero the corresponding Raw string is parsed instead.
type MoodRecord struct {
	Date         time.Time
	DateRaw      string // "2006-01-02", used when Date is zero
	Mood         string
	Timestamp    time.Time
	TimestampRaw string // RFC 3339, used when Timestamp is zero
	Notes        string
	Tags         []string
	Location     string
	Activity     string
	Weather      string
}

// SkippedRecord describes one input record that could not be aggregated.
type SkippedRecord struct {
	Index  int    `json:"index"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Diagnostics reports data-quality issues encountered while computing a
// result. Malformed records are skipped, never fatal.
type Diagnostics struct {
	TotalRecords int             `json:"total_records"`
	SkippedCount int             `json:"skipped_count"`
	Skipped      []SkippedRecord `json:"skipped,omitempty"`
}
