package analytics

import (
	"errors"
	"fmt"
	"time"
)

// DefaultUTCOffsetHours is the reference offset applied before any
// hour-of-day extraction. The journal's users record in UTC-3.
const DefaultUTCOffsetHours = -3

// ErrInvalidRange reports ill-formed range parameters (start after end, or a
// calendar month/week that does not exist). It marks caller misuse and maps
// to a client error, unlike data-quality issues which degrade gracefully.
var ErrInvalidRange = errors.New("invalid range parameters")

// Engine computes mood analytics over ingested datasets. The zero value is
// not usable; construct with New. An Engine is immutable after construction
// and safe for concurrent use.
type Engine struct {
	offset time.Duration // reference offset added to UTC timestamps
}

// Config holds engine construction parameters.
type Config struct {
	// UTCOffsetHours is the fixed reference offset for hour-of-day views.
	UTCOffsetHours int
}

// New creates an Engine with the given configuration.
func New(cfg Config) *Engine {
	return &Engine{offset: time.Duration(cfg.UTCOffsetHours) * time.Hour}
}

// NewDefault creates an Engine with the default reference offset.
func NewDefault() *Engine {
	return New(Config{UTCOffsetHours: DefaultUTCOffsetHours})
}

// localTime is the single normalization point for timestamp-based bucketing.
// Every hour-of-day view goes through here; no call site applies its own
// offset arithmetic.
func (e *Engine) localTime(ts time.Time) time.Time {
	return ts.UTC().Add(e.offset)
}

// LocalDay resolves the calendar date a capture time belongs to under the
// reference offset.
func (e *Engine) LocalDay(ts time.Time) time.Time {
	return day(e.localTime(ts))
}

// Range scopes a computation to an inclusive calendar-day window. Label is
// echoed back on the result for presentation.
type Range struct {
	Start time.Time
	End   time.Time
	Label string
}

// validate rejects ranges whose start falls after the end.
func (r *Range) validate() error {
	if r == nil {
		return nil
	}
	if day(r.Start).After(day(r.End)) {
		return fmt.Errorf("%w: start %s after end %s",
			ErrInvalidRange, r.Start.Format(dateLayout), r.End.Format(dateLayout))
	}
	return nil
}

const dateLayout = "2006-01-02"

// day truncates t to midnight UTC of its calendar date.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
