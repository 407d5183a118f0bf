// Package analytics computes derived mood statistics (streaks, temporal
// patterns, correlations, volatility) from an in-memory snapshot of journal
// records. The package is pure: it performs no I/O, holds no locks, and
// keeps no state across calls, so concurrent invocations need no
// coordination.
package analytics

import (
	"fmt"
	"strings"
)

// The seven ordinal mood categories, worst to best. The 1..7 mapping is a
// process-wide constant; every downstream statistic assumes linearity across
// it, so it must never be data-driven or configurable.
const (
	MoodVeryBad      = "very bad"
	MoodBad          = "bad"
	MoodSlightlyBad  = "slightly bad"
	MoodNeutral      = "neutral"
	MoodSlightlyWell = "slightly well"
	MoodWell         = "well"
	MoodVeryWell     = "very well"
)

// Scale boundaries on the 1..7 mapping.
const (
	// NeutralValue is the scale midpoint, used as the reference point for
	// impact strength and as the fill value for weekdays without data.
	NeutralValue = 4

	// GoodThreshold marks "slightly well" or better. Days at or above it
	// extend a streak and count as good days.
	GoodThreshold = 5

	// BadThreshold marks "slightly bad" or worse for the bad-days average.
	BadThreshold = 3
)

// moodValues maps each category to its ordinal value. Lookup is
// case-insensitive after trimming; that normalization is the single accepted
// leniency — anything that still misses the table is an upstream defect.
var moodValues = map[string]int{
	MoodVeryBad:      1,
	MoodBad:          2,
	MoodSlightlyBad:  3,
	MoodNeutral:      4,
	MoodSlightlyWell: 5,
	MoodWell:         6,
	MoodVeryWell:     7,
}

// moodLabels is the reverse mapping, index 1..7.
var moodLabels = [8]string{
	"", MoodVeryBad, MoodBad, MoodSlightlyBad, MoodNeutral,
	MoodSlightlyWell, MoodWell, MoodVeryWell,
}

// UnknownMoodError reports a mood label outside the seven-category scale.
type UnknownMoodError struct {
	Label string
}

func (e *UnknownMoodError) Error() string {
	return fmt.Sprintf("unknown mood category %q", e.Label)
}

// MapMood converts a categorical mood label to its ordinal value in [1,7].
// Unrecognized labels fail with *UnknownMoodError; there is no silent
// neutral fallback anywhere in the engine.
func MapMood(label string) (int, error) {
	v, ok := moodValues[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return 0, &UnknownMoodError{Label: label}
	}
	return v, nil
}

// ValidMood reports whether label maps onto the scale. Used by the write
// path so invalid labels are rejected before they ever reach storage.
func ValidMood(label string) bool {
	_, err := MapMood(label)
	return err == nil
}

// MoodLabel returns the canonical label for an ordinal value, or "" if the
// value is outside [1,7].
func MoodLabel(value int) string {
	if value < 1 || value > 7 {
		return ""
	}
	return moodLabels[value]
}

// Categories returns the seven labels in ascending scale order.
func Categories() []string {
	return []string{
		MoodVeryBad, MoodBad, MoodSlightlyBad, MoodNeutral,
		MoodSlightlyWell, MoodWell, MoodVeryWell,
	}
}
