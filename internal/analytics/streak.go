package analytics

import "github.com/moodtrack/backend/internal/models"

// Streaks computes the current and best consecutive good-day runs.
//
// The tracker operates per calendar day, not per entry: days with multiple
// entries collapse to their mean mood first, and a day is "good" when that
// mean reaches GoodThreshold. A day without entries neither extends nor
// breaks a run; the scan walks the sequence of observed days. The current
// streak is the unbroken good run ending at the most recent day; the best
// streak is the longest run anywhere in the history, including one still in
// progress.
func (e *Engine) Streaks(ds *Dataset) models.StreakReport {
	_, means := dailyMeans(ds.entries)
	current, best := scanStreaks(means)
	return models.StreakReport{
		CurrentStreak: current,
		BestStreak:    best,
		Diagnostics:   ds.Diagnostics(),
	}
}

// scanStreaks runs the two-state (in-run / no-run) scan over day means in
// chronological order.
func scanStreaks(means []float64) (current, best int) {
	run := 0
	for _, m := range means {
		if m >= GoodThreshold {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	// The run still open at the end of the scan is the one touching the
	// most recent day.
	current = run
	return current, best
}
