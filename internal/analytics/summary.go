package analytics

import "github.com/moodtrack/backend/internal/models"

// Summarize composes the top-level dashboard aggregate from the other
// stages. It performs no aggregation of its own.
//
// Daily, good-days, and bad-days averages operate on per-day means: a good
// day has a daily mean at or above GoodThreshold, a bad day at or below
// BadThreshold. Best day is the weekday with the highest weekly-pattern
// average, ties broken by Monday..Sunday order; "N/A" with no data.
func (e *Engine) Summarize(ds *Dataset) models.AnalyticsSummary {
	streaks := e.Streaks(ds)
	weekly, _ := e.WeeklyPattern(ds, nil) // nil range never fails validation

	_, means := dailyMeans(ds.entries)

	var good, bad []float64
	for _, m := range means {
		switch {
		case m >= GoodThreshold:
			good = append(good, m)
		case m <= BadThreshold:
			bad = append(bad, m)
		}
	}

	bestDay := "N/A"
	bestAvg := 0.0
	for i, name := range weekly.Labels {
		// Only weekdays with samples compete; the neutral fill is not data.
		if weekly.Counts[i] > 0 && weekly.Data[i] > bestAvg {
			bestAvg = weekly.Data[i]
			bestDay = name
		}
	}

	return models.AnalyticsSummary{
		CurrentStreak:   streaks.CurrentStreak,
		BestStreak:      streaks.BestStreak,
		DailyAverage:    round2(meanFloat(means)),
		GoodDaysAverage: round2(meanFloat(good)),
		BadDaysAverage:  round2(meanFloat(bad)),
		TrackedDays:     len(means),
		TotalEntries:    len(ds.entries),
		BestDay:         bestDay,
		WeeklyPatterns:  weekly,
		Diagnostics:     ds.Diagnostics(),
	}
}
