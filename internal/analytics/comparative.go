package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/moodtrack/backend/internal/models"
)

// Trend and direction labels for period comparisons.
const (
	TrendImproving    = "improving"
	TrendDeclining    = "declining"
	TrendStable       = "stable"
	TrendInsufficient = "insufficient_data"
	TrendNoData       = "no_data"
)

// Comparative compares the most recent 7-day and 30-day windows against the
// windows immediately preceding them, relative to the given reference date.
func (e *Engine) Comparative(ds *Dataset, ref time.Time) models.ComparativeReport {
	return models.ComparativeReport{
		Weekly:      e.comparePeriods(ds, ref, 7),
		Monthly:     e.comparePeriods(ds, ref, 30),
		Diagnostics: ds.Diagnostics(),
	}
}

func (e *Engine) comparePeriods(ds *Dataset, ref time.Time, days int) models.PeriodComparison {
	current := e.periodStats(ds, ref, days, 0)
	previous := e.periodStats(ds, ref, days, days)
	return models.PeriodComparison{
		Current:  current,
		Previous: previous,
		Change:   periodChange(current, previous),
	}
}

// periodStats summarizes the window of `days` calendar days ending at
// ref-offset, inclusive. Consecutive offsets partition the timeline: the
// current window [ref-days+1, ref] and the previous [ref-2*days+1, ref-days]
// never share a day.
func (e *Engine) periodStats(ds *Dataset, ref time.Time, days, offset int) models.PeriodStats {
	end := day(ref).AddDate(0, 0, -offset)
	start := end.AddDate(0, 0, -(days - 1))

	var values []int
	for _, en := range ds.entries {
		if en.day.Before(start) || en.day.After(end) {
			continue
		}
		values = append(values, en.value)
	}

	if len(values) == 0 {
		return models.PeriodStats{Trend: TrendNoData}
	}
	return models.PeriodStats{
		Average: round2(mean(values)),
		Count:   len(values),
		Trend:   windowTrend(values),
	}
}

// windowTrend compares the first and second halves of a chronologically
// ordered value sequence.
func windowTrend(values []int) string {
	if len(values) < 2 {
		return TrendInsufficient
	}
	mid := len(values) / 2
	diff := mean(values[mid:]) - mean(values[:mid])
	switch {
	case math.Abs(diff) < 0.2:
		return TrendStable
	case diff > 0:
		return TrendImproving
	default:
		return TrendDeclining
	}
}

func periodChange(current, previous models.PeriodStats) models.PeriodChange {
	if current.Count == 0 || previous.Count == 0 {
		return models.PeriodChange{Direction: TrendNoData}
	}

	change := current.Average - previous.Average
	var pct float64
	if previous.Average != 0 {
		pct = change / previous.Average * 100
	}

	direction := TrendStable
	if math.Abs(change) >= 0.1 {
		if change > 0 {
			direction = TrendImproving
		} else {
			direction = TrendDeclining
		}
	}

	return models.PeriodChange{
		Change:     round2(change),
		Direction:  direction,
		Percentage: round1(pct),
	}
}

// Insight confidence tiers by 90-day data volume.
const insightWindow = 90

// Insights derives pattern-based predictions from the dataset relative to
// now. Currently a single predictor: the typical mood for tomorrow's
// weekday, reported once that weekday has at least three samples.
func (e *Engine) Insights(ds *Dataset, now time.Time) models.InsightsReport {
	out := models.InsightsReport{
		Predictions:     []models.Insight{},
		ConfidenceLevel: e.insightConfidence(ds, now),
		Diagnostics:     ds.Diagnostics(),
	}

	buckets := bucketByWeekday(ds.entries)
	tomorrow := day(now).AddDate(0, 0, 1).Weekday().String()
	if values := buckets[tomorrow]; len(values) >= minTriggerSamples {
		confidence := len(values) * 10
		if confidence > 90 {
			confidence = 90
		}
		out.Predictions = append(out.Predictions, models.Insight{
			Type: "day_prediction",
			Message: fmt.Sprintf("Tomorrow (%s), your mood typically averages %.1f/7",
				tomorrow, round1(mean(values))),
			Confidence: confidence,
		})
	}

	return out
}

// insightConfidence scores overall prediction confidence from the entry
// volume of the trailing 90 days.
func (e *Engine) insightConfidence(ds *Dataset, now time.Time) int {
	cutoff := day(now).AddDate(0, 0, -insightWindow)
	recent := 0
	for _, en := range ds.entries {
		if !en.day.Before(cutoff) {
			recent++
		}
	}
	switch {
	case recent >= 60:
		return 85
	case recent >= 30:
		return 70
	case recent >= 14:
		return 55
	default:
		return 30
	}
}
