package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/moodtrack/backend/internal/models"
)

// WeeklyPattern reports the mean mood per weekday. The output always carries
// exactly seven entries in Monday..Sunday order; a weekday without data
// reports the neutral midpoint (4.0) and a zero count so chart axes keep a
// uniform length. An optional range scopes the computation; its label and
// resolved bounds are echoed back.
func (e *Engine) WeeklyPattern(ds *Dataset, rng *Range) (models.WeeklyPattern, error) {
	if err := rng.validate(); err != nil {
		return models.WeeklyPattern{}, err
	}

	buckets := bucketByWeekday(filterRange(ds.entries, rng))

	out := models.WeeklyPattern{
		Labels:      append([]string(nil), weekdays...),
		Data:        make([]float64, len(weekdays)),
		Counts:      make([]int, len(weekdays)),
		Diagnostics: ds.Diagnostics(),
	}
	for i, name := range weekdays {
		values := buckets[name]
		if len(values) == 0 {
			out.Data[i] = NeutralValue
			continue
		}
		out.Data[i] = round2(mean(values))
		out.Counts[i] = len(values)
	}

	if rng != nil {
		out.Period = rng.Label
		out.StartDate = day(rng.Start).Format(dateLayout)
		out.EndDate = day(rng.End).Format(dateLayout)
	}
	return out, nil
}

// MonthlyTrend reports the mean mood per "YYYY-MM" month, sorted ascending
// by month key.
func (e *Engine) MonthlyTrend(ds *Dataset, rng *Range) (models.MonthlyTrend, error) {
	if err := rng.validate(); err != nil {
		return models.MonthlyTrend{}, err
	}

	buckets := bucketByMonth(filterRange(ds.entries, rng))

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)

	out := models.MonthlyTrend{
		Points:      make([]models.MonthlyPoint, 0, len(months)),
		Diagnostics: ds.Diagnostics(),
	}
	for _, m := range months {
		out.Points = append(out.Points, models.MonthlyPoint{
			Month: m,
			Mood:  round2(mean(buckets[m])),
			Count: len(buckets[m]),
		})
	}

	if rng != nil {
		out.Period = rng.Label
		out.StartDate = day(rng.Start).Format(dateLayout)
		out.EndDate = day(rng.End).Format(dateLayout)
	}
	return out, nil
}

// hourLabels returns the fixed 24-slot axis "00:00".."23:00".
func hourLabels() []string {
	labels := make([]string, 24)
	for h := range labels {
		labels[h] = fmt.Sprintf("%02d:00", h)
	}
	return labels
}

// DailyPattern returns every entry captured on the given calendar date,
// positioned precisely within the day (hour plus fractional minutes, after
// reference-offset normalization). Entries without a timestamp cannot be
// placed and are left out. The result keeps the 24-hour axis labels even
// when no entries match, so an empty day renders the same chart frame.
func (e *Engine) DailyPattern(ds *Dataset, date time.Time) models.DailyPattern {
	target := day(date)

	points := make([]models.MoodPoint, 0)
	for _, en := range ds.entries {
		if !en.hasTS {
			continue
		}
		local := e.localTime(en.ts)
		if !day(local).Equal(target) {
			continue
		}
		points = append(points, models.MoodPoint{
			X:         float64(local.Hour()) + float64(local.Minute())/60.0,
			Y:         en.value,
			Time:      local.Format("15:04"),
			Mood:      en.mood,
			Notes:     en.notes,
			Timestamp: local.Format(time.RFC3339),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].X < points[j].X })

	period := fmt.Sprintf("Daily Patterns for %s", target.Format(dateLayout))
	if len(points) == 0 {
		period += " (No data)"
	}

	return models.DailyPattern{
		Labels:       hourLabels(),
		Points:       points,
		Period:       period,
		Date:         target.Format(dateLayout),
		TotalEntries: len(points),
		Diagnostics:  ds.Diagnostics(),
	}
}

// HourlyAverages reports the mean mood per normalized hour across the
// scoped history, with per-hour sample counts. Hours without data carry a
// nil average so line charts show gaps instead of fake zeros.
func (e *Engine) HourlyAverages(ds *Dataset, rng *Range) (models.HourlyAverages, error) {
	if err := rng.validate(); err != nil {
		return models.HourlyAverages{}, err
	}

	scoped := filterRange(ds.entries, rng)
	buckets := e.bucketByHour(scoped)

	out := models.HourlyAverages{
		Labels:      hourLabels(),
		Data:        make([]*float64, 24),
		Counts:      make([]int, 24),
		Period:      "Average Mood Per Hour (All Time)",
		Diagnostics: ds.Diagnostics(),
	}
	if rng != nil && rng.Label != "" {
		out.Period = rng.Label
	}

	for h := 0; h < 24; h++ {
		values := buckets[h]
		if len(values) == 0 {
			continue
		}
		avg := round2(mean(values))
		out.Data[h] = &avg
		out.Counts[h] = len(values)
	}

	var earliest, latest time.Time
	for _, en := range scoped {
		if !en.hasTS {
			continue
		}
		if earliest.IsZero() || en.ts.Before(earliest) {
			earliest = en.ts
		}
		if latest.IsZero() || en.ts.After(latest) {
			latest = en.ts
		}
	}
	if !earliest.IsZero() {
		out.DateRange = &models.DateRange{
			Start: e.localTime(earliest).Format(dateLayout),
			End:   e.localTime(latest).Format(dateLayout),
		}
	}
	return out, nil
}

// WeeklyTrendForMonth reports the mean mood per week of one calendar month.
// Weeks start on the first Monday of the month and run Monday..Sunday,
// clipped to the month's last day. A month outside 1..12 fails with
// ErrInvalidRange.
func (e *Engine) WeeklyTrendForMonth(ds *Dataset, year int, month time.Month) (models.PeriodTrend, error) {
	if month < time.January || month > time.December {
		return models.PeriodTrend{}, fmt.Errorf("%w: month %d out of range", ErrInvalidRange, month)
	}
	if year < 1 {
		return models.PeriodTrend{}, fmt.Errorf("%w: year %d out of range", ErrInvalidRange, year)
	}

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	// Monday=0 .. Sunday=6 for week alignment.
	offsetToMonday := (7 - (int(firstDay.Weekday()) + 6) % 7) % 7
	weekStart := firstDay.AddDate(0, 0, offsetToMonday)

	out := models.PeriodTrend{
		Period:      fmt.Sprintf("Weekly Mood Averages for %s %d", month, year),
		Year:        year,
		Month:       int(month),
		Diagnostics: ds.Diagnostics(),
	}

	for week := 1; !weekStart.After(lastDay) && week <= 6; week++ {
		weekEnd := weekStart.AddDate(0, 0, 6)
		if weekEnd.After(lastDay) {
			weekEnd = lastDay
		}

		var values []int
		for _, en := range ds.entries {
			if en.day.Before(weekStart) || en.day.After(weekEnd) {
				continue
			}
			values = append(values, en.value)
		}

		out.Labels = append(out.Labels, fmt.Sprintf("Week %d", week))
		if len(values) > 0 {
			out.Data = append(out.Data, round2(mean(values)))
		} else {
			out.Data = append(out.Data, 0)
		}

		weekStart = weekStart.AddDate(0, 0, 7)
	}
	return out, nil
}

var shortMonths = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthlyTrendForYear reports the mean mood for each of the twelve months of
// one calendar year; months without data report 0.
func (e *Engine) MonthlyTrendForYear(ds *Dataset, year int) (models.PeriodTrend, error) {
	if year < 1 {
		return models.PeriodTrend{}, fmt.Errorf("%w: year %d out of range", ErrInvalidRange, year)
	}

	monthly := make(map[time.Month][]int)
	for _, en := range ds.entries {
		if en.day.Year() != year {
			continue
		}
		monthly[en.day.Month()] = append(monthly[en.day.Month()], en.value)
	}

	out := models.PeriodTrend{
		Labels:      append([]string(nil), shortMonths...),
		Data:        make([]float64, 12),
		Period:      fmt.Sprintf("Monthly Mood Averages for %d", year),
		Year:        year,
		Diagnostics: ds.Diagnostics(),
	}
	for m := time.January; m <= time.December; m++ {
		if values := monthly[m]; len(values) > 0 {
			out.Data[m-1] = round2(mean(values))
		}
	}
	return out, nil
}
