package analytics

import (
	"sort"
	"time"
)

// weekdays is the fixed output ordering for weekly views.
var weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// filterRange returns the entries whose calendar day falls inside the
// inclusive range. A nil range selects everything. The returned slice is a
// view ordered like the dataset.
func filterRange(entries []entry, rng *Range) []entry {
	if rng == nil {
		return entries
	}
	start, end := day(rng.Start), day(rng.End)
	out := make([]entry, 0, len(entries))
	for _, e := range entries {
		if e.day.Before(start) || e.day.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// bucketByDay groups mood values by calendar day.
func bucketByDay(entries []entry) map[time.Time][]int {
	buckets := make(map[time.Time][]int)
	for _, e := range entries {
		buckets[e.day] = append(buckets[e.day], e.value)
	}
	return buckets
}

// bucketByWeekday groups mood values by weekday name.
func bucketByWeekday(entries []entry) map[string][]int {
	buckets := make(map[string][]int)
	for _, e := range entries {
		name := e.day.Weekday().String()
		buckets[name] = append(buckets[name], e.value)
	}
	return buckets
}

// bucketByMonth groups mood values by "YYYY-MM" key.
func bucketByMonth(entries []entry) map[string][]int {
	buckets := make(map[string][]int)
	for _, e := range entries {
		key := e.day.Format("2006-01")
		buckets[key] = append(buckets[key], e.value)
	}
	return buckets
}

// bucketByHour groups mood values by hour-of-day after reference-offset
// normalization. Entries without a timestamp are excluded; they have no hour.
func (e *Engine) bucketByHour(entries []entry) map[int][]int {
	buckets := make(map[int][]int)
	for _, en := range entries {
		if !en.hasTS {
			continue
		}
		hour := e.localTime(en.ts).Hour()
		buckets[hour] = append(buckets[hour], en.value)
	}
	return buckets
}

// dailyMeans collapses entries to one mean mood value per day, returning the
// days in ascending order alongside the means. This is the per-day view the
// streak tracker and summary averages operate on.
func dailyMeans(entries []entry) (days []time.Time, means []float64) {
	buckets := bucketByDay(entries)
	if len(buckets) == 0 {
		return nil, nil
	}
	days = make([]time.Time, 0, len(buckets))
	for d := range buckets {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	means = make([]float64, len(days))
	for i, d := range days {
		means[i] = mean(buckets[d])
	}
	return days, means
}
