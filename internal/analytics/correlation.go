package analytics

import (
	"math"
	"sort"

	"github.com/moodtrack/backend/internal/models"
)

// Sample-size guards. Tags below the trigger minimum are excluded outright:
// with fewer than three samples any apparent correlation is noise. Context
// fields are sparser than tags, so they use a lower bar.
const (
	minTriggerSamples = 3
	minContextSamples = 2
)

// consistencyCeiling anchors the "inverse of spread" consistency score:
// consistency = consistencyCeiling - stddev, floored at zero.
const consistencyCeiling = 10

// impactCeiling caps the spread term of impact strength:
// impact = |avg - neutral| * max(0, impactCeiling - stddev).
const impactCeiling = 3

// TriggerCorrelations relates mood values to the tags recorded alongside
// them. Only tags with at least three samples are reported; results sort
// descending by impact strength.
func (e *Engine) TriggerCorrelations(ds *Dataset) []models.TriggerCorrelation {
	byTag := make(map[string][]int)
	for _, en := range ds.entries {
		for _, tag := range en.tags {
			byTag[tag] = append(byTag[tag], en.value)
		}
	}

	out := make([]models.TriggerCorrelation, 0, len(byTag))
	for tag, values := range byTag {
		if len(values) < minTriggerSamples {
			continue
		}
		avg := mean(values)
		sd, _ := sampleStdDev(values)

		consistency := float64(consistencyCeiling) - sd
		if consistency < 0 {
			consistency = 0
		}
		spreadTerm := float64(impactCeiling) - sd
		if spreadTerm < 0 {
			spreadTerm = 0
		}

		out = append(out, models.TriggerCorrelation{
			Trigger:        tag,
			AverageMood:    round2(avg),
			Consistency:    round2(consistency),
			SampleSize:     len(values),
			ImpactStrength: round2(math.Abs(avg-NeutralValue) * spreadTerm),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ImpactStrength != out[j].ImpactStrength {
			return out[i].ImpactStrength > out[j].ImpactStrength
		}
		return out[i].Trigger < out[j].Trigger
	})
	return out
}

// ContextCorrelations relates mood values to the context fields (location,
// activity, weather). Values with at least two samples are reported, sorted
// descending by average mood.
func (e *Engine) ContextCorrelations(ds *Dataset) models.ContextCorrelations {
	return models.ContextCorrelations{
		Location: contextField(ds.entries, func(en entry) string { return en.location }),
		Activity: contextField(ds.entries, func(en entry) string { return en.activity }),
		Weather:  contextField(ds.entries, func(en entry) string { return en.weather }),
	}
}

func contextField(entries []entry, field func(entry) string) []models.ContextCorrelation {
	byValue := make(map[string][]int)
	for _, en := range entries {
		if v := field(en); v != "" {
			byValue[v] = append(byValue[v], en.value)
		}
	}

	out := make([]models.ContextCorrelation, 0, len(byValue))
	for value, values := range byValue {
		if len(values) < minContextSamples {
			continue
		}
		out = append(out, models.ContextCorrelation{
			Value:       value,
			AverageMood: round2(mean(values)),
			Frequency:   len(values),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AverageMood != out[j].AverageMood {
			return out[i].AverageMood > out[j].AverageMood
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// Volatility tiers on the sample standard deviation of mood values.
const (
	RatingVeryStable     = "Very Stable"     // stddev < 0.5
	RatingStable         = "Stable"          // stddev < 1.0
	RatingModerate       = "Moderate"        // stddev < 1.5
	RatingVariable       = "Variable"        // stddev < 2.0
	RatingHighlyVariable = "Highly Variable" // stddev >= 2.0
	RatingInsufficient   = "Insufficient Data"
	RatingNoData         = "No Data"
)

// Volatility classifies the dispersion of all mood values in the scoped
// window. With fewer than two data points the score is nil and the rating an
// explicit insufficient-data marker, never a numeric zero.
func (e *Engine) Volatility(ds *Dataset) models.Volatility {
	if len(ds.entries) == 0 {
		return models.Volatility{Rating: RatingNoData}
	}

	values := make([]int, len(ds.entries))
	for i, en := range ds.entries {
		values[i] = en.value
	}

	agg := aggregate(values)
	rng := &models.MoodRange{
		Min:     agg.Min,
		Max:     agg.Max,
		Average: round2(agg.Mean),
	}

	if agg.StdDev == nil {
		return models.Volatility{Rating: RatingInsufficient, Range: rng}
	}

	score := round2(*agg.StdDev)
	var rating string
	switch {
	case score < 0.5:
		rating = RatingVeryStable
	case score < 1.0:
		rating = RatingStable
	case score < 1.5:
		rating = RatingModerate
	case score < 2.0:
		rating = RatingVariable
	default:
		rating = RatingHighlyVariable
	}

	return models.Volatility{Score: &score, Rating: rating, Range: rng}
}

// TemporalPatterns reports mood averages keyed by weekday name and by month
// name, for the correlation report's coarse temporal view.
func (e *Engine) TemporalPatterns(ds *Dataset) models.TemporalPatterns {
	out := models.TemporalPatterns{
		DayOfWeek: make(map[string]float64),
		Month:     make(map[string]float64),
	}
	for name, values := range bucketByWeekday(ds.entries) {
		out.DayOfWeek[name] = round2(mean(values))
	}
	byMonthName := make(map[string][]int)
	for _, en := range ds.entries {
		name := en.day.Month().String()
		byMonthName[name] = append(byMonthName[name], en.value)
	}
	for name, values := range byMonthName {
		out.Month[name] = round2(mean(values))
	}
	return out
}

// Correlations bundles the trigger, context, temporal, and volatility
// analyses into one report.
func (e *Engine) Correlations(ds *Dataset) models.CorrelationReport {
	return models.CorrelationReport{
		Triggers:    e.TriggerCorrelations(ds),
		Contexts:    e.ContextCorrelations(ds),
		Temporal:    e.TemporalPatterns(ds),
		Volatility:  e.Volatility(ds),
		Diagnostics: ds.Diagnostics(),
	}
}
