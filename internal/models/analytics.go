package models

// Analytics result shapes. All of these are plain data so the same values can
// feed a JSON API response or a report generator without translation.

// AnalyticsSummary is the top-level dashboard aggregate.
type AnalyticsSummary struct {
	CurrentStreak   int           `json:"current_streak"`
	BestStreak      int           `json:"best_streak"`
	DailyAverage    float64       `json:"daily_average"`
	GoodDaysAverage float64       `json:"good_days_average"`
	BadDaysAverage  float64       `json:"bad_days_average"`
	TrackedDays     int           `json:"tracked_days"`
	TotalEntries    int           `json:"total_entries"`
	BestDay         string        `json:"best_day"` // weekday name, "N/A" when no data
	WeeklyPatterns  WeeklyPattern `json:"weekly_patterns"`
	Diagnostics     Diagnostics   `json:"diagnostics"`
}

// WeeklyPattern is the per-weekday mood average. Labels are always the seven
// weekday names Monday..Sunday; weekdays without data carry the neutral
// default so chart axes stay uniform.
type WeeklyPattern struct {
	Labels      []string    `json:"labels"`
	Data        []float64   `json:"data"`
	Counts      []int       `json:"counts"`
	Period      string      `json:"period,omitempty"`
	StartDate   string      `json:"start_date,omitempty"`
	EndDate     string      `json:"end_date,omitempty"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// MonthlyPoint is one month's mood average.
type MonthlyPoint struct {
	Month string  `json:"month"` // "YYYY-MM"
	Mood  float64 `json:"mood"`
	Count int     `json:"count"`
}

// MonthlyTrend is the month-over-month mood average, sorted ascending by month.
type MonthlyTrend struct {
	Points      []MonthlyPoint `json:"points"`
	Period      string         `json:"period,omitempty"`
	StartDate   string         `json:"start_date,omitempty"`
	EndDate     string         `json:"end_date,omitempty"`
	Diagnostics Diagnostics    `json:"diagnostics"`
}

// MoodPoint is a single entry positioned precisely within a day for
// fine-grained plotting.
type MoodPoint struct {
	X         float64 `json:"x"` // hour plus fractional minutes, reference-offset local
	Y         int     `json:"y"` // mood value 1..7
	Time      string  `json:"time"` // "HH:MM"
	Mood      string  `json:"mood"`
	Notes     string  `json:"notes,omitempty"`
	Timestamp string  `json:"timestamp"` // RFC 3339, reference-offset local
}

// DailyPattern is the hour-of-day view for a single date: hourly axis labels
// plus per-entry points with exact positions.
type DailyPattern struct {
	Labels       []string    `json:"labels"` // "00:00".."23:00"
	Points       []MoodPoint `json:"mood_points"`
	Period       string      `json:"period"`
	Date         string      `json:"date"`
	TotalEntries int         `json:"total_entries"`
	Diagnostics  Diagnostics `json:"diagnostics"`
}

// DateRange bounds the observed data, formatted "2006-01-02".
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// HourlyAverages is the average mood per normalized hour across the whole
// history. Hours without data carry a nil average so lines show gaps.
type HourlyAverages struct {
	Labels      []string    `json:"labels"`
	Data        []*float64  `json:"data"`
	Counts      []int       `json:"counts"`
	DateRange   *DateRange  `json:"date_range,omitempty"`
	Period      string      `json:"period"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// PeriodTrend is a fixed-axis trend view: weekly averages within one month or
// monthly averages within one year.
type PeriodTrend struct {
	Labels      []string    `json:"labels"`
	Data        []float64   `json:"data"`
	Period      string      `json:"period"`
	Year        int         `json:"year"`
	Month       int         `json:"month,omitempty"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// StreakReport holds the consecutive good-day runs.
type StreakReport struct {
	CurrentStreak int         `json:"current_streak"`
	BestStreak    int         `json:"best_streak"`
	Diagnostics   Diagnostics `json:"diagnostics"`
}

// TriggerCorrelation relates one tag to the mood recorded alongside it.
type TriggerCorrelation struct {
	Trigger        string  `json:"trigger"`
	AverageMood    float64 `json:"average_mood"`
	Consistency    float64 `json:"consistency"` // inverse of spread, floored at 0
	SampleSize     int     `json:"sample_size"`
	ImpactStrength float64 `json:"impact_strength"`
}

// ContextCorrelation relates one context value (a location, activity, or
// weather condition) to the mood recorded alongside it.
type ContextCorrelation struct {
	Value       string  `json:"value"`
	AverageMood float64 `json:"average_mood"`
	Frequency   int     `json:"frequency"`
}

// ContextCorrelations groups context correlations by field.
type ContextCorrelations struct {
	Location []ContextCorrelation `json:"location"`
	Activity []ContextCorrelation `json:"activity"`
	Weather  []ContextCorrelation `json:"weather"`
}

// MoodRange is the observed span of mood values.
type MoodRange struct {
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Average float64 `json:"average"`
}

// Volatility classifies mood dispersion. Score is nil with fewer than two
// data points; that state is distinct from a genuine zero variance.
type Volatility struct {
	Score  *float64   `json:"volatility_score"`
	Rating string     `json:"stability_rating"`
	Range  *MoodRange `json:"mood_range,omitempty"`
}

// TemporalPatterns are mood averages keyed by weekday and by month name.
type TemporalPatterns struct {
	DayOfWeek map[string]float64 `json:"daily_patterns"`
	Month     map[string]float64 `json:"monthly_patterns"`
}

// CorrelationReport bundles the correlation and volatility analyses.
type CorrelationReport struct {
	Triggers    []TriggerCorrelation `json:"trigger_correlations"`
	Contexts    ContextCorrelations  `json:"context_correlations"`
	Temporal    TemporalPatterns     `json:"temporal_patterns"`
	Volatility  Volatility           `json:"mood_volatility"`
	Diagnostics Diagnostics          `json:"diagnostics"`
}

// PeriodStats summarizes one comparison window.
type PeriodStats struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
	Trend   string  `json:"trend"` // improving, declining, stable, insufficient_data, no_data
}

// PeriodChange is the delta between two windows.
type PeriodChange struct {
	Change     float64 `json:"change"`
	Direction  string  `json:"direction"` // improving, declining, stable, no_data
	Percentage float64 `json:"percentage"`
}

// PeriodComparison compares a window against the preceding one.
type PeriodComparison struct {
	Current  PeriodStats  `json:"current"`
	Previous PeriodStats  `json:"previous"`
	Change   PeriodChange `json:"change"`
}

// ComparativeReport compares recent windows of mood data.
type ComparativeReport struct {
	Weekly      PeriodComparison `json:"weekly_comparison"`
	Monthly     PeriodComparison `json:"monthly_comparison"`
	Diagnostics Diagnostics      `json:"diagnostics"`
}

// Insight is a single derived observation with a confidence percentage.
type Insight struct {
	Type       string `json:"type"`
	Message    string `json:"prediction"`
	Confidence int    `json:"confidence"`
}

// InsightsReport holds pattern-based predictions.
type InsightsReport struct {
	Predictions     []Insight   `json:"predictions"`
	ConfidenceLevel int         `json:"confidence_level"`
	Diagnostics     Diagnostics `json:"diagnostics"`
}
