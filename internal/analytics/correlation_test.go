package analytics

import (
	"testing"

	"github.com/moodtrack/backend/internal/models"
)

func tagged(date, mood string, tags ...string) models.MoodRecord {
	return models.MoodRecord{DateRaw: date, Mood: mood, Tags: tags}
}

func TestTriggerCorrelationsSampleThreshold(t *testing.T) {
	e := NewDefault()
	ds := e.Ingest([]models.MoodRecord{
		tagged("2024-01-01", "well", "work"),
		tagged("2024-01-02", "well", "work", "gym"),
		tagged("2024-01-03", "well", "work"),
		tagged("2024-01-04", "bad", "gym"),
	})

	out := e.TriggerCorrelations(ds)
	if len(out) != 1 {
		t.Fatalf("expected 1 trigger (gym has only 2 samples), got %d", len(out))
	}

	work := out[0]
	if work.Trigger != "work" || work.SampleSize != 3 {
		t.Fatalf("unexpected trigger: %+v", work)
	}
	// All three samples are 6: zero spread, full consistency, impact 2*3.
	if work.AverageMood != 6.0 {
		t.Errorf("average = %v, want 6.0", work.AverageMood)
	}
	if work.Consistency != 10.0 {
		t.Errorf("consistency = %v, want 10.0", work.Consistency)
	}
	if work.ImpactStrength != 6.0 {
		t.Errorf("impact = %v, want 6.0", work.ImpactStrength)
	}
}

func TestTriggerCorrelationsSortedByImpact(t *testing.T) {
	e := NewDefault()
	ds := e.Ingest([]models.MoodRecord{
		// "calm" hugs the neutral midpoint, "joy" sits far above it.
		tagged("2024-01-01", "neutral", "calm"),
		tagged("2024-01-02", "neutral", "calm"),
		tagged("2024-01-03", "neutral", "calm"),
		tagged("2024-01-04", "very well", "joy"),
		tagged("2024-01-05", "very well", "joy"),
		tagged("2024-01-06", "very well", "joy"),
	})

	out := e.TriggerCorrelations(ds)
	if len(out) != 2 {
		t.Fatalf("expected 2 triggers, got %d", len(out))
	}
	if out[0].Trigger != "joy" || out[1].Trigger != "calm" {
		t.Errorf("order = [%s %s], want strongest impact first", out[0].Trigger, out[1].Trigger)
	}
	if out[1].ImpactStrength != 0 {
		t.Errorf("neutral-centered trigger impact = %v, want 0", out[1].ImpactStrength)
	}
}

func TestContextCorrelations(t *testing.T) {
	e := NewDefault()
	ds := e.Ingest([]models.MoodRecord{
		{DateRaw: "2024-01-01", Mood: "well", Location: "home", Activity: "reading"},
		{DateRaw: "2024-01-02", Mood: "very well", Location: "home"},
		{DateRaw: "2024-01-03", Mood: "bad", Location: "office"},
	})

	cc := e.ContextCorrelations(ds)
	if len(cc.Location) != 1 {
		t.Fatalf("expected 1 location (office has 1 sample), got %d", len(cc.Location))
	}
	home := cc.Location[0]
	if home.Value != "home" || home.Frequency != 2 || home.AverageMood != 6.5 {
		t.Errorf("unexpected location correlation: %+v", home)
	}
	if len(cc.Activity) != 0 {
		t.Errorf("single-sample activity should be excluded, got %+v", cc.Activity)
	}
}

func TestVolatilityRatings(t *testing.T) {
	e := NewDefault()

	cases := []struct {
		name   string
		moods  []string
		rating string
	}{
		{"uniform", []string{"well", "well", "well", "well"}, RatingVeryStable},
		{"extremes", []string{"very bad", "very well", "very bad", "very well"}, RatingHighlyVariable},
	}
	for _, c := range cases {
		records := make([]models.MoodRecord, len(c.moods))
		for i, m := range c.moods {
			records[i] = rec(dayString(2024, 1, i+1), m)
		}
		v := e.Volatility(e.Ingest(records))
		if v.Rating != c.rating {
			t.Errorf("%s: rating = %q, want %q", c.name, v.Rating, c.rating)
		}
		if v.Score == nil {
			t.Errorf("%s: expected a volatility score", c.name)
		}
	}
}

func TestVolatilityInsufficientData(t *testing.T) {
	e := NewDefault()

	v := e.Volatility(e.Ingest([]models.MoodRecord{rec("2024-01-01", "well")}))
	if v.Rating != RatingInsufficient {
		t.Errorf("single entry: rating = %q, want %q", v.Rating, RatingInsufficient)
	}
	if v.Score != nil {
		t.Errorf("single entry: score should be nil, got %v", *v.Score)
	}
	if v.Range == nil || v.Range.Min != 6 || v.Range.Max != 6 {
		t.Errorf("single entry should still report its range: %+v", v.Range)
	}

	v = e.Volatility(e.Ingest(nil))
	if v.Rating != RatingNoData || v.Score != nil || v.Range != nil {
		t.Errorf("empty input: got %+v, want bare no-data rating", v)
	}
}

func TestTemporalPatterns(t *testing.T) {
	e := NewDefault()
	// 2024-01-01 is a Monday.
	tp := e.TemporalPatterns(e.Ingest([]models.MoodRecord{
		rec("2024-01-01", "well"),
		rec("2024-01-08", "bad"),
		rec("2024-02-05", "very well"),
	}))

	if tp.DayOfWeek["Monday"] != 5.0 {
		t.Errorf("Monday = %v, want 5.0", tp.DayOfWeek["Monday"])
	}
	if tp.Month["January"] != 4.0 {
		t.Errorf("January = %v, want 4.0", tp.Month["January"])
	}
	if tp.Month["February"] != 7.0 {
		t.Errorf("February = %v, want 7.0", tp.Month["February"])
	}
}

func TestCorrelationsBundle(t *testing.T) {
	e := NewDefault()
	report := e.Correlations(e.Ingest([]models.MoodRecord{
		tagged("2024-01-01", "well", "work"),
		rec("2024-01-02", "fantastic"), // skipped at ingestion
	}))

	if report.Volatility.Rating != RatingInsufficient {
		t.Errorf("rating = %q, want %q", report.Volatility.Rating, RatingInsufficient)
	}
	if report.Diagnostics.SkippedCount != 1 {
		t.Errorf("skipped = %d, want 1", report.Diagnostics.SkippedCount)
	}
	if report.Triggers == nil || report.Contexts.Location == nil {
		t.Error("bundle slices should be non-nil")
	}
}
