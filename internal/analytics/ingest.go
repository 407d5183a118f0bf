package analytics

import (
	"sort"
	"time"

	"github.com/moodtrack/backend/internal/models"
)

// entry is the normalized internal record every stage consumes. All parsing
// and mood mapping happens once, in Ingest; downstream code never touches
// raw input again.
type entry struct {
	day      time.Time // midnight UTC of the calendar date
	value    int       // mapped mood value 1..7
	mood     string    // canonical label
	ts       time.Time // capture time in UTC; zero when absent
	hasTS    bool
	notes    string
	tags     []string
	location string
	activity string
	weather  string
}

// Dataset is an immutable snapshot of normalized entries plus the
// diagnostics gathered while normalizing. Build one with Engine.Ingest and
// pass it to any number of reporters.
type Dataset struct {
	entries []entry
	total   int
	skipped []models.SkippedRecord
}

// Len returns the number of usable entries.
func (d *Dataset) Len() int { return len(d.entries) }

// Diagnostics describes the records dropped during ingestion.
func (d *Dataset) Diagnostics() models.Diagnostics {
	return models.Diagnostics{
		TotalRecords: d.total,
		SkippedCount: len(d.skipped),
		Skipped:      d.skipped,
	}
}

// timestamp layouts tolerated from the persistence collaborator.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Ingest normalizes caller-supplied records into a Dataset. A record with an
// unparseable date or timestamp, or a mood label outside the scale, is
// skipped and reported in the dataset diagnostics; one bad record never
// fails the computation. Entries come out sorted by day, then capture time.
func (e *Engine) Ingest(records []models.MoodRecord) *Dataset {
	ds := &Dataset{total: len(records)}

	for i, r := range records {
		value, err := MapMood(r.Mood)
		if err != nil {
			ds.skip(i, "mood", err.Error())
			continue
		}

		ts, hasTS, ok := parseTimestamp(r)
		if !ok {
			ds.skip(i, "timestamp", "unparseable timestamp "+r.TimestampRaw)
			continue
		}

		d, ok := parseDay(r, ts, hasTS, e)
		if !ok {
			ds.skip(i, "date", "record has no parseable date")
			continue
		}

		ds.entries = append(ds.entries, entry{
			day:      d,
			value:    value,
			mood:     MoodLabel(value),
			ts:       ts,
			hasTS:    hasTS,
			notes:    r.Notes,
			tags:     r.Tags,
			location: r.Location,
			activity: r.Activity,
			weather:  r.Weather,
		})
	}

	sort.SliceStable(ds.entries, func(i, j int) bool {
		a, b := ds.entries[i], ds.entries[j]
		if !a.day.Equal(b.day) {
			return a.day.Before(b.day)
		}
		return a.ts.Before(b.ts)
	})

	return ds
}

func (d *Dataset) skip(index int, field, reason string) {
	d.skipped = append(d.skipped, models.SkippedRecord{
		Index:  index,
		Field:  field,
		Reason: reason,
	})
}

// parseTimestamp resolves the native or string-encoded capture time. A
// missing timestamp is fine (the entry just stays out of hour-of-day views);
// a present but unparseable one is not.
func parseTimestamp(r models.MoodRecord) (ts time.Time, has, ok bool) {
	if !r.Timestamp.IsZero() {
		return r.Timestamp.UTC(), true, true
	}
	if r.TimestampRaw == "" {
		return time.Time{}, false, true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, r.TimestampRaw); err == nil {
			return t.UTC(), true, true
		}
	}
	return time.Time{}, false, false
}

// parseDay resolves the calendar date: native field first, then the raw
// string, then the reference-offset date of the timestamp.
func parseDay(r models.MoodRecord, ts time.Time, hasTS bool, e *Engine) (time.Time, bool) {
	if !r.Date.IsZero() {
		return day(r.Date), true
	}
	if r.DateRaw != "" {
		t, err := time.Parse(dateLayout, r.DateRaw)
		if err != nil {
			return time.Time{}, false
		}
		return day(t), true
	}
	if hasTS {
		return day(e.localTime(ts)), true
	}
	return time.Time{}, false
}
