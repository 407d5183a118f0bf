package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/moodtrack/backend/internal/models"
)

// SQLiteMoodRepository implements MoodRepository using SQLite.
type SQLiteMoodRepository struct {
	db *sql.DB

	// entropy is not safe for concurrent reads; mu serializes ID minting
	// across parallel Create calls.
	mu      sync.Mutex
	entropy *rand.Rand
}

// NewSQLiteMoodRepository opens or creates a SQLite database at the given path.
func NewSQLiteMoodRepository(dbPath string) (*SQLiteMoodRepository, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	r := &SQLiteMoodRepository{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return r, nil
}

func (r *SQLiteMoodRepository) newID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), r.entropy).String()
}

func (r *SQLiteMoodRepository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS moods (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		date       TEXT NOT NULL,
		mood       TEXT NOT NULL,
		notes      TEXT,
		timestamp  TEXT,
		tags       TEXT,
		location   TEXT,
		activity   TEXT,
		weather    TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_moods_user_date ON moods(user_id, date);
	CREATE INDEX IF NOT EXISTS idx_moods_user_ts ON moods(user_id, timestamp);
	`
	_, err := r.db.Exec(schema)
	return err
}

const moodColumns = `id, user_id, date, mood, notes, timestamp, tags, location, activity, weather, created_at, updated_at`

func (r *SQLiteMoodRepository) Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	now := time.Now().UTC()

	stored := *entry
	stored.ID = r.newID()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	var tagsJSON *string
	if len(stored.Tags) > 0 {
		b, _ := json.Marshal(stored.Tags)
		s := string(b)
		tagsJSON = &s
	}

	var ts *string
	if !stored.Timestamp.IsZero() {
		s := stored.Timestamp.UTC().Format(time.RFC3339)
		ts = &s
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO moods (`+moodColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stored.ID, stored.UserID, stored.Date.Format("2006-01-02"), stored.Mood,
		nullable(stored.Notes), ts, tagsJSON,
		nullable(stored.Location), nullable(stored.Activity), nullable(stored.Weather),
		now.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert mood: %w", err)
	}

	return &stored, nil
}

func (r *SQLiteMoodRepository) GetByID(ctx context.Context, id string) (*models.MoodEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+moodColumns+` FROM moods WHERE id = ?`, id)

	entry, err := scanMood(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *SQLiteMoodRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.MoodEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+moodColumns+` FROM moods
		 WHERE user_id = ?
		 ORDER BY date DESC, timestamp DESC
		 LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMoods(rows)
}

func (r *SQLiteMoodRepository) GetAllByUserID(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+moodColumns+` FROM moods
		 WHERE user_id = ?
		 ORDER BY date ASC, timestamp ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMoods(rows)
}

func (r *SQLiteMoodRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.MoodEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+moodColumns+` FROM moods
		 WHERE user_id = ? AND date >= ? AND date <= ?
		 ORDER BY date ASC, timestamp ASC`,
		userID, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMoods(rows)
}

func (r *SQLiteMoodRepository) Update(ctx context.Context, id string, entry *models.MoodEntry) (*models.MoodEntry, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated := *entry
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = now

	var tagsJSON *string
	if len(updated.Tags) > 0 {
		b, _ := json.Marshal(updated.Tags)
		s := string(b)
		tagsJSON = &s
	}

	var ts *string
	if !updated.Timestamp.IsZero() {
		s := updated.Timestamp.UTC().Format(time.RFC3339)
		ts = &s
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE moods SET date = ?, mood = ?, notes = ?, timestamp = ?, tags = ?,
		        location = ?, activity = ?, weather = ?, updated_at = ?
		 WHERE id = ?`,
		updated.Date.Format("2006-01-02"), updated.Mood,
		nullable(updated.Notes), ts, tagsJSON,
		nullable(updated.Location), nullable(updated.Activity), nullable(updated.Weather),
		now.Format(time.RFC3339), id)
	if err != nil {
		return nil, fmt.Errorf("update mood: %w", err)
	}

	return &updated, nil
}

func (r *SQLiteMoodRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM moods WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteMoodRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM moods WHERE user_id = ?`, userID).Scan(&count)
	return count, err
}

func (r *SQLiteMoodRepository) Close() error {
	return r.db.Close()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMood(row scanner) (*models.MoodEntry, error) {
	var m models.MoodEntry
	var date, createdAt, updatedAt string
	var notes, ts, tagsJSON, location, activity, weather sql.NullString

	err := row.Scan(
		&m.ID, &m.UserID, &date, &m.Mood, &notes, &ts, &tagsJSON,
		&location, &activity, &weather, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.Date, _ = time.Parse("2006-01-02", date)
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	if notes.Valid {
		m.Notes = notes.String
	}
	if ts.Valid {
		m.Timestamp, _ = time.Parse(time.RFC3339, ts.String)
	}
	if tagsJSON.Valid {
		json.Unmarshal([]byte(tagsJSON.String), &m.Tags)
	}
	if location.Valid {
		m.Location = location.String
	}
	if activity.Valid {
		m.Activity = activity.String
	}
	if weather.Valid {
		m.Weather = weather.String
	}

	return &m, nil
}

func collectMoods(rows *sql.Rows) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	for rows.Next() {
		m, err := scanMood(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *m)
	}
	return entries, rows.Err()
}
