package repository

import (
	"context"
	"errors"
	"time"

	"github.com/moodtrack/backend/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// MoodRepository defines the interface for mood entry data access
type MoodRepository interface {
	Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	GetByID(ctx context.Context, id string) (*models.MoodEntry, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.MoodEntry, error)
	GetAllByUserID(ctx context.Context, userID string) ([]models.MoodEntry, error)
	GetByUserIDAndDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.MoodEntry, error)
	Update(ctx context.Context, id string, entry *models.MoodEntry) (*models.MoodEntry, error)
	Delete(ctx context.Context, id string) error
	CountByUserID(ctx context.Context, userID string) (int64, error)
}
