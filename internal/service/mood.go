package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/moodtrack/backend/internal/analytics"
	"github.com/moodtrack/backend/internal/models"
	"github.com/moodtrack/backend/internal/repository"
)

// Sentinel errors the handler layer maps to client responses.
var (
	ErrInvalidMood = errors.New("invalid mood category")
	ErrInvalidDate = errors.New("invalid date format")
)

type moodService struct {
	moodRepo repository.MoodRepository
	engine   *analytics.Engine
}

// NewMoodService creates a new mood service
func NewMoodService(moodRepo repository.MoodRepository, engine *analytics.Engine) MoodService {
	return &moodService{
		moodRepo: moodRepo,
		engine:   engine,
	}
}

func (s *moodService) CreateMood(ctx context.Context, userID string, req *models.CreateMoodRequest) (*models.MoodEntry, error) {
	if !analytics.ValidMood(req.Mood) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMood, req.Mood)
	}

	ts := time.Now().UTC()
	if req.Timestamp != nil {
		ts = req.Timestamp.UTC()
	}

	// Explicit date wins; otherwise the entry belongs to the capture
	// timestamp's local calendar day.
	var date time.Time
	if req.Date != "" {
		d, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
		}
		date = d
	} else {
		date = s.engine.LocalDay(ts)
	}

	entry := &models.MoodEntry{
		UserID:    userID,
		Date:      date,
		Mood:      req.Mood,
		Notes:     req.Notes,
		Timestamp: ts,
		Tags:      req.Tags,
		Location:  req.Location,
		Activity:  req.Activity,
		Weather:   req.Weather,
	}

	return s.moodRepo.Create(ctx, entry)
}

func (s *moodService) GetMood(ctx context.Context, userID, moodID string) (*models.MoodEntry, error) {
	entry, err := s.moodRepo.GetByID(ctx, moodID)
	if err != nil {
		return nil, err
	}

	// Ownership mismatch reads the same as absence.
	if entry.UserID != userID {
		return nil, repository.ErrNotFound
	}

	return entry, nil
}

func (s *moodService) GetUserMoods(ctx context.Context, userID string, limit, offset int) ([]models.MoodEntry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return s.moodRepo.GetByUserID(ctx, userID, limit, offset)
}

func (s *moodService) UpdateMood(ctx context.Context, userID, moodID string, req *models.UpdateMoodRequest) (*models.MoodEntry, error) {
	existing, err := s.moodRepo.GetByID(ctx, moodID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, repository.ErrNotFound
	}

	updated := *existing
	if req.Mood != nil {
		if !analytics.ValidMood(*req.Mood) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMood, *req.Mood)
		}
		updated.Mood = *req.Mood
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	if req.Timestamp != nil {
		updated.Timestamp = req.Timestamp.UTC()
		updated.Date = s.engine.LocalDay(updated.Timestamp)
	}
	if req.Tags != nil {
		updated.Tags = req.Tags
	}
	if req.Location != nil {
		updated.Location = *req.Location
	}
	if req.Activity != nil {
		updated.Activity = *req.Activity
	}
	if req.Weather != nil {
		updated.Weather = *req.Weather
	}

	return s.moodRepo.Update(ctx, moodID, &updated)
}

func (s *moodService) DeleteMood(ctx context.Context, userID, moodID string) error {
	entry, err := s.moodRepo.GetByID(ctx, moodID)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return repository.ErrNotFound
	}

	return s.moodRepo.Delete(ctx, moodID)
}
