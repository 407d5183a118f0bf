package service

import (
	"context"
	"fmt"
	"time"

	"github.com/moodtrack/backend/internal/analytics"
	"github.com/moodtrack/backend/internal/models"
	"github.com/moodtrack/backend/internal/repository"
)

type analyticsService struct {
	moodRepo repository.MoodRepository
	engine   *analytics.Engine
	now      func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(moodRepo repository.MoodRepository, engine *analytics.Engine) AnalyticsService {
	return &analyticsService{
		moodRepo: moodRepo,
		engine:   engine,
		now:      time.Now,
	}
}

// load fetches the user's full history and normalizes it into a dataset.
func (s *analyticsService) load(ctx context.Context, userID string) (*analytics.Dataset, error) {
	entries, err := s.moodRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entries: %w", err)
	}
	return s.engine.Ingest(toRecords(entries)), nil
}

func toRecords(entries []models.MoodEntry) []models.MoodRecord {
	records := make([]models.MoodRecord, len(entries))
	for i, e := range entries {
		records[i] = models.MoodRecord{
			Date:      e.Date,
			Mood:      e.Mood,
			Timestamp: e.Timestamp,
			Notes:     e.Notes,
			Tags:      e.Tags,
			Location:  e.Location,
			Activity:  e.Activity,
			Weather:   e.Weather,
		}
	}
	return records
}

func (s *analyticsService) GetSummary(ctx context.Context, userID string) (*models.AnalyticsSummary, error) {
	ds, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := s.engine.Summarize(ds)
	return &summary, nil
}

func (s *analyticsService) GetWeeklyPatterns(ctx context.Context, userID string, rng *analytics.Range) (*models.WeeklyPattern, error) {
	ds, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	wp, err := s.engine.WeeklyPattern(ds, rng)
	if err != nil {
		return nil, err
	}
	return &wp, nil
}

func (s *analyticsService) GetMonthlyTrend(ctx context.Context, userID string, rng *analytics.Range) (*models.MonthlyTrend, error) {
	ds, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	mt, err := s.engine.MonthlyTrend(ds, rng)
	if err != nil {
		return nil, err
	}
	return &mt, nil
}

func (s *analyticsService) GetDailyPattern(ctx context.Context, userID string, date time.Time) (*models.DailyPattern, error) {
	ds, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	dp := s.engine.DailyPattern(ds, date)
	return &dp, nil
}

func (s *analyticsService) GetHourlyAverages(ctx context.Context, userID string, rng *analytics.Range) (*models.HourlyAverages, error) {
	ds, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	ha, err := s.engine.HourlyAverages(ds, rng)
	if err != nil {
		return nil, err
	}
	return &ha, nil
}

func (s *analyticsService) GetWeeklyTrendForMonth(ctx context.Context, userID string, year int, month time.Month) (*models.PeriodTrend, error) {
	ds, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	pt, err := s.engine.WeeklyTrendForMonth(ds, year, month)
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

func (s *analyticsService) GetMonthlyTrendForYear(ctx context.Context, userID string, year int) (*models.PeriodTrend, error) {
	ds, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	pt, err := s.engine.MonthlyTrendForYear(ds, year)
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

func (s *analyticsService) GetStreaks(ctx context.Context, userID string) (*models.StreakReport, error) {
	ds, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	sr := s.engine.Streaks(ds)
	return &sr, nil
}

func (s *analyticsService) GetCorrelations(ctx context.Context, userID string) (*models.CorrelationReport, error) {
	ds, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	cr := s.engine.Correlations(ds)
	return &cr, nil
}

func (s *analyticsService) GetComparative(ctx context.Context, userID string) (*models.ComparativeReport, error) {
	ds, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	cr := s.engine.Comparative(ds, s.now().UTC())
	return &cr, nil
}

func (s *analyticsService) GetInsights(ctx context.Context, userID string) (*models.InsightsReport, error) {
	ds, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	ir := s.engine.Insights(ds, s.now().UTC())
	return &ir, nil
}
