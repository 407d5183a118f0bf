package service

import (
	"context"
	"time"

	"github.com/moodtrack/backend/internal/analytics"
	"github.com/moodtrack/backend/internal/models"
)

// MoodService defines the interface for mood entry business logic
type MoodService interface {
	CreateMood(ctx context.Context, userID string, req *models.CreateMoodRequest) (*models.MoodEntry, error)
	GetMood(ctx context.Context, userID, moodID string) (*models.MoodEntry, error)
	GetUserMoods(ctx context.Context, userID string, limit, offset int) ([]models.MoodEntry, error)
	UpdateMood(ctx context.Context, userID, moodID string, req *models.UpdateMoodRequest) (*models.MoodEntry, error)
	DeleteMood(ctx context.Context, userID, moodID string) error
}

// AnalyticsService defines the interface for analytics business logic
type AnalyticsService interface {
	GetSummary(ctx context.Context, userID string) (*models.AnalyticsSummary, error)
	GetWeeklyPatterns(ctx context.Context, userID string, rng *analytics.Range) (*models.WeeklyPattern, error)
	GetMonthlyTrend(ctx context.Context, userID string, rng *analytics.Range) (*models.MonthlyTrend, error)
	GetDailyPattern(ctx context.Context, userID string, date time.Time) (*models.DailyPattern, error)
	GetHourlyAverages(ctx context.Context, userID string, rng *analytics.Range) (*models.HourlyAverages, error)
	GetWeeklyTrendForMonth(ctx context.Context, userID string, year int, month time.Month) (*models.PeriodTrend, error)
	GetMonthlyTrendForYear(ctx context.Context, userID string, year int) (*models.PeriodTrend, error)
	GetStreaks(ctx context.Context, userID string) (*models.StreakReport, error)
	GetCorrelations(ctx context.Context, userID string) (*models.CorrelationReport, error)
	GetComparative(ctx context.Context, userID string) (*models.ComparativeReport, error)
	GetInsights(ctx context.Context, userID string) (*models.InsightsReport, error)
}
