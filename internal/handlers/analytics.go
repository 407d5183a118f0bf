package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodtrack/backend/internal/analytics"
	"github.com/moodtrack/backend/internal/apierror"
	"github.com/moodtrack/backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

const dateLayout = "2006-01-02"

// parseRange reads optional start_date/end_date query parameters. Both must
// be present to scope a computation; a lone bound is rejected.
func parseRange(c *gin.Context) (*analytics.Range, bool) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr == "" && endStr == "" {
		return nil, true
	}

	requestID := apierror.GetRequestID(c)
	if startStr == "" || endStr == "" {
		apierror.WriteProblem(c, apierror.NewInvalidRangeError(requestID,
			"start_date and end_date must be provided together"))
		return nil, false
	}

	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidRangeError(requestID,
			fmt.Sprintf("invalid start_date %q, use YYYY-MM-DD", startStr)))
		return nil, false
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidRangeError(requestID,
			fmt.Sprintf("invalid end_date %q, use YYYY-MM-DD", endStr)))
		return nil, false
	}

	return &analytics.Range{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("%s to %s", startStr, endStr),
	}, true
}

// writeAnalyticsError maps engine errors to problem responses.
func writeAnalyticsError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)
	if errors.Is(err, analytics.ErrInvalidRange) {
		apierror.WriteProblem(c, apierror.NewInvalidRangeError(requestID, err.Error()))
		return
	}
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}

// GetSummary handles GET /api/analytics/summary
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetWeeklyPatterns handles GET /api/analytics/weekly
func (h *AnalyticsHandler) GetWeeklyPatterns(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	rng, ok := parseRange(c)
	if !ok {
		return
	}

	patterns, err := h.analyticsService.GetWeeklyPatterns(c.Request.Context(), userID, rng)
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, patterns)
}

// GetMonthlyTrend handles GET /api/analytics/monthly
func (h *AnalyticsHandler) GetMonthlyTrend(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	rng, ok := parseRange(c)
	if !ok {
		return
	}

	trend, err := h.analyticsService.GetMonthlyTrend(c.Request.Context(), userID, rng)
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, trend)
}

// GetDailyPattern handles GET /api/analytics/daily
func (h *AnalyticsHandler) GetDailyPattern(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	date := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			apierror.WriteProblem(c, apierror.NewInvalidRangeError(apierror.GetRequestID(c),
				fmt.Sprintf("invalid date %q, use YYYY-MM-DD", dateStr)))
			return
		}
		date = parsed
	}

	pattern, err := h.analyticsService.GetDailyPattern(c.Request.Context(), userID, date)
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, pattern)
}

// GetHourlyAverages handles GET /api/analytics/hourly
func (h *AnalyticsHandler) GetHourlyAverages(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	rng, ok := parseRange(c)
	if !ok {
		return
	}

	averages, err := h.analyticsService.GetHourlyAverages(c.Request.Context(), userID, rng)
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, averages)
}

// GetWeeklyByMonth handles GET /api/analytics/weekly-by-month
func (h *AnalyticsHandler) GetWeeklyByMonth(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	now := time.Now().UTC()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidRangeError(apierror.GetRequestID(c), "year must be an integer"))
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidRangeError(apierror.GetRequestID(c), "month must be an integer"))
		return
	}

	trend, err := h.analyticsService.GetWeeklyTrendForMonth(c.Request.Context(), userID, year, time.Month(month))
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, trend)
}

// GetMonthlyByYear handles GET /api/analytics/monthly-by-year
func (h *AnalyticsHandler) GetMonthlyByYear(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().UTC().Year())))
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInvalidRangeError(apierror.GetRequestID(c), "year must be an integer"))
		return
	}

	trend, err := h.analyticsService.GetMonthlyTrendForYear(c.Request.Context(), userID, year)
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, trend)
}

// GetStreaks handles GET /api/analytics/streaks
func (h *AnalyticsHandler) GetStreaks(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	streaks, err := h.analyticsService.GetStreaks(c.Request.Context(), userID)
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, streaks)
}

// GetCorrelations handles GET /api/analytics/correlations
func (h *AnalyticsHandler) GetCorrelations(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.analyticsService.GetCorrelations(c.Request.Context(), userID)
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetComparative handles GET /api/analytics/comparative
func (h *AnalyticsHandler) GetComparative(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.analyticsService.GetComparative(c.Request.Context(), userID)
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetInsights handles GET /api/analytics/insights
func (h *AnalyticsHandler) GetInsights(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.analyticsService.GetInsights(c.Request.Context(), userID)
	if err != nil {
		writeAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
