package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moodtrack/backend/internal/apierror"
	"github.com/moodtrack/backend/internal/models"
	"github.com/moodtrack/backend/internal/repository"
	"github.com/moodtrack/backend/internal/service"
)

type MoodHandler struct {
	moodService service.MoodService
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService service.MoodService) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
	}
}

// requireUserID resolves the authenticated user or writes a 401 problem.
func requireUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return "", false
	}
	return userID.(string), true
}

// CreateMood handles POST /api/moods
func (h *MoodHandler) CreateMood(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	entry, err := h.moodService.CreateMood(c.Request.Context(), userID, &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		switch {
		case errors.Is(err, service.ErrInvalidMood):
			apierror.WriteProblem(c, apierror.NewInvalidMoodError(requestID, req.Mood))
		case errors.Is(err, service.ErrInvalidDate):
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
				{Field: "date", Message: "must be formatted YYYY-MM-DD", Code: "invalid_date"},
			}))
		default:
			apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetMoods handles GET /api/moods
func (h *MoodHandler) GetMoods(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.moodService.GetUserMoods(c.Request.Context(), userID, limit, offset)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}
	if entries == nil {
		entries = []models.MoodEntry{}
	}

	c.JSON(http.StatusOK, entries)
}

// GetMood handles GET /api/moods/:id
func (h *MoodHandler) GetMood(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	moodID := c.Param("id")
	entry, err := h.moodService.GetMood(c.Request.Context(), userID, moodID)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, repository.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Mood entry", moodID))
			return
		}
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateMood handles PUT /api/moods/:id
func (h *MoodHandler) UpdateMood(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.UpdateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	moodID := c.Param("id")
	entry, err := h.moodService.UpdateMood(c.Request.Context(), userID, moodID, &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Mood entry", moodID))
		case errors.Is(err, service.ErrInvalidMood):
			mood := ""
			if req.Mood != nil {
				mood = *req.Mood
			}
			apierror.WriteProblem(c, apierror.NewInvalidMoodError(requestID, mood))
		default:
			apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteMood handles DELETE /api/moods/:id
func (h *MoodHandler) DeleteMood(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	moodID := c.Param("id")
	if err := h.moodService.DeleteMood(c.Request.Context(), userID, moodID); err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, repository.ErrNotFound) {
			apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Mood entry", moodID))
			return
		}
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.Status(http.StatusNoContent)
}
