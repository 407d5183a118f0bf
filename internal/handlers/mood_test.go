package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/moodtrack/backend/internal/apierror"
	"github.com/moodtrack/backend/internal/models"
	"github.com/moodtrack/backend/internal/repository"
	"github.com/moodtrack/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// mockMoodService is a mock implementation of MoodService for handler tests
type mockMoodService struct {
	createFn func(ctx context.Context, userID string, req *models.CreateMoodRequest) (*models.MoodEntry, error)
	getFn    func(ctx context.Context, userID, moodID string) (*models.MoodEntry, error)
	listFn   func(ctx context.Context, userID string, limit, offset int) ([]models.MoodEntry, error)
	updateFn func(ctx context.Context, userID, moodID string, req *models.UpdateMoodRequest) (*models.MoodEntry, error)
	deleteFn func(ctx context.Context, userID, moodID string) error
}

func (m *mockMoodService) CreateMood(ctx context.Context, userID string, req *models.CreateMoodRequest) (*models.MoodEntry, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockMoodService) GetMood(ctx context.Context, userID, moodID string) (*models.MoodEntry, error) {
	return m.getFn(ctx, userID, moodID)
}

func (m *mockMoodService) GetUserMoods(ctx context.Context, userID string, limit, offset int) ([]models.MoodEntry, error) {
	return m.listFn(ctx, userID, limit, offset)
}

func (m *mockMoodService) UpdateMood(ctx context.Context, userID, moodID string, req *models.UpdateMoodRequest) (*models.MoodEntry, error) {
	return m.updateFn(ctx, userID, moodID, req)
}

func (m *mockMoodService) DeleteMood(ctx context.Context, userID, moodID string) error {
	return m.deleteFn(ctx, userID, moodID)
}

func newMoodRouter(svc service.MoodService) *gin.Engine {
	h := NewMoodHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		// Stand-in for the user resolution middleware.
		if id := c.GetHeader("X-User-ID"); id != "" {
			c.Set("user_id", id)
		}
		c.Next()
	})
	r.POST("/api/moods", h.CreateMood)
	r.GET("/api/moods", h.GetMoods)
	r.GET("/api/moods/:id", h.GetMood)
	r.PUT("/api/moods/:id", h.UpdateMood)
	r.DELETE("/api/moods/:id", h.DeleteMood)
	return r
}

func TestCreateMoodHandler(t *testing.T) {
	svc := &mockMoodService{
		createFn: func(ctx context.Context, userID string, req *models.CreateMoodRequest) (*models.MoodEntry, error) {
			return &models.MoodEntry{ID: "mood-1", UserID: userID, Mood: req.Mood}, nil
		},
	}
	router := newMoodRouter(svc)

	body, _ := json.Marshal(models.CreateMoodRequest{Mood: "well", Notes: "good day"})
	req := httptest.NewRequest("POST", "/api/moods", bytes.NewReader(body))
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}

	var entry models.MoodEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if entry.ID != "mood-1" || entry.Mood != "well" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestCreateMoodHandlerInvalidMood(t *testing.T) {
	svc := &mockMoodService{
		createFn: func(ctx context.Context, userID string, req *models.CreateMoodRequest) (*models.MoodEntry, error) {
			return nil, service.ErrInvalidMood
		},
	}
	router := newMoodRouter(svc)

	body, _ := json.Marshal(models.CreateMoodRequest{Mood: "fantastic"})
	req := httptest.NewRequest("POST", "/api/moods", bytes.NewReader(body))
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != apierror.ContentTypeProblemJSON {
		t.Errorf("Content-Type = %q, want problem+json", ct)
	}

	var problem apierror.ProblemDetails
	if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil {
		t.Fatalf("unmarshal problem: %v", err)
	}
	if problem.Type != apierror.TypeInvalidMood {
		t.Errorf("problem type = %q, want %q", problem.Type, apierror.TypeInvalidMood)
	}
}

func TestCreateMoodHandlerRequiresUser(t *testing.T) {
	router := newMoodRouter(&mockMoodService{})

	body, _ := json.Marshal(models.CreateMoodRequest{Mood: "well"})
	req := httptest.NewRequest("POST", "/api/moods", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestGetMoodHandlerNotFound(t *testing.T) {
	svc := &mockMoodService{
		getFn: func(ctx context.Context, userID, moodID string) (*models.MoodEntry, error) {
			return nil, repository.ErrNotFound
		},
	}
	router := newMoodRouter(svc)

	req := httptest.NewRequest("GET", "/api/moods/missing", nil)
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var problem apierror.ProblemDetails
	json.Unmarshal(w.Body.Bytes(), &problem)
	if problem.Type != apierror.TypeNotFound {
		t.Errorf("problem type = %q, want %q", problem.Type, apierror.TypeNotFound)
	}
}

func TestGetMoodsHandlerEmptyList(t *testing.T) {
	svc := &mockMoodService{
		listFn: func(ctx context.Context, userID string, limit, offset int) ([]models.MoodEntry, error) {
			return nil, nil
		},
	}
	router := newMoodRouter(svc)

	req := httptest.NewRequest("GET", "/api/moods", nil)
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	// Empty history serializes as [], not null.
	if got := w.Body.String(); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestDeleteMoodHandler(t *testing.T) {
	svc := &mockMoodService{
		deleteFn: func(ctx context.Context, userID, moodID string) error {
			if moodID != "mood-1" {
				return repository.ErrNotFound
			}
			return nil
		},
	}
	router := newMoodRouter(svc)

	req := httptest.NewRequest("DELETE", "/api/moods/mood-1", nil)
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}

	req = httptest.NewRequest("DELETE", "/api/moods/other", nil)
	req.Header.Set("X-User-ID", "user-1")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
