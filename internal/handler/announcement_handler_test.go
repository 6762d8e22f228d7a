package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/internal/store"
	"rtrw-admin-svc/pkg/logger"
	"rtrw-admin-svc/pkg/utils"
)

type stubAnnouncementService struct {
	listFunc   func(ctx context.Context, filters map[string]interface{}) ([]models.Announcement, error)
	getFunc    func(ctx context.Context, id uint) (*models.Announcement, error)
	createFunc func(ctx context.Context, input *service.AnnouncementInput) (*models.Announcement, error)
	updateFunc func(ctx context.Context, id uint, input *service.AnnouncementUpdateInput) (*models.Announcement, error)
	deleteFunc func(ctx context.Context, id uint) error
}

func (s *stubAnnouncementService) List(ctx context.Context, filters map[string]interface{}) ([]models.Announcement, error) {
	return s.listFunc(ctx, filters)
}

func (s *stubAnnouncementService) GetByID(ctx context.Context, id uint) (*models.Announcement, error) {
	return s.getFunc(ctx, id)
}

func (s *stubAnnouncementService) Create(ctx context.Context, input *service.AnnouncementInput) (*models.Announcement, error) {
	return s.createFunc(ctx, input)
}

func (s *stubAnnouncementService) Update(ctx context.Context, id uint, input *service.AnnouncementUpdateInput) (*models.Announcement, error) {
	return s.updateFunc(ctx, id, input)
}

func (s *stubAnnouncementService) Delete(ctx context.Context, id uint) error {
	return s.deleteFunc(ctx, id)
}

func newAnnouncementRouter(svc service.AnnouncementService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewAnnouncementHandler(svc, logger.NewLogger("error", "text"))
	router.GET("/announcements", h.ListAnnouncements)
	router.POST("/announcements", h.CreateAnnouncement)
	router.GET("/announcements/:id", h.GetAnnouncement)
	router.PUT("/announcements/:id", h.UpdateAnnouncement)
	router.DELETE("/announcements/:id", h.DeleteAnnouncement)

	return router
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp
}

func TestListAnnouncementsForwardsQueryFilters(t *testing.T) {
	var captured map[string]interface{}
	router := newAnnouncementRouter(&stubAnnouncementService{
		listFunc: func(ctx context.Context, filters map[string]interface{}) ([]models.Announcement, error) {
			captured = filters
			return []models.Announcement{{ID: 1, Title: "Ronda"}}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/announcements?priority=tinggi&status=published&bogus=1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"priority": "tinggi", "status": "published"}, captured)

	resp := decodeEnvelope(t, w.Body)
	assert.True(t, resp.Success)
}

func TestCreateAnnouncementValidationError(t *testing.T) {
	router := newAnnouncementRouter(&stubAnnouncementService{
		createFunc: func(ctx context.Context, input *service.AnnouncementInput) (*models.Announcement, error) {
			return nil, &service.ValidationError{Message: "Invalid priority. Must be 'rendah', 'sedang', or 'tinggi'"}
		},
	})

	body := bytes.NewBufferString(`{"title":"a","descriptions":"b","priority":"urgent","status":"draft"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/announcements", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeEnvelope(t, w.Body)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid priority. Must be 'rendah', 'sedang', or 'tinggi'", resp.Message)
}

func TestCreateAnnouncementSuccess(t *testing.T) {
	router := newAnnouncementRouter(&stubAnnouncementService{
		createFunc: func(ctx context.Context, input *service.AnnouncementInput) (*models.Announcement, error) {
			return &models.Announcement{ID: 3, Title: input.Title, Status: input.Status}, nil
		},
	})

	body := bytes.NewBufferString(`{"title":"Kerja Bakti","descriptions":"Minggu pagi","priority":"sedang","status":"published"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/announcements", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeEnvelope(t, w.Body)
	assert.True(t, resp.Success)
	assert.Equal(t, "Announcement created successfully", resp.Message)
}

func TestGetAnnouncementNotFound(t *testing.T) {
	router := newAnnouncementRouter(&stubAnnouncementService{
		getFunc: func(ctx context.Context, id uint) (*models.Announcement, error) {
			return nil, store.ErrNotFound
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/announcements/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeEnvelope(t, w.Body)
	assert.Equal(t, "Announcement not found", resp.Message)
}

func TestGetAnnouncementRejectsNonNumericID(t *testing.T) {
	router := newAnnouncementRouter(&stubAnnouncementService{
		getFunc: func(ctx context.Context, id uint) (*models.Announcement, error) {
			t.Fatal("service must not be called for an invalid id")
			return nil, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/announcements/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAnnouncementNotFound(t *testing.T) {
	router := newAnnouncementRouter(&stubAnnouncementService{
		deleteFunc: func(ctx context.Context, id uint) error {
			return store.ErrNotFound
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/announcements/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAnnouncementSuccess(t *testing.T) {
	router := newAnnouncementRouter(&stubAnnouncementService{
		updateFunc: func(ctx context.Context, id uint, input *service.AnnouncementUpdateInput) (*models.Announcement, error) {
			require.NotNil(t, input.Status)
			return &models.Announcement{ID: id, Status: *input.Status}, nil
		},
	})

	body := bytes.NewBufferString(`{"status":"published"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/announcements/5", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w.Body)
	assert.True(t, resp.Success)
}
