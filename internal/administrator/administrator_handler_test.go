package administrator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-inova/internal/administrator"
	administratorerrors "go-inova/internal/administrator/errors"
	adminMock "go-inova/internal/administrator/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAdministratorHandler_Bind(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := adminMock.NewMockService(ctrl)
	h := administrator.NewHandler(svc)

	r := setupRouter()
	r.POST("/startups/:id/administrator", h.Bind)

	startupID := uuid.New().String()
	userID := uuid.New().String()

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().Bind(gomock.Any(), startupID, gomock.Any()).
			Return(administrator.AdministratorResponse{ID: uuid.New().String(), StartupID: startupID, UserID: userID}, nil)

		body := `{"user_id":"` + userID + `","name":"Ana"}`
		req := httptest.NewRequest(http.MethodPost, "/startups/"+startupID+"/administrator", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), startupID)
	})

	t.Run("missing name", func(t *testing.T) {
		body := `{"user_id":"` + userID + `"}`
		req := httptest.NewRequest(http.MethodPost, "/startups/"+startupID+"/administrator", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Name is required")
	})

	t.Run("conflict", func(t *testing.T) {
		svc.EXPECT().Bind(gomock.Any(), startupID, gomock.Any()).
			Return(administrator.AdministratorResponse{}, administratorerrors.ErrStartupAlreadyHasAdministrator)

		body := `{"user_id":"` + userID + `","name":"Ana"}`
		req := httptest.NewRequest(http.MethodPost, "/startups/"+startupID+"/administrator", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestAdministratorHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := adminMock.NewMockService(ctrl)
	h := administrator.NewHandler(svc)

	r := setupRouter()
	r.GET("/startups/:id/administrator", h.Get)

	startupID := uuid.New().String()
	svc.EXPECT().GetByStartup(gomock.Any(), startupID).
		Return(administrator.AdministratorResponse{}, administratorerrors.ErrAdministratorNotFound)

	req := httptest.NewRequest(http.MethodGet, "/startups/"+startupID+"/administrator", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Administrator not found")
}
