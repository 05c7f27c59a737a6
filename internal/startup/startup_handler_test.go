package startup_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-inova/internal/startup"
	startupMock "go-inova/internal/startup/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_List_WritesPaginationMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := startupMock.NewMockService(ctrl)
	h := startup.NewHandler(svc)

	r := gin.New()
	r.GET("/startups", h.List)

	svc.EXPECT().List(gomock.Any(), startup.ListStartupsQuery{Sector: "Agro", Page: 2, PageSize: 5}).
		Return(startup.ListResult{Items: []startup.StartupResponse{{Name: "Inova"}}, Total: 11, Page: 2, Size: 5}, nil)

	req := httptest.NewRequest(http.MethodGet, "/startups?sector=Agro&page=2&page_size=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Ok   bool `json:"ok"`
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Ok)
	assert.Equal(t, int64(11), body.Meta.Total)
	assert.Equal(t, 3, body.Meta.TotalPages)
}

func TestHandler_List_RejectsBadPageSize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := startup.NewHandler(startupMock.NewMockService(gomock.NewController(t)))

	r := gin.New()
	r.GET("/startups", h.List)

	req := httptest.NewRequest(http.MethodGet, "/startups?page_size=500", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
