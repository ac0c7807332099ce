package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrocha/aquagas-api/internal/adapter/api/dto"
	"github.com/vrocha/aquagas-api/internal/domain/order"
	"github.com/vrocha/aquagas-api/pkg/logger"
)

func newTrackingTestServer(t *testing.T) (*gin.Engine, *fakeOrderRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orderRepo := newFakeOrderRepo()
	controller := NewTrackingController(orderRepo, logger.NewLogger())

	router := gin.New()
	router.GET("/tracking/:id", controller.Track)

	return router, orderRepo
}

func TestTrackEndpoint(t *testing.T) {
	router, orderRepo := newTrackingTestServer(t)
	o := seedOrder(t, orderRepo, "Maria", "11988887777")
	o.Status = order.StatusOutForDelivery

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tracking/"+o.ID, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.TrackingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, o.ID, resp.OrderID)
	assert.Equal(t, order.StatusOutForDelivery, resp.Status)
	require.Len(t, resp.Steps, 3)
	assert.True(t, resp.Steps[0].Done)
	assert.True(t, resp.Steps[1].Done)
	assert.False(t, resp.Steps[2].Done)
	assert.False(t, resp.Cancelled)
}

func TestTrackUnknownOrder(t *testing.T) {
	router, _ := newTrackingTestServer(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tracking/nao-existe", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
