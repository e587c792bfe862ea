// filepath: internal/api/handlers/info_handler_test.go
package handlers

import (
	"appinfo/internal/config"
	"appinfo/internal/models"
	"appinfo/internal/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	testInfo := models.Info{
		Name:        "orders-service",
		Version:     "2.3.1",
		Environment: "staging",
	}
	h, infoService := newTestHandlers(testInfo)

	req, err := http.NewRequest("GET", "/api/v1/info", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()

	h.GetInfo(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, `{"name":"orders-service","version":"2.3.1","environment":"staging"}`, rr.Body.String())

	var response models.Info
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, testInfo, response)
	infoService.AssertExpectations(t)
}

func TestGetInfo_Defaults(t *testing.T) {
	h := NewHandlers(services.NewInfoService(config.AppConfig{}))

	req := httptest.NewRequest("GET", "/api/v1/info", nil)
	rr := httptest.NewRecorder()
	h.GetInfo(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"name":"unknown","version":"1.0.0","environment":"development"}`, rr.Body.String())
}

func TestGetInfo_Idempotent(t *testing.T) {
	h := NewHandlers(services.NewInfoService(config.AppConfig{Name: "orders-service"}))

	var first []byte
	for i := 0; i < 10; i++ {
		rr := httptest.NewRecorder()
		h.GetInfo(rr, httptest.NewRequest("GET", "/api/v1/info", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		if first == nil {
			first = rr.Body.Bytes()
			continue
		}
		assert.Equal(t, first, rr.Body.Bytes(), "call %d differs", i)
	}
}
