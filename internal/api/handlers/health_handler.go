// internal/api/handlers/health_handler.go
package handlers

import (
	"appinfo/internal/api/response"
	"appinfo/internal/models"
	"net/http"
	"time"
)

// @Summary Liveness probe
// @Description Confirms the process is up and serving requests.
// @Tags Probes
// @Produce  json
// @Success 200 {object} models.HealthStatus
// @Router /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, models.HealthStatus{
		Status:    "ok",
		Timestamp: h.Now().UTC().Format(time.RFC3339),
	})
}

// @Summary Readiness probe
// @Description Confirms the service can take traffic. Configuration is resolved before the listener opens, so a running server is always ready.
// @Tags Probes
// @Produce  json
// @Success 200 {object} models.ReadyStatus
// @Router /ready [get]
func (h *Handlers) Ready(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, models.ReadyStatus{Ready: true})
}

// NotFound answers unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	response.Error(w, http.StatusNotFound, "The requested resource could not be found.")
}

// MethodNotAllowed answers known routes called with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, "The "+r.Method+" method is not supported for this resource.")
}
