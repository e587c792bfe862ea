// filepath: internal/api/handlers/info_handler.go
package handlers

import (
	"net/http"

	"appinfo/internal/api/response"
)

// @Summary Get service information
// @Description Returns the application name, version and environment resolved from configuration at startup. This is a public endpoint.
// @Tags Info
// @Produce  json
// @Success 200 {object} models.Info
// @Router /api/v1/info [get]
func (h *Handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	info := h.Info.GetInfo()
	response.JSON(w, http.StatusOK, info)
}
