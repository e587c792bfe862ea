// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"appinfo/internal/models"
	"appinfo/internal/services/mocks"
	"time"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.FixedZone("CET", 3600))

// newTestHandlers wires a mock info service that returns info and a fixed clock.
func newTestHandlers(info models.Info) (*Handlers, *mocks.MockInfoService) {
	infoService := new(mocks.MockInfoService)
	infoService.On("GetInfo").Return(info)

	h := NewHandlers(infoService)
	h.Now = func() time.Time { return fixedNow }
	return h, infoService
}
