// filepath: internal/api/handlers/main.go
package handlers

import (
	"appinfo/internal/services"
	"time"
)

// Handlers holds shared dependencies for API handlers.
type Handlers struct {
	Info services.InfoService

	// Now is the clock used for probe timestamps.
	Now func() time.Time
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(info services.InfoService) *Handlers {
	return &Handlers{
		Info: info,
		Now:  time.Now,
	}
}
