// filepath: internal/services/info_service.go
package services

import (
	"appinfo/internal/config"
	"appinfo/internal/models"
)

var _ InfoService = (*infoService)(nil)

// infoService holds the resolved info document. It is never mutated after
// construction, so it is safe for concurrent use.
type infoService struct {
	info models.Info
}

// NewInfoService creates a new InfoService from the resolved [app] section.
// Blank fields fall back to their defaults.
func NewInfoService(app config.AppConfig) *infoService {
	app = app.WithDefaults()
	return &infoService{
		info: models.Info{
			Name:        app.Name,
			Version:     app.Version,
			Environment: app.Environment,
		},
	}
}

// GetInfo retrieves the application information.
func (s *infoService) GetInfo() models.Info {
	return s.info
}
