// filepath: internal/services/interfaces.go
package services

import (
	"appinfo/internal/models"
)

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}
