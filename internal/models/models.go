// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

// Info is the application metadata document served at /api/v1/info.
// Field order is the JSON key order.
type Info struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// HealthStatus is returned by the liveness probe.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ReadyStatus is returned by the readiness probe.
type ReadyStatus struct {
	Ready bool `json:"ready"`
}

// ErrorResponse is a standard format for API error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}
