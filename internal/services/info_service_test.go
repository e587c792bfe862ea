package services

import (
	"sync"
	"testing"

	"appinfo/internal/config"
	"appinfo/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestInfoService_GetInfo(t *testing.T) {
	t.Run("Configured Values", func(t *testing.T) {
		s := NewInfoService(config.AppConfig{
			Name:        "orders-service",
			Version:     "2.3.1",
			Environment: "staging",
		})
		assert.Equal(t, models.Info{
			Name:        "orders-service",
			Version:     "2.3.1",
			Environment: "staging",
		}, s.GetInfo())
	})

	t.Run("Defaults", func(t *testing.T) {
		s := NewInfoService(config.AppConfig{})
		assert.Equal(t, models.Info{
			Name:        "unknown",
			Version:     "1.0.0",
			Environment: "development",
		}, s.GetInfo())
	})

	t.Run("Partial", func(t *testing.T) {
		s := NewInfoService(config.AppConfig{Environment: "production"})
		info := s.GetInfo()
		assert.Equal(t, "unknown", info.Name)
		assert.Equal(t, "1.0.0", info.Version)
		assert.Equal(t, "production", info.Environment)
	})
}

func TestInfoService_ReturnsCopy(t *testing.T) {
	s := NewInfoService(config.AppConfig{Name: "orders-service"})

	info := s.GetInfo()
	info.Name = "changed"

	assert.Equal(t, "orders-service", s.GetInfo().Name)
}

func TestInfoService_ConcurrentReads(t *testing.T) {
	s := NewInfoService(config.AppConfig{Name: "orders-service", Version: "2.3.1", Environment: "staging"})
	want := s.GetInfo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, s.GetInfo())
		}()
	}
	wg.Wait()
}
