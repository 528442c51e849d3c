package server

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/san-e/flint/feature/missions"
)

// Feature implements the loader.Feature interface for the mission query API.
type Feature struct {
	handler *Handler
}

// NewFeature creates the mission query feature.
func NewFeature(service *missions.Service, log *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(service, log)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "missions"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
