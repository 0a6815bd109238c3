package inventory

import (
	"stock-sync/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the inventory feature over svc.
func NewFeature(svc *Service, logger *zap.Logger, cfg server.Config) *Feature {
	return &Feature{service: svc, handler: NewHandler(svc, logger, cfg)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "inventory"
}

// IsEnabled reports whether any marketplace is configured.
func (f *Feature) IsEnabled() bool {
	return len(f.service.marketplaces) > 0
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
