package service

import (
	"github.com/MKhiriev/go-deck-builder/internal/adapter"
	"github.com/MKhiriev/go-deck-builder/internal/config"
	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/store"
	"github.com/MKhiriev/go-deck-builder/models"
)

type Services struct {
	AuthService     AuthService
	WorkflowService WorkflowService
	ChartService    ChartService
	AppInfoService  AppInfoService
}

// NewServices wires the services to the repositories and the card catalog.
// catalog serves lookups whose result is persisted; previews serves
// lookups that are only displayed and may be cached.
func NewServices(
	storages *store.Storages,
	catalog, previews adapter.CardCatalog,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthValidationService().
			Wrap(NewAuthService(storages.UserRepository, cfg.App, logger)),
		WorkflowService: NewWorkflowValidationService().
			Wrap(NewWorkflowService(storages, catalog, previews, logger)),
		ChartService:   NewChartService(storages, logger),
		AppInfoService: appInfo,
	}, nil
}
