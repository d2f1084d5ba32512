package services

import (
	"github.com/dither001/mekhq/internal/generator"
	personnelRepo "github.com/dither001/mekhq/internal/repositories/personnel"
	personnelService "github.com/dither001/mekhq/internal/services/personnel"
)

// Provider holds all service instances
type Provider struct {
	PersonnelService personnelService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	PersonnelRepository personnelRepo.Repository
	Generator           generator.Generator
	BatchConcurrency    int
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repository if none provided
	repo := cfg.PersonnelRepository
	if repo == nil {
		repo = personnelRepo.NewInMemoryRepository()
	}

	return &Provider{
		PersonnelService: personnelService.NewService(&personnelService.ServiceConfig{
			Repository:       repo,
			Generator:        cfg.Generator,
			BatchConcurrency: cfg.BatchConcurrency,
		}),
	}
}
