package services

import (
	portsrepo "github.com/SscSPs/impact_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/impact_api/internal/core/ports/services"
)

// ContainerConfig carries the settings services need from configuration.
type ContainerConfig struct {
	MaxLookbackDays    int
	SupportedLanguages []string
}

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The rate table service is shared so the whole process refreshes rates once per day.
func NewServiceContainer(cfg ContainerConfig, repos portsrepo.RepositoryProvider, rates portssvc.RateTableSvc) *portssvc.ServiceContainer {
	converter := NewCurrencyConverter(rates, cfg.MaxLookbackDays)

	return &portssvc.ServiceContainer{
		Evaluation: NewEvaluationService(repos.EvaluationRepo, repos.CharityRepo, converter),
		Grant:      NewGrantService(repos.GrantRepo, converter),
		Converter:  converter,
		Validator:  NewQueryValidator(converter, cfg.SupportedLanguages),
	}
}
