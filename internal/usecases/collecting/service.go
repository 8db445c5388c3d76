// Package collecting coordena a coleta de métricas do MidiaMax: resolve as
// credenciais da conta, dispara o integrador e persiste o resultado.
package collecting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax"
	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
	"github.com/vfg2006/metrics-scraper-api/infrastructure/repository"
	"github.com/vfg2006/metrics-scraper-api/internal/domain"
)

// Collector expõe as operações de coleta para a API e para o agendador.
type Collector interface {
	// CollectAccount executa a extração para a conta e período e persiste o
	// resultado, com sucesso ou não. O resultado persistido é retornado.
	CollectAccount(ctx context.Context, accountID string, period midiamaxdomain.Period) (*domain.ExtractionEntry, error)

	// TestConnection valida as credenciais da conta sem extrair métricas.
	TestConnection(ctx context.Context, accountID string) error

	// GetResults lista as extrações persistidas da conta.
	GetResults(accountID string, filters *domain.ExtractionFilters) ([]*domain.ExtractionEntry, error)

	// HasAccount informa se a conta existe na configuração do serviço.
	HasAccount(accountID string) bool
}

type service struct {
	integrator midiamax.MidiaMaxIntegrator
	repo       repository.ExtractionRepository
	accounts   map[string]midiamaxdomain.Credentials
}

func NewService(
	integrator midiamax.MidiaMaxIntegrator,
	repo repository.ExtractionRepository,
	accounts map[string]midiamaxdomain.Credentials,
) Collector {
	return &service{
		integrator: integrator,
		repo:       repo,
		accounts:   accounts,
	}
}

func (s *service) CollectAccount(ctx context.Context, accountID string, period midiamaxdomain.Period) (*domain.ExtractionEntry, error) {
	creds, ok := s.accounts[accountID]
	if !ok {
		return nil, ErrAccountNotConfigured
	}

	logger := logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"start":      period.Start.Format(time.DateOnly),
		"end":        period.End.Format(time.DateOnly),
	})
	logger.Info("Iniciando coleta de métricas do MidiaMax")

	result := s.integrator.FetchMetrics(ctx, accountID, creds, period)

	entry := &domain.ExtractionEntry{
		AccountID:    accountID,
		PeriodStart:  period.Start,
		PeriodEnd:    period.End,
		Success:      result.Success,
		Metrics:      result.Metrics,
		Warnings:     result.Warnings,
		ErrorMessage: result.ErrorMessage,
	}

	if err := s.repo.SaveOrUpdate(entry); err != nil {
		return nil, fmt.Errorf("erro ao persistir o resultado da extração: %w", err)
	}

	if !result.Success {
		logger.WithFields(logrus.Fields{
			"error":      result.ErrorMessage,
			"screenshot": result.ScreenshotPath,
		}).Warn("Coleta concluída sem sucesso; falha registrada no banco")
	} else {
		logger.WithField("warnings", len(result.Warnings)).Info("Coleta concluída e persistida")
	}

	return entry, nil
}

func (s *service) TestConnection(ctx context.Context, accountID string) error {
	creds, ok := s.accounts[accountID]
	if !ok {
		return ErrAccountNotConfigured
	}

	return s.integrator.TestLogin(ctx, creds)
}

func (s *service) GetResults(accountID string, filters *domain.ExtractionFilters) ([]*domain.ExtractionEntry, error) {
	if _, ok := s.accounts[accountID]; !ok {
		return nil, ErrAccountNotConfigured
	}

	return s.repo.ListByAccount(accountID, filters)
}

func (s *service) HasAccount(accountID string) bool {
	_, ok := s.accounts[accountID]
	return ok
}
