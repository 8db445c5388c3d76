package domain

import (
	"time"

	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
)

// ExtractionEntry representa uma extração de métricas persistida, com uma
// linha por conta e período.
type ExtractionEntry struct {
	ID           int64                             `json:"id"`
	AccountID    string                            `json:"account_id"`
	PeriodStart  time.Time                         `json:"period_start"`
	PeriodEnd    time.Time                         `json:"period_end"`
	Success      bool                              `json:"success"`
	Metrics      *midiamaxdomain.ExtractedMetrics  `json:"metrics,omitempty"`
	Warnings     []string                          `json:"warnings,omitempty"`
	ErrorMessage string                            `json:"error_message,omitempty"`
	CreatedAt    time.Time                         `json:"created_at"`
	UpdatedAt    time.Time                         `json:"updated_at"`
}

// ExtractionFilters filtra consultas de extrações por intervalo de datas.
type ExtractionFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
