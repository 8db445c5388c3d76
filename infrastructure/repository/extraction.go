package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/metrics-scraper-api/infrastructure/database/postgres"
	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
	"github.com/vfg2006/metrics-scraper-api/internal/domain"
)

const (
	extractionsTable = "midiamax_extractions me"
)

type ExtractionRepository interface {
	GetByAccountAndPeriod(accountID string, start, end time.Time) (*domain.ExtractionEntry, error)
	ListByAccount(accountID string, filters *domain.ExtractionFilters) ([]*domain.ExtractionEntry, error)
	SaveOrUpdate(entry *domain.ExtractionEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type extractionRepository struct {
	conn *postgres.Connection
}

func NewExtractionRepository(conn *postgres.Connection) ExtractionRepository {
	return &extractionRepository{
		conn: conn,
	}
}

func (r *extractionRepository) GetByAccountAndPeriod(accountID string, start, end time.Time) (*domain.ExtractionEntry, error) {
	query, args, err := squirrel.
		Select("me.id, me.account_id, me.period_start, me.period_end, me.success, me.metrics, me.warnings, me.error_message, me.created_at, me.updated_at").
		From(extractionsTable).
		Where(squirrel.Eq{
			"me.account_id":   accountID,
			"me.period_start": start.Format("2006-01-02"),
			"me.period_end":   end.Format("2006-01-02"),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear extração: %w", err)
	}

	return entry, nil
}

func (r *extractionRepository) ListByAccount(accountID string, filters *domain.ExtractionFilters) ([]*domain.ExtractionEntry, error) {
	builder := squirrel.
		Select("me.id, me.account_id, me.period_start, me.period_end, me.success, me.metrics, me.warnings, me.error_message, me.created_at, me.updated_at").
		From(extractionsTable).
		Where(squirrel.Eq{"me.account_id": accountID}).
		OrderBy("me.period_start DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.StartDate != nil {
			builder = builder.Where(squirrel.GtOrEq{"me.period_start": filters.StartDate.Format("2006-01-02")})
		}
		if filters.EndDate != nil {
			builder = builder.Where(squirrel.LtOrEq{"me.period_end": filters.EndDate.Format("2006-01-02")})
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.ExtractionEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear extrações: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *extractionRepository) SaveOrUpdate(entry *domain.ExtractionEntry) error {
	var metricsJSON []byte
	var err error

	if entry.Metrics != nil {
		metricsJSON, err = json.Marshal(entry.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("midiamax_extractions").
		Columns("account_id", "period_start", "period_end", "success", "metrics", "warnings", "error_message").
		Values(
			entry.AccountID,
			entry.PeriodStart.Format("2006-01-02"),
			entry.PeriodEnd.Format("2006-01-02"),
			entry.Success,
			metricsJSON,
			pq.Array(entry.Warnings),
			entry.ErrorMessage,
		).
		Suffix(`
			ON CONFLICT (account_id, period_start, period_end) DO UPDATE SET
				success = EXCLUDED.success,
				metrics = EXCLUDED.metrics,
				warnings = EXCLUDED.warnings,
				error_message = EXCLUDED.error_message,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *extractionRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("midiamax_extractions").
		Where(squirrel.Lt{"period_end": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *extractionRepository) scanEntry(row *sql.Row) (*domain.ExtractionEntry, error) {
	entry := &domain.ExtractionEntry{}
	var metricsJSON []byte
	var errorMessage sql.NullString

	err := row.Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.PeriodStart,
		&entry.PeriodEnd,
		&entry.Success,
		&metricsJSON,
		pq.Array(&entry.Warnings),
		&errorMessage,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.ErrorMessage = errorMessage.String

	if metricsJSON != nil {
		metrics := &midiamaxdomain.ExtractedMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		entry.Metrics = metrics
	}

	return entry, nil
}

func (r *extractionRepository) scanEntryRows(rows *sql.Rows) (*domain.ExtractionEntry, error) {
	entry := &domain.ExtractionEntry{}
	var metricsJSON []byte
	var errorMessage sql.NullString

	err := rows.Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.PeriodStart,
		&entry.PeriodEnd,
		&entry.Success,
		&metricsJSON,
		pq.Array(&entry.Warnings),
		&errorMessage,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.ErrorMessage = errorMessage.String

	if metricsJSON != nil {
		metrics := &midiamaxdomain.ExtractedMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		entry.Metrics = metrics
	}

	return entry, nil
}
