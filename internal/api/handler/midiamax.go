package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
	"github.com/vfg2006/metrics-scraper-api/internal/domain"
	"github.com/vfg2006/metrics-scraper-api/internal/usecases/collecting"
	"github.com/vfg2006/metrics-scraper-api/pkg/apiErrors"
	"github.com/vfg2006/metrics-scraper-api/pkg/log"
	"github.com/vfg2006/metrics-scraper-api/pkg/utils"
)

// fetchTimeout limita a duração de uma coleta disparada pela API. Três
// tentativas com navegador e download cabem com folga.
const fetchTimeout = 15 * time.Minute

// FetchAccountMetrics dispara a coleta de métricas de uma conta para o
// período informado. A coleta roda em segundo plano; o resultado é consultado
// depois em GetExtractionResults.
func FetchAccountMetrics(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("midiamax: fetch requested")

		if !service.HasAccount(id) {
			apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não configurada no serviço", nil)
			return
		}

		period, err := periodFromRequest(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Warn("midiamax: invalid period parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()

			if _, err := service.CollectAccount(ctx, id, period); err != nil {
				log.L.WithFields(log.Fields{
					"account_id": id,
					"error":      err.Error(),
				}).Error("midiamax: background fetch failed")
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message":    "Coleta iniciada",
			"account_id": id,
			"start":      period.Start.Format(time.DateOnly),
			"end":        period.End.Format(time.DateOnly),
		})
	})
}

// TestAccountLogin valida as credenciais da conta abrindo o painel com o
// navegador visível. Operação síncrona, pensada para diagnóstico.
func TestAccountLogin(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("midiamax: test login requested")

		err := service.TestConnection(r.Context(), id)
		if err != nil {
			if errors.Is(err, collecting.ErrAccountNotConfigured) {
				apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não configurada no serviço", nil)
				return
			}

			code := apiErrors.ErrExternalService
			var scrapeErr *midiamaxdomain.ScrapeError
			if errors.As(err, &scrapeErr) && scrapeErr.Code != "" {
				code = scrapeErr.Code
			}

			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Warn("midiamax: test login failed")

			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":    "Credenciais validadas com sucesso",
			"account_id": id,
		})
	})
}

// GetExtractionResults lista as extrações persistidas da conta, com filtro
// opcional por intervalo de datas.
func GetExtractionResults(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("midiamax: listing extraction results")

		filters := &domain.ExtractionFilters{}

		if raw := r.URL.Query().Get("start_date"); raw != "" {
			startDate, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use o formato YYYY-MM-DD", nil)
				return
			}
			filters.StartDate = startDate
		}

		if raw := r.URL.Query().Get("end_date"); raw != "" {
			endDate, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use o formato YYYY-MM-DD", nil)
				return
			}
			filters.EndDate = endDate
		}

		entries, err := service.GetResults(id, filters)
		if err != nil {
			if errors.Is(err, collecting.ErrAccountNotConfigured) {
				apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não configurada no serviço", nil)
				return
			}

			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("midiamax: failed to list extraction results")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("midiamax: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// periodFromRequest interpreta start_date e end_date da query. Ambos são
// obrigatórios e o início não pode ser posterior ao fim.
func periodFromRequest(r *http.Request) (midiamaxdomain.Period, error) {
	rawStart := r.URL.Query().Get("start_date")
	rawEnd := r.URL.Query().Get("end_date")

	if rawStart == "" || rawEnd == "" {
		return midiamaxdomain.Period{}, errors.New("start_date e end_date são obrigatórios (YYYY-MM-DD)")
	}

	start, err := utils.ParseDate(rawStart)
	if err != nil {
		return midiamaxdomain.Period{}, errors.New("start_date inválida, use o formato YYYY-MM-DD")
	}

	end, err := utils.ParseDate(rawEnd)
	if err != nil {
		return midiamaxdomain.Period{}, errors.New("end_date inválida, use o formato YYYY-MM-DD")
	}

	if start.After(*end) {
		return midiamaxdomain.Period{}, errors.New("start_date não pode ser posterior a end_date")
	}

	return midiamaxdomain.Period{Start: *start, End: *end}, nil
}
