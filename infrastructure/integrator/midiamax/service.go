// Package midiamax orquestra a extração de métricas do painel do MidiaMax,
// que não expõe API: o serviço autentica via navegador, exporta o relatório
// do período e interpreta a planilha baixada.
package midiamax

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
	"github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/scraper"
	"github.com/vfg2006/metrics-scraper-api/pkg/utils"
)

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 5 * time.Second
)

// MidiaMaxIntegrator expõe as operações do integrador para os casos de uso.
type MidiaMaxIntegrator interface {
	// FetchMetrics executa o ciclo completo (login, período, exportação e
	// extração) para a conta e o período informados. Nunca retorna erro de
	// scraping: falhas viram FetchResult com Success=false.
	FetchMetrics(ctx context.Context, accountID string, creds midiamaxdomain.Credentials, period midiamaxdomain.Period) midiamaxdomain.FetchResult

	// TestLogin valida as credenciais abrindo uma sessão visível e fazendo
	// apenas o login, sem exportar nada.
	TestLogin(ctx context.Context, creds midiamaxdomain.Credentials) error
}

// SessionFactory abre sessões de navegador. Cada tentativa usa uma sessão
// nova, sem estado compartilhado com as anteriores.
type SessionFactory interface {
	Open(ctx context.Context, sessionID string, headless bool) (scraper.Session, error)
}

// Authenticator conduz o fluxo de login na sessão.
type Authenticator interface {
	Login(s scraper.Session, creds midiamaxdomain.Credentials) error
	IsLoggedIn(s scraper.Session) bool
}

// Exporter aplica o período e baixa o relatório, retornando o caminho do
// arquivo exportado.
type Exporter interface {
	Export(s scraper.Session, period midiamaxdomain.Period) (string, error)
}

// MetricsParser interpreta o arquivo exportado.
type MetricsParser interface {
	Parse(filePath string, period midiamaxdomain.Period) (*midiamaxdomain.ExtractedMetrics, error)
	Validate(metrics *midiamaxdomain.ExtractedMetrics) []string
}

// Config controla a política de tentativas e o modo do navegador.
type Config struct {
	Headless   bool
	MaxRetries int
	RetryDelay time.Duration
}

type service struct {
	sessions SessionFactory
	auth     Authenticator
	exporter Exporter
	parser   MetricsParser
	cfg      Config
}

// New monta o integrador com as dependências injetadas. Valores zerados na
// configuração caem nos padrões do serviço.
func New(sessions SessionFactory, auth Authenticator, exporter Exporter, parser MetricsParser, cfg Config) MidiaMaxIntegrator {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}

	return &service{
		sessions: sessions,
		auth:     auth,
		exporter: exporter,
		parser:   parser,
		cfg:      cfg,
	}
}

// FetchMetrics tenta o ciclo completo até MaxRetries vezes, com sessão nova e
// espera fixa entre as tentativas. A primeira tentativa bem-sucedida encerra o
// ciclo; esgotadas todas, o resultado agrega a última falha e o screenshot de
// diagnóstico correspondente.
func (s *service) FetchMetrics(ctx context.Context, accountID string, creds midiamaxdomain.Credentials, period midiamaxdomain.Period) midiamaxdomain.FetchResult {
	logger := logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"start":      period.Start.Format(time.DateOnly),
		"end":        period.End.Format(time.DateOnly),
	})

	var lastErr error
	var lastScreenshot string

	for attempt := 1; attempt <= s.cfg.MaxRetries; attempt++ {
		if attempt > 1 {
			if err := s.sleep(ctx); err != nil {
				lastErr = err
				lastScreenshot = ""
				break
			}

			// Erros estruturais (credenciais recusadas, MFA exigido) não se
			// resolvem repetindo com as mesmas credenciais, mas a política
			// atual ainda gasta o orçamento de tentativas com eles.
			if midiamaxdomain.IsTerminal(lastErr) {
				logger.WithField("attempt", attempt).
					Warn("Repetindo tentativa após erro estrutural de autenticação")
			}
		}

		metrics, warnings, err := s.runAttempt(ctx, logger, attempt, creds, period)
		if err == nil {
			logger.WithField("attempt", attempt).Info("Métricas extraídas com sucesso")
			return midiamaxdomain.FetchResult{
				Success:  true,
				Metrics:  metrics,
				Warnings: warnings,
			}
		}

		// O screenshot reportado acompanha o último erro: tentativa nova sem
		// captura própria não herda o diagnóstico da anterior
		lastErr = err
		lastScreenshot = midiamaxdomain.ScreenshotFromError(err)

		logger.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Tentativa de extração falhou")

		if ctx.Err() != nil {
			break
		}
	}

	logger.WithError(lastErr).Error("Extração de métricas esgotou as tentativas")

	return midiamaxdomain.FetchResult{
		Success:        false,
		ErrorMessage:   errorMessage(lastErr),
		ScreenshotPath: lastScreenshot,
	}
}

// runAttempt executa uma tentativa isolada: sessão nova, login, exportação e
// extração. A sessão é fechada exatamente uma vez, haja o que houver.
func (s *service) runAttempt(
	ctx context.Context,
	logger *logrus.Entry,
	attempt int,
	creds midiamaxdomain.Credentials,
	period midiamaxdomain.Period,
) (metrics *midiamaxdomain.ExtractedMetrics, warnings []string, err error) {
	sessionID := utils.GenerateSessionID()
	logger = logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"attempt":    attempt,
	})

	session, err := s.sessions.Open(ctx, sessionID, s.cfg.Headless)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao abrir a sessão do navegador: %w", err)
	}

	defer func() {
		if err != nil && midiamaxdomain.ScreenshotFromError(err) == "" {
			// Falha sem screenshot próprio: captura o estado final da página
			if path := session.Screenshot("falha-estado-final"); path != "" {
				var scrapeErr *midiamaxdomain.ScrapeError
				if errors.As(err, &scrapeErr) {
					scrapeErr.ScreenshotPath = path
				}
			}
		}
		if closeErr := session.Close(); closeErr != nil {
			logger.WithError(closeErr).Warn("Erro ao encerrar a sessão")
		}
	}()

	logger.WithField("step", "login").Info("Iniciando autenticação no painel")
	if err = s.auth.Login(session, creds); err != nil {
		return nil, nil, err
	}

	// A disputa pós-submit pode terminar inconclusiva em SPA; a guarda
	// secundária confirma os marcos de sessão autenticada antes de seguir.
	if !s.auth.IsLoggedIn(session) {
		err = midiamaxdomain.NewScrapeError(midiamaxdomain.ErrNotAuthenticated, "", sessionID,
			"marcos de sessão autenticada ausentes após o login").
			WithScreenshot(session.Screenshot("login-inconclusivo"))
		return nil, nil, err
	}

	logger.WithField("step", "export").Info("Exportando o relatório do período")
	filePath, err := s.exporter.Export(session, period)
	if err != nil {
		return nil, nil, err
	}

	logger.WithFields(logrus.Fields{"step": "parse", "file": filePath}).Info("Extraindo métricas da planilha")
	metrics, err = s.parser.Parse(filePath, period)
	if err != nil {
		return nil, nil, err
	}

	warnings = s.parser.Validate(metrics)
	for _, warning := range warnings {
		logger.WithField("warning", warning).Warn("Aviso de plausibilidade nas métricas extraídas")
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logger.Debug("Métricas extraídas: ", utils.PrettyJson(metrics))
	}

	return metrics, warnings, nil
}

// TestLogin abre uma sessão com o navegador visível e executa somente o
// login, para diagnóstico manual de credenciais.
func (s *service) TestLogin(ctx context.Context, creds midiamaxdomain.Credentials) error {
	sessionID := utils.GenerateSessionID()
	logger := logrus.WithField("session_id", sessionID)

	session, err := s.sessions.Open(ctx, sessionID, false)
	if err != nil {
		return fmt.Errorf("erro ao abrir a sessão do navegador: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			logger.WithError(closeErr).Warn("Erro ao encerrar a sessão de teste")
		}
	}()

	if err := s.auth.Login(session, creds); err != nil {
		return err
	}

	if !s.auth.IsLoggedIn(session) {
		return midiamaxdomain.NewScrapeError(midiamaxdomain.ErrNotAuthenticated, "", sessionID,
			"marcos de sessão autenticada ausentes após o login")
	}

	logger.Info("Credenciais validadas no painel")
	return nil
}

// sleep espera o intervalo entre tentativas respeitando o cancelamento do
// contexto.
func (s *service) sleep(ctx context.Context) error {
	timer := time.NewTimer(s.cfg.RetryDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func errorMessage(err error) string {
	if err == nil {
		return "todas as tentativas de extração falharam"
	}
	return err.Error()
}
