package scraper

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
	"github.com/vfg2006/metrics-scraper-api/pkg/apiErrors"
)

// ExportFlow conduz a sessão autenticada até o download do relatório:
// abre a tela de relatórios, aplica o período, dispara a exportação e espera
// o arquivo chegar. Cada passo arriscado tira screenshot antes e depois para
// diagnosticar deriva de seletores.
type ExportFlow struct {
	reportsURL      string
	selectors       Selectors
	strategies      []PeriodStrategy
	selectorTimeout time.Duration
	settleTimeout   time.Duration
	downloadTimeout time.Duration
}

func NewExportFlow(
	reportsURL string,
	selectors Selectors,
	strategies []PeriodStrategy,
	selectorTimeout, settleTimeout, downloadTimeout time.Duration,
) *ExportFlow {
	return &ExportFlow{
		reportsURL:      reportsURL,
		selectors:       selectors,
		strategies:      strategies,
		selectorTimeout: selectorTimeout,
		settleTimeout:   settleTimeout,
		downloadTimeout: downloadTimeout,
	}
}

// Export aplica o período e dispara a exportação, retornando o caminho do
// arquivo baixado.
func (e *ExportFlow) Export(s Session, period midiamaxdomain.Period) (string, error) {
	logger := logrus.WithField("session_id", s.ID())

	if err := s.Navigate(e.reportsURL); err != nil {
		return "", midiamaxdomain.NewScrapeError(midiamaxdomain.ErrNavigation, apiErrors.ErrScrapeNavigation, s.ID(),
			fmt.Sprintf("erro ao abrir a tela de relatórios: %v", err)).
			WithScreenshot(s.Screenshot("relatorios-navegacao-falhou"))
	}

	if err := s.WaitUntilReady(e.settleTimeout); err != nil {
		return "", midiamaxdomain.NewScrapeError(midiamaxdomain.ErrStepTimeout, apiErrors.ErrScrapeTimeout, s.ID(),
			"tela de relatórios não assentou").
			WithScreenshot(s.Screenshot("relatorios-nao-assentou"))
	}

	// Avisos e diálogos de novidades cobrem os controles em alguns tenants;
	// fechar é melhor esforço
	if s.Exists(e.selectors.CancelButton) {
		if err := s.Click(e.selectors.CancelButton); err != nil {
			logger.WithError(err).Debug("Diálogo residual não fechou; seguindo")
		}
		s.Pause()
	}

	s.Screenshot("antes-periodo")

	// Alguns tenants exigem abrir o controle de período antes de interagir
	if s.Exists(e.selectors.PeriodControl) {
		if err := s.Click(e.selectors.PeriodControl); err != nil {
			logger.WithError(err).Debug("Controle de período não abriu; estratégias seguem mesmo assim")
		}
		s.Pause()
	}

	ApplyPeriod(s, period, e.strategies)

	if s.Exists(e.selectors.ApplyButton) {
		if err := s.Click(e.selectors.ApplyButton); err != nil {
			logger.WithError(err).Debug("Botão de aplicar período falhou; seguindo")
		}
		if err := s.WaitUntilReady(e.settleTimeout); err != nil {
			logger.Warn("Painel não assentou após aplicar o período")
		}
	}

	s.Screenshot("apos-periodo")

	if err := s.WaitVisible(e.selectors.ExportButton, e.selectorTimeout); err != nil {
		return "", midiamaxdomain.NewScrapeError(midiamaxdomain.ErrExportTrigger, apiErrors.ErrScrapeNavigation, s.ID(),
			"botão de exportação não localizado").
			WithScreenshot(s.Screenshot("exportacao-sem-botao"))
	}

	s.Screenshot("antes-exportacao")

	// O download precisa estar armado antes do clique que o dispara.
	// O tempo limite é maior que o das esperas interativas: a geração do
	// relatório acontece no servidor do painel e pode demorar.
	wait := s.ExpectDownload(e.downloadTimeout)

	if err := s.Click(e.selectors.ExportButton); err != nil {
		return "", midiamaxdomain.NewScrapeError(midiamaxdomain.ErrExportTrigger, apiErrors.ErrScrapeNavigation, s.ID(),
			fmt.Sprintf("erro ao clicar na exportação: %v", err)).
			WithScreenshot(s.Screenshot("exportacao-clique-falhou"))
	}
	s.Pause()

	// Quando o painel oferece mais de um formato, prefere planilha
	if s.Exists(e.selectors.FormatSpreadsheet) {
		if err := s.Click(e.selectors.FormatSpreadsheet); err != nil {
			logger.WithError(err).Debug("Opção de formato de planilha falhou; usando o formato padrão")
		}
	}

	filePath, err := wait()
	if err != nil {
		return "", midiamaxdomain.NewScrapeError(midiamaxdomain.ErrDownloadTimeout, apiErrors.ErrScrapeTimeout, s.ID(),
			fmt.Sprintf("download não concluído: %v", err)).
			WithScreenshot(s.Screenshot("download-nao-concluido"))
	}

	s.Screenshot("apos-exportacao")
	logger.WithField("file", filePath).Info("Relatório exportado com sucesso")

	return filePath, nil
}
