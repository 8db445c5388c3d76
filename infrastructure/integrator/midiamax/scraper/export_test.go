package scraper

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
	"github.com/vfg2006/metrics-scraper-api/pkg/apiErrors"
)

const testReportsURL = "https://painel.exemplo.app/relatorios"

func newExportFlow() *ExportFlow {
	return NewExportFlow(
		testReportsURL,
		testSelectors(),
		DefaultPeriodStrategies(testSelectors(), time.Second, fixedNow),
		time.Second,
		time.Second,
		2*time.Second,
	)
}

func TestExportFlow_Success(t *testing.T) {
	s := newFakeSession()
	s.visible["#period"] = true
	s.visible["#export"] = true
	s.downloadPath = "/tmp/downloads/relatorio.xlsx"

	filePath, err := newExportFlow().Export(s, marchPeriod())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/downloads/relatorio.xlsx", filePath)

	// A espera pelo download tem que estar armada antes do clique que o
	// dispara, senão o evento se perde
	armedAt, clickedAt := -1, -1
	for i, action := range s.actions {
		switch action {
		case "arm-download":
			armedAt = i
		case "click:#export":
			clickedAt = i
		}
	}
	require.NotEqual(t, -1, armedAt)
	require.NotEqual(t, -1, clickedAt)
	assert.Less(t, armedAt, clickedAt)
}

func TestExportFlow_PrefersSpreadsheetFormat(t *testing.T) {
	s := newFakeSession()
	s.visible["#period"] = true
	s.visible["#export"] = true
	s.visible["#format-xlsx"] = true
	s.downloadPath = "/tmp/downloads/relatorio.xlsx"

	_, err := newExportFlow().Export(s, marchPeriod())
	require.NoError(t, err)
	assert.Contains(t, s.actions, "click:#format-xlsx")
}

func TestExportFlow_OpensPeriodControlWhenPresent(t *testing.T) {
	s := newFakeSession()
	s.visible["#period-control"] = true
	s.visible["#period"] = true
	s.visible["#export"] = true
	s.downloadPath = "/tmp/downloads/relatorio.xlsx"

	_, err := newExportFlow().Export(s, marchPeriod())
	require.NoError(t, err)
	assert.Contains(t, s.actions, "click:#period-control")
}

func TestExportFlow_DismissesStrayDialog(t *testing.T) {
	s := newFakeSession()
	s.visible["#cancel"] = true
	s.visible["#period"] = true
	s.visible["#export"] = true
	s.downloadPath = "/tmp/downloads/relatorio.xlsx"

	_, err := newExportFlow().Export(s, marchPeriod())
	require.NoError(t, err)
	assert.Contains(t, s.actions, "click:#cancel")
}

func TestExportFlow_DownloadTimeout(t *testing.T) {
	s := newFakeSession()
	s.visible["#period"] = true
	s.visible["#export"] = true
	s.downloadErr = errors.New("tempo esgotado")

	_, err := newExportFlow().Export(s, marchPeriod())
	require.Error(t, err)
	assert.ErrorIs(t, err, midiamaxdomain.ErrDownloadTimeout)

	var scrapeErr *midiamaxdomain.ScrapeError
	require.True(t, errors.As(err, &scrapeErr))
	assert.Equal(t, apiErrors.ErrScrapeTimeout, scrapeErr.Code)
	assert.NotEmpty(t, scrapeErr.ScreenshotPath)
}

func TestExportFlow_ExportButtonMissing(t *testing.T) {
	s := newFakeSession()
	s.visible["#period"] = true

	_, err := newExportFlow().Export(s, marchPeriod())
	require.Error(t, err)
	assert.ErrorIs(t, err, midiamaxdomain.ErrExportTrigger)
}

func TestExportFlow_NavigationFailure(t *testing.T) {
	s := newFakeSession()
	s.navErr = errors.New("conexão recusada")

	_, err := newExportFlow().Export(s, marchPeriod())
	require.Error(t, err)
	assert.ErrorIs(t, err, midiamaxdomain.ErrNavigation)
}

func TestExportFlow_MissingPeriodStrategiesStillExports(t *testing.T) {
	// Nenhum controle de período disponível: a exportação segue com o
	// período padrão do painel
	s := newFakeSession()
	s.visible["#export"] = true
	s.downloadPath = "/tmp/downloads/relatorio.xlsx"

	filePath, err := newExportFlow().Export(s, marchPeriod())
	require.NoError(t, err)
	assert.NotEmpty(t, filePath)
}
