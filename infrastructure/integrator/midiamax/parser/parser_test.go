package parser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
)

func testPeriod() midiamaxdomain.Period {
	return midiamaxdomain.Period{
		Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

// metricField resolve a chave canônica para o campo correspondente.
func metricField(m *midiamaxdomain.ExtractedMetrics, target string) *float64 {
	fields := map[string]*float64{
		MetricImpressions:           m.Impressions,
		MetricIdentifiedImpressions: m.IdentifiedImpressions,
		MetricClicks:                m.Clicks,
		MetricIdentifiedClicks:      m.IdentifiedClicks,
		MetricAvgCTR:                m.AvgCTR,
		MetricReach:                 m.Reach,
		MetricMediaViews:            m.MediaViews,
		MetricMediaClicks:           m.MediaClicks,
		MetricSignals:               m.Signals,
		MetricSpend:                 m.Spend,
	}
	return fields[target]
}

func TestColumnMapping_EveryHeaderYieldsItsMetric(t *testing.T) {
	p := New()

	for header, target := range ColumnMapping {
		if target == Ignore {
			continue
		}

		t.Run(header, func(t *testing.T) {
			rows := [][]string{
				{"campanha", header},
				{"Total", "123.45"},
			}

			metrics, err := p.ExtractRows(rows, testPeriod())
			require.NoError(t, err)

			value := metricField(metrics, target)
			require.NotNil(t, value, "cabeçalho %q não populou a métrica %q", header, target)
			assert.InDelta(t, 123.45, *value, 0.0001)

			// Nenhuma outra métrica pode ter sido populada de carona
			populated := 0
			for _, candidate := range []string{
				MetricImpressions, MetricIdentifiedImpressions, MetricClicks,
				MetricIdentifiedClicks, MetricAvgCTR, MetricReach,
				MetricMediaViews, MetricMediaClicks, MetricSignals, MetricSpend,
			} {
				if metricField(metrics, candidate) != nil {
					populated++
				}
			}
			assert.Equal(t, 1, populated)
		})
	}
}

func TestColumnMapping_TargetsAreKnownMetrics(t *testing.T) {
	known := map[string]bool{
		MetricImpressions:           true,
		MetricIdentifiedImpressions: true,
		MetricClicks:                true,
		MetricIdentifiedClicks:      true,
		MetricAvgCTR:                true,
		MetricReach:                 true,
		MetricMediaViews:            true,
		MetricMediaClicks:           true,
		MetricSignals:               true,
		MetricSpend:                 true,
		Ignore:                      true,
	}

	for header, target := range ColumnMapping {
		assert.True(t, known[target], "cabeçalho %q aponta para alvo desconhecido %q", header, target)
	}
}

func TestExtractRows_TotalsRowPreferred(t *testing.T) {
	p := New()

	rows := [][]string{
		{"campaign", "impressions", "clicks", "avg ctr %"},
		{"Campanha A", "60000", "1500", "2.5%"},
		{"Campanha B", "40000", "1000", "2.5%"},
		{"Total", "100000", "2500", "2.5%"},
	}

	metrics, err := p.ExtractRows(rows, testPeriod())
	require.NoError(t, err)

	require.NotNil(t, metrics.Impressions)
	assert.Equal(t, 100000.0, *metrics.Impressions)

	require.NotNil(t, metrics.Clicks)
	assert.Equal(t, 2500.0, *metrics.Clicks)

	require.NotNil(t, metrics.AvgCTR)
	assert.Equal(t, 2.5, *metrics.AvgCTR)

	// A linha de totais também fica nas linhas brutas, como veio do painel
	assert.Len(t, metrics.RawRows, 3)

	warnings := p.Validate(metrics)
	assert.Empty(t, warnings)
}

func TestExtractRows_AggregatesWithoutTotalsRow(t *testing.T) {
	p := New()

	rows := [][]string{
		{"campanha", "impressões", "cliques", "investimento"},
		{"Campanha A", "60000", "1500", "R$ 1.000,00"},
		{"Campanha B", "40000", "1000", "R$ 500,50"},
	}

	metrics, err := p.ExtractRows(rows, testPeriod())
	require.NoError(t, err)

	require.NotNil(t, metrics.Impressions)
	assert.Equal(t, 100000.0, *metrics.Impressions)

	require.NotNil(t, metrics.Clicks)
	assert.Equal(t, 2500.0, *metrics.Clicks)

	require.NotNil(t, metrics.Spend)
	assert.InDelta(t, 1500.5, *metrics.Spend, 0.0001)
}

func TestExtractRows_AggregateFallbackCTRIsSimpleMean(t *testing.T) {
	p := New()

	// CTR agregado é média aritmética simples das linhas, não ponderada por
	// impressões: (4 + 1) / 2 = 2.5 mesmo com volumes muito diferentes
	rows := [][]string{
		{"campaign", "impressions", "ctr"},
		{"Campanha A", "1000", "4"},
		{"Campanha B", "99000", "1"},
	}

	metrics, err := p.ExtractRows(rows, testPeriod())
	require.NoError(t, err)

	require.NotNil(t, metrics.AvgCTR)
	assert.Equal(t, 2.5, *metrics.AvgCTR)
}

func TestExtractRows_AggregationIsOrderIndependent(t *testing.T) {
	p := New()

	forward := [][]string{
		{"campaign", "impressions", "clicks"},
		{"A", "100", "10"},
		{"B", "200", "20"},
		{"C", "300", "30"},
	}
	reversed := [][]string{
		{"campaign", "impressions", "clicks"},
		{"C", "300", "30"},
		{"B", "200", "20"},
		{"A", "100", "10"},
	}

	m1, err := p.ExtractRows(forward, testPeriod())
	require.NoError(t, err)
	m2, err := p.ExtractRows(reversed, testPeriod())
	require.NoError(t, err)

	assert.Equal(t, *m1.Impressions, *m2.Impressions)
	assert.Equal(t, *m1.Clicks, *m2.Clicks)
}

func TestExtractRows_EmptyCellsAreAbsentNotZero(t *testing.T) {
	p := New()

	rows := [][]string{
		{"campaign", "impressions", "reach"},
		{"Total", "100000", ""},
	}

	metrics, err := p.ExtractRows(rows, testPeriod())
	require.NoError(t, err)

	require.NotNil(t, metrics.Impressions)
	assert.Nil(t, metrics.Reach)

	// Na linha bruta a célula vazia aparece como vazia, não como zero
	require.Len(t, metrics.RawRows, 1)
	cell, ok := metrics.RawRows[0]["reach"]
	require.True(t, ok)
	assert.Equal(t, midiamaxdomain.CellEmpty, cell.Kind)
}

func TestExtractRows_UnknownColumnsAreIgnored(t *testing.T) {
	p := New()

	rows := [][]string{
		{"campaign", "impressions", "coluna futura"},
		{"Total", "100000", "999"},
	}

	metrics, err := p.ExtractRows(rows, testPeriod())
	require.NoError(t, err)

	require.NotNil(t, metrics.Impressions)
	assert.Equal(t, 100000.0, *metrics.Impressions)

	// A coluna desconhecida não vira métrica, mas fica nas linhas brutas
	cell, ok := metrics.RawRows[0]["coluna futura"]
	require.True(t, ok)
	assert.Equal(t, midiamaxdomain.CellNumber, cell.Kind)
}

func TestExtractRows_Errors(t *testing.T) {
	p := New()

	_, err := p.ExtractRows(nil, testPeriod())
	assert.ErrorIs(t, err, midiamaxdomain.ErrExtraction)

	_, err = p.ExtractRows([][]string{{"campaign", "impressions"}}, testPeriod())
	assert.ErrorIs(t, err, midiamaxdomain.ErrExtraction)
}

func TestValidate_Warnings(t *testing.T) {
	p := New()

	zero := 0.0
	metrics := &midiamaxdomain.ExtractedMetrics{
		Impressions: &zero,
		Clicks:      &zero,
	}

	warnings := p.Validate(metrics)
	assert.Len(t, warnings, 3)
}

func TestParse_XLSXFile(t *testing.T) {
	p := New()

	dir := t.TempDir()
	filePath := filepath.Join(dir, "relatorio.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	data := [][]any{
		{"campaign", "impressions", "clicks", "avg ctr %"},
		{"Campanha A", "60000", "1500", "2.5%"},
		{"Total", "100000", "2500", "2.5%"},
	}
	for i, row := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(filePath))
	require.NoError(t, f.Close())

	metrics, err := p.Parse(filePath, testPeriod())
	require.NoError(t, err)

	require.NotNil(t, metrics.Impressions)
	assert.Equal(t, 100000.0, *metrics.Impressions)
	require.NotNil(t, metrics.AvgCTR)
	assert.Equal(t, 2.5, *metrics.AvgCTR)
}

func TestParse_CSVFileWithSemicolon(t *testing.T) {
	p := New()

	dir := t.TempDir()
	filePath := filepath.Join(dir, "relatorio.csv")

	content := "campanha;impressões;cliques\nCampanha A;60000;1500\nTotal;100000;2500\n"
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))

	metrics, err := p.Parse(filePath, testPeriod())
	require.NoError(t, err)

	require.NotNil(t, metrics.Impressions)
	assert.Equal(t, 100000.0, *metrics.Impressions)
	require.NotNil(t, metrics.Clicks)
	assert.Equal(t, 2500.0, *metrics.Clicks)
}

func TestParse_MissingFile(t *testing.T) {
	p := New()

	_, err := p.Parse(filepath.Join(t.TempDir(), "nao-existe.xlsx"), testPeriod())
	assert.ErrorIs(t, err, midiamaxdomain.ErrExtraction)
}
