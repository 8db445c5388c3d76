package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
	"github.com/vfg2006/metrics-scraper-api/pkg/utils"
)

// Parser lê o arquivo exportado pelo painel do MidiaMax (xlsx ou csv) e o
// converte nas métricas canônicas.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

// Parse lê o arquivo exportado e extrai as métricas do período informado.
// Somente a primeira planilha é considerada; a primeira linha é o cabeçalho.
func (p *Parser) Parse(filePath string, period midiamaxdomain.Period) (*midiamaxdomain.ExtractedMetrics, error) {
	rows, err := p.readRows(filePath)
	if err != nil {
		return nil, err
	}

	return p.ExtractRows(rows, period)
}

// readRows carrega a matriz de células de acordo com a extensão do arquivo.
func (p *Parser) readRows(filePath string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		return p.readCSV(filePath)
	default:
		return p.readXLSX(filePath)
	}
}

func (p *Parser) readXLSX(filePath string) ([][]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: não foi possível abrir o arquivo %s: %v", midiamaxdomain.ErrExtraction, filepath.Base(filePath), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: arquivo sem planilhas", midiamaxdomain.ErrExtraction)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao ler a planilha %q: %v", midiamaxdomain.ErrExtraction, sheets[0], err)
	}

	return rows, nil
}

func (p *Parser) readCSV(filePath string) ([][]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: não foi possível abrir o arquivo %s: %v", midiamaxdomain.ErrExtraction, filepath.Base(filePath), err)
	}
	defer f.Close()

	firstLine := make([]byte, 4096)
	n, _ := f.Read(firstLine)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: erro ao reposicionar o arquivo: %v", midiamaxdomain.ErrExtraction, err)
	}

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	// Exportações em português costumam vir com ponto e vírgula
	if header := string(firstLine[:n]); strings.Count(header, ";") > strings.Count(header, ",") {
		reader.Comma = ';'
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: erro ao ler o CSV: %v", midiamaxdomain.ErrExtraction, err)
	}

	return rows, nil
}

// ExtractRows aplica o mapeamento de colunas sobre a matriz de células.
// Prefere a linha de totais emitida pelo próprio painel (primeira célula
// começando com "total"); na ausência dela, agrega as linhas de dados.
func (p *Parser) ExtractRows(rows [][]string, period midiamaxdomain.Period) (*midiamaxdomain.ExtractedMetrics, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: exportação vazia", midiamaxdomain.ErrExtraction)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: exportação sem linhas de dados além do cabeçalho", midiamaxdomain.ErrExtraction)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	dataRows := rows[1:]

	metrics := &midiamaxdomain.ExtractedMetrics{
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		ExtractedAt: time.Now(),
		RawRows:     buildRawRows(headers, dataRows),
	}

	if totals, ok := findTotalsRow(dataRows); ok {
		p.applyTotalsRow(metrics, headers, totals)
		return metrics, nil
	}

	p.aggregateRows(metrics, headers, dataRows)
	return metrics, nil
}

// findTotalsRow procura, de baixo para cima, a linha de resumo cuja primeira
// célula começa com "total" (sem diferenciar maiúsculas).
func findTotalsRow(dataRows [][]string) ([]string, bool) {
	for i := len(dataRows) - 1; i >= 0; i-- {
		row := dataRows[i]
		if len(row) == 0 {
			continue
		}
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(row[0])), "total") {
			return row, true
		}
	}
	return nil, false
}

// applyTotalsRow lê os valores direto da linha de totais. Esse caminho é
// preferido porque reflete a aritmética do próprio painel, sem desvio de
// arredondamento.
func (p *Parser) applyTotalsRow(metrics *midiamaxdomain.ExtractedMetrics, headers, totals []string) {
	for col, header := range headers {
		target, known := CanonicalMetric(header)
		if !known || target == Ignore || col >= len(totals) {
			continue
		}

		if value := utils.ParseFlexibleNumber(totals[col]); value != nil {
			setMetric(metrics, target, *value)
		}
	}
}

// aggregateRows soma as linhas de dados coluna a coluna. A coluna de CTR vira
// média aritmética simples sobre as linhas em que apareceu — não é ponderada
// por impressões; a linha de totais, quando existe, não passa por aqui.
func (p *Parser) aggregateRows(metrics *midiamaxdomain.ExtractedMetrics, headers []string, dataRows [][]string) {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, row := range dataRows {
		for col, header := range headers {
			target, known := CanonicalMetric(header)
			if !known || target == Ignore || col >= len(row) {
				continue
			}

			if value := utils.ParseFlexibleNumber(row[col]); value != nil {
				sums[target] += *value
				counts[target]++
			}
		}
	}

	for target, sum := range sums {
		if target == MetricAvgCTR {
			setMetric(metrics, target, utils.RoundWithTwoDecimalPlace(sum/float64(counts[target])))
			continue
		}
		setMetric(metrics, target, sum)
	}
}

// buildRawRows preserva todas as linhas de dados exatamente como vieram,
// indexadas pelo cabeçalho, para auditoria e exibição posterior.
func buildRawRows(headers []string, dataRows [][]string) []midiamaxdomain.RawRow {
	raw := make([]midiamaxdomain.RawRow, 0, len(dataRows))

	for _, row := range dataRows {
		entry := make(midiamaxdomain.RawRow, len(headers))
		for col, header := range headers {
			if header == "" {
				continue
			}

			if col >= len(row) || strings.TrimSpace(row[col]) == "" {
				entry[header] = midiamaxdomain.EmptyCell()
				continue
			}

			cell := strings.TrimSpace(row[col])
			if number, err := strconv.ParseFloat(cell, 64); err == nil {
				entry[header] = midiamaxdomain.NumberCell(number)
			} else {
				entry[header] = midiamaxdomain.TextCell(cell)
			}
		}
		raw = append(raw, entry)
	}

	return raw
}

func setMetric(m *midiamaxdomain.ExtractedMetrics, target string, value float64) {
	switch target {
	case MetricImpressions:
		m.Impressions = &value
	case MetricIdentifiedImpressions:
		m.IdentifiedImpressions = &value
	case MetricClicks:
		m.Clicks = &value
	case MetricIdentifiedClicks:
		m.IdentifiedClicks = &value
	case MetricAvgCTR:
		m.AvgCTR = &value
	case MetricReach:
		m.Reach = &value
	case MetricMediaViews:
		m.MediaViews = &value
	case MetricMediaClicks:
		m.MediaClicks = &value
	case MetricSignals:
		m.Signals = &value
	case MetricSpend:
		m.Spend = &value
	default:
		logrus.WithField("metric", target).Warn("Métrica mapeada sem campo correspondente")
	}
}

// Validate aponta inconsistências não fatais do resultado da extração.
// Os avisos acompanham um resultado de sucesso; nunca viram erro.
func (p *Parser) Validate(m *midiamaxdomain.ExtractedMetrics) []string {
	var warnings []string

	if m.Impressions != nil && *m.Impressions == 0 {
		warnings = append(warnings, "impressões zeradas no período extraído")
	}
	if m.Clicks != nil && *m.Clicks == 0 {
		warnings = append(warnings, "cliques zerados no período extraído")
	}
	if len(m.RawRows) == 0 {
		warnings = append(warnings, "exportação sem linhas de dados brutos")
	}

	return warnings
}
