package midiamaxdomain

import (
	"encoding/json"
	"time"
)

// CellKind identifica o tipo de valor de uma célula da planilha exportada.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
)

// CellValue é o valor de uma célula preservado como veio da exportação.
// Células vazias ou não numéricas não viram zero: o tipo carrega a distinção.
type CellValue struct {
	Kind   CellKind
	Number float64
	Text   string
}

func NumberCell(v float64) CellValue { return CellValue{Kind: CellNumber, Number: v} }
func TextCell(s string) CellValue    { return CellValue{Kind: CellText, Text: s} }
func EmptyCell() CellValue           { return CellValue{Kind: CellEmpty} }

// MarshalJSON serializa a célula no formato natural de cada tipo
// (número JSON, string ou null), para armazenamento e auditoria.
func (c CellValue) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellNumber:
		return json.Marshal(c.Number)
	case CellText:
		return json.Marshal(c.Text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON reconstrói a célula a partir do formato acima.
func (c *CellValue) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*c = EmptyCell()
	case float64:
		*c = NumberCell(value)
	case string:
		*c = TextCell(value)
	default:
		raw, _ := json.Marshal(value)
		*c = TextCell(string(raw))
	}

	return nil
}

// RawRow é uma linha da planilha indexada pelo cabeçalho original
// (minúsculo e sem espaços nas pontas), sem passar pelo mapeamento de colunas.
type RawRow map[string]CellValue

// ExtractedMetrics é a saída canônica da extração. Todos os campos numéricos
// são opcionais: nil significa que a métrica não apareceu na exportação,
// o que é diferente de zero.
type ExtractedMetrics struct {
	Impressions           *float64 `json:"impressions,omitempty"`
	IdentifiedImpressions *float64 `json:"identified_impressions,omitempty"`
	Clicks                *float64 `json:"clicks,omitempty"`
	IdentifiedClicks      *float64 `json:"identified_clicks,omitempty"`
	AvgCTR                *float64 `json:"avg_ctr,omitempty"`
	Reach                 *float64 `json:"reach,omitempty"`
	MediaViews            *float64 `json:"media_views,omitempty"`
	MediaClicks           *float64 `json:"media_clicks,omitempty"`
	Signals               *float64 `json:"signals,omitempty"`
	Spend                 *float64 `json:"spend,omitempty"`

	RawRows     []RawRow  `json:"raw_rows,omitempty"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	ExtractedAt time.Time `json:"extracted_at"`
}

// FetchResult é o resultado de uma operação de busca completa. Exatamente um
// dos dois lados é preenchido: Metrics em caso de sucesso (com avisos não
// fatais, se houver) ou ErrorMessage/ScreenshotPath em caso de falha.
type FetchResult struct {
	Success        bool              `json:"success"`
	Metrics        *ExtractedMetrics `json:"metrics,omitempty"`
	Warnings       []string          `json:"warnings,omitempty"`
	ErrorMessage   string            `json:"error_message,omitempty"`
	ScreenshotPath string            `json:"screenshot_path,omitempty"`
}
