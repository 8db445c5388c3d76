package parser

import "strings"

// Chaves canônicas das métricas extraídas. O valor especial Ignore marca
// colunas conhecidas que não viram métrica (dimensões, rótulos).
const (
	MetricImpressions           = "impressions"
	MetricIdentifiedImpressions = "identified_impressions"
	MetricClicks                = "clicks"
	MetricIdentifiedClicks      = "identified_clicks"
	MetricAvgCTR                = "avg_ctr"
	MetricReach                 = "reach"
	MetricMediaViews            = "media_views"
	MetricMediaClicks           = "media_clicks"
	MetricSignals               = "signals"
	MetricSpend                 = "spend"

	Ignore = "ignore"
)

// ColumnMapping mapeia o cabeçalho da coluna (minúsculo, sem espaços nas
// pontas, como aparece na exportação) para a métrica canônica. A tabela é
// mantida manualmente: cada layout novo de exportação do MidiaMax entra aqui.
// Cabeçalhos fora da tabela são descartados em silêncio, sem erro.
var ColumnMapping = map[string]string{
	// Impressões
	"impressions":       MetricImpressions,
	"impressões":        MetricImpressions,
	"impressoes":        MetricImpressions,
	"total impressions": MetricImpressions,

	// Impressões identificadas
	"identified impressions":   MetricIdentifiedImpressions,
	"impressões identificadas": MetricIdentifiedImpressions,
	"impressoes identificadas": MetricIdentifiedImpressions,
	"impr. identificadas":      MetricIdentifiedImpressions,

	// Cliques
	"clicks":       MetricClicks,
	"cliques":      MetricClicks,
	"total clicks": MetricClicks,

	// Cliques identificados
	"identified clicks":    MetricIdentifiedClicks,
	"cliques identificados": MetricIdentifiedClicks,

	// Taxa média de cliques
	"ctr":                MetricAvgCTR,
	"avg ctr":            MetricAvgCTR,
	"avg ctr %":          MetricAvgCTR,
	"avg. ctr":           MetricAvgCTR,
	"click through rate": MetricAvgCTR,
	"ctr médio":          MetricAvgCTR,
	"ctr medio":          MetricAvgCTR,
	"taxa de cliques":    MetricAvgCTR,

	// Alcance
	"reach":   MetricReach,
	"alcance": MetricReach,

	// Métricas de mídia
	"media views":             MetricMediaViews,
	"visualizações de mídia":  MetricMediaViews,
	"visualizacoes de midia":  MetricMediaViews,
	"media clicks":            MetricMediaClicks,
	"cliques de mídia":        MetricMediaClicks,
	"cliques de midia":        MetricMediaClicks,

	// Sinais
	"signals":            MetricSignals,
	"sinais":             MetricSignals,
	"signal count":       MetricSignals,
	"contagem de sinais": MetricSignals,

	// Investimento
	"spend":          MetricSpend,
	"investimento":   MetricSpend,
	"valor investido": MetricSpend,
	"custo":          MetricSpend,
	"cost":           MetricSpend,
	"amount spent":   MetricSpend,

	// Dimensões conhecidas que não são métricas
	"campaign": Ignore,
	"campanha": Ignore,
	"anúncio":  Ignore,
	"anuncio":  Ignore,
	"conta":    Ignore,
	"account":  Ignore,
	"data":     Ignore,
	"date":     Ignore,
	"período":  Ignore,
	"periodo":  Ignore,
}

// CanonicalMetric resolve um cabeçalho da exportação para a métrica canônica.
// O segundo retorno indica se o cabeçalho é conhecido (métrica ou Ignore).
func CanonicalMetric(header string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(header))
	target, ok := ColumnMapping[key]
	return target, ok
}
