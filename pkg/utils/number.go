package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseFlexibleNumber converte o conteúdo de uma célula da exportação em
// número, tolerando símbolos de moeda, separadores de milhar, percentuais e
// espaços. Retorna nil (ausente, não zero) para células vazias ou não
// numéricas. Aceita tanto o formato brasileiro "1.234,56" quanto o americano
// "1,234.56".
func ParseFlexibleNumber(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	replacer := strings.NewReplacer(
		"R$", "",
		"$", "",
		"%", "",
		" ", "",
		" ", "",
	)
	s = replacer.Replace(s)
	if s == "" {
		return nil
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}

	s = normalizeSeparators(s)

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	if negative {
		value = -value
	}

	return &value
}

// normalizeSeparators resolve a ambiguidade entre separador decimal e de
// milhar: quando ponto e vírgula coexistem, o que aparece por último é o
// decimal; vírgula sozinha só é decimal quando deixa no máximo duas casas.
func normalizeSeparators(s string) string {
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if len(s)-lastComma-1 <= 2 && strings.Count(s, ",") == 1 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	return s
}

// Float64Ptr retorna um ponteiro para o valor informado
func Float64Ptr(v float64) *float64 {
	return &v
}
