package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *float64
	}{
		{
			name:     "Número simples",
			input:    "1234",
			expected: Float64Ptr(1234),
		},
		{
			name:     "Moeda americana com separador de milhar",
			input:    "$1,234.50",
			expected: Float64Ptr(1234.5),
		},
		{
			name:     "Moeda brasileira com separador de milhar",
			input:    "R$ 1.234,56",
			expected: Float64Ptr(1234.56),
		},
		{
			name:     "Percentual",
			input:    "12%",
			expected: Float64Ptr(12),
		},
		{
			name:     "Percentual decimal",
			input:    "2.5%",
			expected: Float64Ptr(2.5),
		},
		{
			name:     "Negativo entre parênteses",
			input:    "(150.00)",
			expected: Float64Ptr(-150),
		},
		{
			name:     "Vírgula decimal brasileira sem milhar",
			input:    "3,14",
			expected: Float64Ptr(3.14),
		},
		{
			name:     "Milhar americano sem decimal",
			input:    "1,234",
			expected: Float64Ptr(1234),
		},
		{
			name:     "Célula vazia é ausente, não zero",
			input:    "",
			expected: nil,
		},
		{
			name:     "Somente espaços é ausente",
			input:    "   ",
			expected: nil,
		},
		{
			name:     "Texto não numérico é ausente",
			input:    "N/A",
			expected: nil,
		},
		{
			name:     "Somente símbolo de moeda é ausente",
			input:    "R$",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseFlexibleNumber(tt.input)

			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.InDelta(t, *tt.expected, *result, 0.0001)
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 2.57, RoundWithTwoDecimalPlace(2.56789))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 100.0, RoundWithTwoDecimalPlace(99.999))
}
