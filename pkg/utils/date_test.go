package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSPeriod(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "03/01/2026 - 03/31/2026", FormatUSPeriod(start, end))
}

func TestIsPreviousCalendarMonth(t *testing.T) {
	reference := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{
			name:     "Mês de calendário anterior completo",
			start:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "Começa no dia errado",
			start:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "Termina antes do fim do mês",
			start:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "Dois meses atrás",
			start:    time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPreviousCalendarMonth(tt.start, tt.end, reference))
		})
	}
}

func TestIsPreviousCalendarMonthAcrossYear(t *testing.T) {
	// Referência em janeiro: o mês anterior é dezembro do ano passado
	reference := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsPreviousCalendarMonth(start, end, reference))
}
