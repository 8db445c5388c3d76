package utils

import (
	"fmt"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatUSPeriod formata o período no padrão "MM/DD/YYYY - MM/DD/YYYY"
// aceito pelo campo de período livre do painel do MidiaMax.
func FormatUSPeriod(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format("01/02/2006"), end.Format("01/02/2006"))
}

// IsPreviousCalendarMonth verifica se o intervalo corresponde exatamente ao
// mês de calendário imediatamente anterior à data de referência (primeiro ao
// último dia). É a condição para usar o atalho "Mês passado" do painel.
func IsPreviousCalendarMonth(start, end, reference time.Time) bool {
	firstOfCurrent := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	firstOfPrevious := firstOfCurrent.AddDate(0, -1, 0)
	lastOfPrevious := firstOfCurrent.AddDate(0, 0, -1)

	return sameDay(start, firstOfPrevious) && sameDay(end, lastOfPrevious)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
