package scraper

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
	"github.com/vfg2006/metrics-scraper-api/pkg/utils"
)

// maxCalendarBackClicks limita a navegação do calendário para trás. O painel
// só expõe dois anos de histórico; mais que isso é seletor quebrado.
const maxCalendarBackClicks = 24

// PeriodStrategy é uma forma de aplicar o intervalo de datas no painel.
// O controle exato varia por tenant, então as estratégias são tentadas em
// ordem até a primeira que funcionar; cada uma é testável isoladamente com
// uma sessão falsa.
type PeriodStrategy interface {
	Name() string
	Apply(s Session, period midiamaxdomain.Period) error
}

// DefaultPeriodStrategies retorna a cascata na ordem de preferência.
func DefaultPeriodStrategies(selectors Selectors, timeout time.Duration, now func() time.Time) []PeriodStrategy {
	return []PeriodStrategy{
		&freeTextPeriodStrategy{selectors: selectors, timeout: timeout},
		&lastMonthPresetStrategy{selectors: selectors, timeout: timeout, now: now},
		&calendarWalkStrategy{selectors: selectors, timeout: timeout},
		&directInputsStrategy{selectors: selectors, timeout: timeout},
	}
}

// ApplyPeriod percorre a cascata e retorna o nome da estratégia vencedora.
// Esgotar todas sem sucesso não é fatal: alguns tenants já carregam com o
// período padrão aplicado, então fica apenas o aviso no log.
func ApplyPeriod(s Session, period midiamaxdomain.Period, strategies []PeriodStrategy) string {
	logger := logrus.WithFields(logrus.Fields{
		"session_id": s.ID(),
		"start":      period.Start.Format(time.DateOnly),
		"end":        period.End.Format(time.DateOnly),
	})

	for _, strategy := range strategies {
		if err := strategy.Apply(s, period); err != nil {
			logger.WithField("strategy", strategy.Name()).WithError(err).
				Debug("Estratégia de período falhou, tentando a próxima")
			continue
		}

		logger.WithField("strategy", strategy.Name()).Info("Período aplicado no painel")
		return strategy.Name()
	}

	logger.Warn("Nenhuma estratégia de período funcionou; seguindo com o período padrão do painel")
	return ""
}

// freeTextPeriodStrategy usa o campo livre que aceita "MM/DD/YYYY - MM/DD/YYYY".
type freeTextPeriodStrategy struct {
	selectors Selectors
	timeout   time.Duration
}

func (st *freeTextPeriodStrategy) Name() string { return "campo-livre" }

func (st *freeTextPeriodStrategy) Apply(s Session, period midiamaxdomain.Period) error {
	if err := s.WaitVisible(st.selectors.PeriodInput, st.timeout); err != nil {
		return fmt.Errorf("campo de período não visível: %w", err)
	}

	if err := s.Fill(st.selectors.PeriodInput, utils.FormatUSPeriod(period.Start, period.End)); err != nil {
		return fmt.Errorf("erro ao preencher o período: %w", err)
	}

	s.Pause()
	return nil
}

// lastMonthPresetStrategy clica no atalho "Mês passado", válido somente
// quando o intervalo pedido é exatamente o mês de calendário anterior.
type lastMonthPresetStrategy struct {
	selectors Selectors
	timeout   time.Duration
	now       func() time.Time
}

func (st *lastMonthPresetStrategy) Name() string { return "preset-mes-passado" }

func (st *lastMonthPresetStrategy) Apply(s Session, period midiamaxdomain.Period) error {
	if !utils.IsPreviousCalendarMonth(period.Start, period.End, st.now()) {
		return fmt.Errorf("intervalo não corresponde ao mês anterior")
	}

	if err := s.WaitVisible(st.selectors.PresetLastMonth, st.timeout); err != nil {
		return fmt.Errorf("atalho de mês passado não visível: %w", err)
	}

	if err := s.Click(st.selectors.PresetLastMonth); err != nil {
		return fmt.Errorf("erro ao clicar no atalho: %w", err)
	}

	s.Pause()
	return nil
}

// calendarWalkStrategy navega o widget de calendário clicando em "mês
// anterior" até exibir o mês alvo e então clica nos dias de início e fim.
type calendarWalkStrategy struct {
	selectors Selectors
	timeout   time.Duration
}

func (st *calendarWalkStrategy) Name() string { return "calendario" }

func (st *calendarWalkStrategy) Apply(s Session, period midiamaxdomain.Period) error {
	if err := s.WaitVisible(st.selectors.CalendarTitle, st.timeout); err != nil {
		return fmt.Errorf("calendário não visível: %w", err)
	}

	if err := st.walkToMonth(s, period.Start); err != nil {
		return err
	}

	if err := s.Click(fmt.Sprintf(st.selectors.CalendarDay, period.Start.Day())); err != nil {
		return fmt.Errorf("erro ao clicar no dia inicial: %w", err)
	}
	s.Pause()

	// O dia final pode estar em outro mês; nesse caso anda para frente.
	if period.End.Month() != period.Start.Month() || period.End.Year() != period.Start.Year() {
		if err := st.walkForwardToMonth(s, period.End); err != nil {
			return err
		}
	}

	if err := s.Click(fmt.Sprintf(st.selectors.CalendarDay, period.End.Day())); err != nil {
		return fmt.Errorf("erro ao clicar no dia final: %w", err)
	}
	s.Pause()

	return nil
}

func (st *calendarWalkStrategy) walkToMonth(s Session, target time.Time) error {
	for i := 0; i < maxCalendarBackClicks; i++ {
		label, err := s.Text(st.selectors.CalendarTitle)
		if err != nil {
			return fmt.Errorf("erro ao ler o título do calendário: %w", err)
		}

		month, year, err := parseMonthLabel(label)
		if err != nil {
			return err
		}

		if month == target.Month() && year == target.Year() {
			return nil
		}

		if err := s.Click(st.selectors.CalendarPrev); err != nil {
			return fmt.Errorf("erro ao voltar o calendário: %w", err)
		}
		s.Pause()
	}

	return fmt.Errorf("mês alvo não alcançado em %d cliques", maxCalendarBackClicks)
}

func (st *calendarWalkStrategy) walkForwardToMonth(s Session, target time.Time) error {
	for i := 0; i < maxCalendarBackClicks; i++ {
		label, err := s.Text(st.selectors.CalendarTitle)
		if err != nil {
			return fmt.Errorf("erro ao ler o título do calendário: %w", err)
		}

		month, year, err := parseMonthLabel(label)
		if err != nil {
			return err
		}

		if month == target.Month() && year == target.Year() {
			return nil
		}

		if err := s.Click(st.selectors.CalendarNext); err != nil {
			return fmt.Errorf("erro ao avançar o calendário: %w", err)
		}
		s.Pause()
	}

	return fmt.Errorf("mês final não alcançado em %d cliques", maxCalendarBackClicks)
}

// directInputsStrategy é o último recurso: preenche os campos dedicados de
// data inicial e final diretamente.
type directInputsStrategy struct {
	selectors Selectors
	timeout   time.Duration
}

func (st *directInputsStrategy) Name() string { return "campos-diretos" }

func (st *directInputsStrategy) Apply(s Session, period midiamaxdomain.Period) error {
	if err := s.WaitVisible(st.selectors.StartDateInput, st.timeout); err != nil {
		return fmt.Errorf("campo de data inicial não visível: %w", err)
	}

	if err := s.Fill(st.selectors.StartDateInput, period.Start.Format("01/02/2006")); err != nil {
		return fmt.Errorf("erro ao preencher a data inicial: %w", err)
	}
	s.Pause()

	if err := s.Fill(st.selectors.EndDateInput, period.End.Format("01/02/2006")); err != nil {
		return fmt.Errorf("erro ao preencher a data final: %w", err)
	}
	s.Pause()

	return nil
}

// Meses como o painel exibe no título do calendário
var monthsByName = map[string]time.Month{
	"janeiro":   time.January,
	"fevereiro": time.February,
	"março":     time.March,
	"marco":     time.March,
	"abril":     time.April,
	"maio":      time.May,
	"junho":     time.June,
	"julho":     time.July,
	"agosto":    time.August,
	"setembro":  time.September,
	"outubro":   time.October,
	"novembro":  time.November,
	"dezembro":  time.December,
}

// parseMonthLabel interpreta o título do calendário, que aparece como
// "março 2026", "março de 2026" ou "03/2026" dependendo do tenant.
func parseMonthLabel(label string) (time.Month, int, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	normalized = strings.ReplaceAll(normalized, " de ", " ")

	if month, year, ok := parseNumericLabel(normalized); ok {
		return month, year, nil
	}

	parts := strings.Fields(normalized)
	if len(parts) == 2 {
		if month, ok := monthsByName[parts[0]]; ok {
			var year int
			if _, err := fmt.Sscanf(parts[1], "%d", &year); err == nil {
				return month, year, nil
			}
		}
	}

	return 0, 0, fmt.Errorf("título de calendário não reconhecido: %q", label)
}

func parseNumericLabel(label string) (time.Month, int, bool) {
	var monthNum, year int
	if _, err := fmt.Sscanf(label, "%d/%d", &monthNum, &year); err != nil {
		return 0, 0, false
	}
	if monthNum < 1 || monthNum > 12 {
		return 0, 0, false
	}
	return time.Month(monthNum), year, true
}
