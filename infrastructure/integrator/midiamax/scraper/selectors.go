package scraper

// Selectors concentra todos os pontos de contato com o DOM do painel do
// MidiaMax. O markup do painel muda sem aviso; quando quebrar, este arquivo
// é o único ponto de manutenção.
type Selectors struct {
	// Login
	LoginUser     string
	LoginPassword string
	LoginSubmit   string
	ErrorBanner   string
	MFAInput      string
	MFASubmit     string

	// Marcos de sessão autenticada
	NavMenu     string
	AccountMenu string

	// Indicadores de carregamento
	LoadingIndicator string

	// Seleção de período
	PeriodControl   string
	PeriodInput     string
	PresetLastMonth string
	CalendarPrev    string
	CalendarNext    string
	CalendarTitle   string
	// CalendarDay recebe o número do dia via fmt.Sprintf
	CalendarDay    string
	StartDateInput string
	EndDateInput   string
	ApplyButton    string

	// Exportação
	ExportButton      string
	FormatSpreadsheet string
	CancelButton      string
}

// DefaultSelectors retorna a tabela de seletores do layout atual do painel.
func DefaultSelectors() Selectors {
	return Selectors{
		LoginUser:     `input[name="email"], input[name="username"], #login-email`,
		LoginPassword: `input[type="password"], #login-password`,
		LoginSubmit:   `button[type="submit"], .btn-login`,
		ErrorBanner:   `.alert-danger, .login-error, [data-testid="login-error"]`,
		MFAInput:      `input[name="otp"], input[autocomplete="one-time-code"], #mfa-code`,
		MFASubmit:     `button[type="submit"], .btn-mfa`,

		NavMenu:     `nav .menu-relatorios, [data-testid="main-nav"]`,
		AccountMenu: `.user-menu, [data-testid="account-menu"]`,

		LoadingIndicator: `.spinner, .loading-overlay, [data-loading="true"]`,

		PeriodControl:   `.date-range-picker, [data-testid="period-control"]`,
		PeriodInput:     `input[name="period"], .date-range-picker input[type="text"]`,
		PresetLastMonth: `.preset-last-month, [data-preset="last-month"]`,
		CalendarPrev:    `.calendar-prev, [aria-label="Mês anterior"]`,
		CalendarNext:    `.calendar-next, [aria-label="Próximo mês"]`,
		CalendarTitle:   `.calendar-title, .month-year-label`,
		CalendarDay:     `.calendar-day[data-day="%d"]`,
		StartDateInput:  `input[name="start_date"], #data-inicio`,
		EndDateInput:    `input[name="end_date"], #data-fim`,
		ApplyButton:     `.btn-apply, [data-testid="apply-period"]`,

		ExportButton:      `.btn-export, [data-testid="export-report"]`,
		FormatSpreadsheet: `[data-format="xlsx"], .export-option-spreadsheet`,
		CancelButton:      `.btn-cancel, .modal-close`,
	}
}
