package scraper

import (
	"fmt"
	"time"
)

// fakeSession simula o painel para os testes dos fluxos: os testes controlam
// quais seletores estão visíveis, o texto de cada elemento e efeitos
// colaterais de cliques.
type fakeSession struct {
	id      string
	visible map[string]bool
	texts   map[string]string

	typed  map[string]string
	filled map[string]string

	navErr   error
	readyErr error
	clickErr map[string]error
	typeErr  map[string]error

	// onClick permite mudar o estado do painel em resposta a um clique,
	// como a SPA faz depois do submit do login.
	onClick map[string]func(*fakeSession)

	downloadPath string
	downloadErr  error

	// actions registra a ordem das interações para asserções de sequência
	actions     []string
	screenshots []string
	closeCalls  int
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		id:       "sessao-teste",
		visible:  map[string]bool{},
		texts:    map[string]string{},
		typed:    map[string]string{},
		filled:   map[string]string{},
		clickErr: map[string]error{},
		typeErr:  map[string]error{},
		onClick:  map[string]func(*fakeSession){},
	}
}

func (f *fakeSession) ID() string { return f.id }

func (f *fakeSession) Navigate(url string) error {
	f.actions = append(f.actions, "navigate:"+url)
	return f.navErr
}

func (f *fakeSession) WaitUntilReady(time.Duration) error { return f.readyErr }

func (f *fakeSession) WaitVisible(selector string, _ time.Duration) error {
	if f.visible[selector] {
		return nil
	}
	return fmt.Errorf("seletor %q não visível", selector)
}

func (f *fakeSession) FirstVisible(_ time.Duration, selectors ...string) (string, error) {
	for _, selector := range selectors {
		if f.visible[selector] {
			return selector, nil
		}
	}
	return "", fmt.Errorf("nenhum dos seletores ficou visível")
}

func (f *fakeSession) Exists(selector string) bool { return f.visible[selector] }

func (f *fakeSession) Click(selector string) error {
	f.actions = append(f.actions, "click:"+selector)
	if err := f.clickErr[selector]; err != nil {
		return err
	}
	if hook := f.onClick[selector]; hook != nil {
		hook(f)
	}
	return nil
}

func (f *fakeSession) Type(selector, text string) error {
	f.actions = append(f.actions, "type:"+selector)
	if err := f.typeErr[selector]; err != nil {
		return err
	}
	f.typed[selector] = text
	return nil
}

func (f *fakeSession) Fill(selector, value string) error {
	f.actions = append(f.actions, "fill:"+selector)
	f.filled[selector] = value
	return nil
}

func (f *fakeSession) Text(selector string) (string, error) {
	text, ok := f.texts[selector]
	if !ok {
		return "", fmt.Errorf("seletor %q sem texto", selector)
	}
	return text, nil
}

func (f *fakeSession) Pause() {}

func (f *fakeSession) Screenshot(label string) string {
	f.screenshots = append(f.screenshots, label)
	return "/tmp/screenshots/" + label + ".png"
}

func (f *fakeSession) ExpectDownload(time.Duration) func() (string, error) {
	f.actions = append(f.actions, "arm-download")
	return func() (string, error) {
		return f.downloadPath, f.downloadErr
	}
}

func (f *fakeSession) Close() error {
	f.closeCalls++
	return nil
}

// testSelectors usa seletores curtos para deixar as asserções legíveis.
func testSelectors() Selectors {
	return Selectors{
		LoginUser:     "#user",
		LoginPassword: "#pass",
		LoginSubmit:   "#submit",
		ErrorBanner:   "#error",
		MFAInput:      "#mfa",
		MFASubmit:     "#mfa-submit",

		NavMenu:     "#nav",
		AccountMenu: "#account",

		LoadingIndicator: "#loading",

		PeriodControl:   "#period-control",
		PeriodInput:     "#period",
		PresetLastMonth: "#preset-last-month",
		CalendarPrev:    "#cal-prev",
		CalendarNext:    "#cal-next",
		CalendarTitle:   "#cal-title",
		CalendarDay:     "#cal-day-%d",
		StartDateInput:  "#start",
		EndDateInput:    "#end",
		ApplyButton:     "#apply",

		ExportButton:      "#export",
		FormatSpreadsheet: "#format-xlsx",
		CancelButton:      "#cancel",
	}
}
