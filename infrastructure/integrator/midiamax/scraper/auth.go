package scraper

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
	"github.com/vfg2006/metrics-scraper-api/pkg/apiErrors"
)

// TOTPProvider gera o código de dois fatores a partir da semente TOTP da
// conta. O serviço não embute implementação: quem precisar do fluxo de MFA
// injeta a sua. Sem provider, contas com MFA falham com ErrMFARequired.
type TOTPProvider interface {
	Generate(seed string) (string, error)
}

// AuthFlow conduz a máquina de estados do login no painel do MidiaMax:
// NotAuthenticated → CredentialsEntered → Submitted → {Authenticated |
// MfaRequired | Failed}.
type AuthFlow struct {
	loginURL        string
	selectors       Selectors
	totp            TOTPProvider
	selectorTimeout time.Duration
	settleTimeout   time.Duration
}

func NewAuthFlow(loginURL string, selectors Selectors, totp TOTPProvider, selectorTimeout, settleTimeout time.Duration) *AuthFlow {
	return &AuthFlow{
		loginURL:        loginURL,
		selectors:       selectors,
		totp:            totp,
		selectorTimeout: selectorTimeout,
		settleTimeout:   settleTimeout,
	}
}

// Login navega até a tela de login, preenche as credenciais com cadência
// humana e submete. O painel é uma SPA: depois do submit não dá para confiar
// em evento de navegação, então o fluxo disputa o banner de erro contra os
// marcos de sessão autenticada e o campo de MFA, aceitando o que aparecer
// primeiro. Todo caminho de falha tenta um screenshot antes de retornar.
func (a *AuthFlow) Login(s Session, creds midiamaxdomain.Credentials) error {
	logger := logrus.WithField("session_id", s.ID())

	if err := s.Navigate(a.loginURL); err != nil {
		return midiamaxdomain.NewScrapeError(midiamaxdomain.ErrNavigation, apiErrors.ErrScrapeNavigation, s.ID(),
			fmt.Sprintf("erro ao abrir a tela de login: %v", err)).
			WithScreenshot(s.Screenshot("login-navegacao-falhou"))
	}

	if err := s.WaitUntilReady(a.settleTimeout); err != nil {
		return midiamaxdomain.NewScrapeError(midiamaxdomain.ErrStepTimeout, apiErrors.ErrScrapeTimeout, s.ID(),
			"tela de login não assentou").
			WithScreenshot(s.Screenshot("login-nao-assentou"))
	}

	if err := s.WaitVisible(a.selectors.LoginUser, a.selectorTimeout); err != nil {
		return midiamaxdomain.NewScrapeError(midiamaxdomain.ErrLoginFormHidden, apiErrors.ErrScrapeLogin, s.ID(),
			"campo de usuário não localizado").
			WithScreenshot(s.Screenshot("login-formulario-ausente"))
	}
	if err := s.WaitVisible(a.selectors.LoginPassword, a.selectorTimeout); err != nil {
		return midiamaxdomain.NewScrapeError(midiamaxdomain.ErrLoginFormHidden, apiErrors.ErrScrapeLogin, s.ID(),
			"campo de senha não localizado").
			WithScreenshot(s.Screenshot("login-formulario-ausente"))
	}

	if err := s.Type(a.selectors.LoginUser, creds.Username); err != nil {
		return a.wrapUnexpected(s, "erro ao digitar o usuário", err)
	}
	s.Pause()
	if err := s.Type(a.selectors.LoginPassword, creds.Password); err != nil {
		return a.wrapUnexpected(s, "erro ao digitar a senha", err)
	}

	// Screenshot de auditoria antes do submit
	s.Screenshot("login-antes-submit")

	if err := s.Click(a.selectors.LoginSubmit); err != nil {
		return a.wrapUnexpected(s, "erro ao submeter o login", err)
	}

	winner, err := s.FirstVisible(a.settleTimeout,
		a.selectors.ErrorBanner,
		a.selectors.MFAInput,
		a.selectors.NavMenu,
		a.selectors.AccountMenu,
	)
	if err != nil {
		// Em alguns tenants a SPA demora além do normal; o orquestrador ainda
		// confirma com IsLoggedIn, então aqui fica só o aviso.
		logger.Warn("Nenhum marco pós-login apareceu dentro do tempo limite")
		return nil
	}

	switch winner {
	case a.selectors.MFAInput:
		return a.handleMFA(s, creds)
	case a.selectors.ErrorBanner:
		message, textErr := s.Text(a.selectors.ErrorBanner)
		if textErr != nil || message == "" {
			message = "o painel recusou as credenciais"
		}
		return midiamaxdomain.NewScrapeError(midiamaxdomain.ErrLoginFailed, apiErrors.ErrScrapeLogin, s.ID(), message).
			WithScreenshot(s.Screenshot("login-recusado"))
	default:
		logger.WithField("step", "login").Info("Login aceito pelo painel")
		return nil
	}
}

// handleMFA trata o prompt de dois fatores. Sem semente ou sem provider
// injetado a falha é imediata e tipada; com ambos, o código é gerado e
// submetido.
func (a *AuthFlow) handleMFA(s Session, creds midiamaxdomain.Credentials) error {
	if creds.MFASeed == "" || a.totp == nil {
		details := "conta exige código de dois fatores e nenhuma semente foi informada"
		if creds.MFASeed != "" {
			details = "semente TOTP informada, mas nenhum gerador de código foi configurado"
		}
		return midiamaxdomain.NewScrapeError(midiamaxdomain.ErrMFARequired, apiErrors.ErrScrapeMFA, s.ID(), details).
			WithScreenshot(s.Screenshot("mfa-exigido"))
	}

	code, err := a.totp.Generate(creds.MFASeed)
	if err != nil {
		return midiamaxdomain.NewScrapeError(midiamaxdomain.ErrMFARequired, apiErrors.ErrScrapeMFA, s.ID(),
			fmt.Sprintf("erro ao gerar o código TOTP: %v", err)).
			WithScreenshot(s.Screenshot("mfa-geracao-falhou"))
	}

	if err := s.Type(a.selectors.MFAInput, code); err != nil {
		return a.wrapUnexpected(s, "erro ao digitar o código de dois fatores", err)
	}
	if err := s.Click(a.selectors.MFASubmit); err != nil {
		return a.wrapUnexpected(s, "erro ao submeter o código de dois fatores", err)
	}

	winner, err := s.FirstVisible(a.settleTimeout,
		a.selectors.ErrorBanner,
		a.selectors.NavMenu,
		a.selectors.AccountMenu,
	)
	if err != nil || winner == a.selectors.ErrorBanner {
		return midiamaxdomain.NewScrapeError(midiamaxdomain.ErrLoginFailed, apiErrors.ErrScrapeLogin, s.ID(),
			"o painel recusou o código de dois fatores").
			WithScreenshot(s.Screenshot("mfa-recusado"))
	}

	return nil
}

// IsLoggedIn verifica de forma independente se a sessão está autenticada,
// procurando os marcos de interface que só existem depois do login. A disputa
// pós-submit não é conclusiva em SPA, então o orquestrador usa esta checagem
// como guarda secundária.
func (a *AuthFlow) IsLoggedIn(s Session) bool {
	return s.Exists(a.selectors.NavMenu) || s.Exists(a.selectors.AccountMenu)
}

// wrapUnexpected embrulha erros inesperados de interação com o DOM mantendo a
// causa original e anexando o screenshot de diagnóstico.
func (a *AuthFlow) wrapUnexpected(s Session, details string, err error) error {
	return midiamaxdomain.NewScrapeError(midiamaxdomain.ErrNavigation, apiErrors.ErrScrapeNavigation, s.ID(),
		fmt.Sprintf("%s: %v", details, err)).
		WithScreenshot(s.Screenshot("erro-inesperado"))
}
