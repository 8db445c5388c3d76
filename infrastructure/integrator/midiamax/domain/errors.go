package midiamaxdomain

import (
	"errors"
	"fmt"
)

// Tipos de erros do integrador MidiaMax
var (
	// Erros de autenticação
	ErrLoginFailed      = errors.New("falha no login do MidiaMax")
	ErrLoginFormHidden  = errors.New("formulário de login não encontrado")
	ErrMFARequired      = errors.New("autenticação de dois fatores exigida pelo MidiaMax")
	ErrNotAuthenticated = errors.New("sessão não autenticada após o login")

	// Erros de navegação e exportação
	ErrNavigation      = errors.New("falha de navegação no painel do MidiaMax")
	ErrStepTimeout     = errors.New("tempo limite excedido aguardando o painel")
	ErrExportTrigger   = errors.New("controle de exportação não encontrado")
	ErrDownloadTimeout = errors.New("tempo limite excedido aguardando o download do relatório")

	// Erros de extração do arquivo exportado
	ErrExtraction = errors.New("falha ao extrair métricas do arquivo exportado")

	// Erros de sessão
	ErrSessionClosed = errors.New("sessão do navegador já encerrada")
)

// ScrapeError é um erro com contexto adicional de uma tentativa de extração.
// Sempre que possível carrega o caminho do screenshot de diagnóstico tirado
// no momento da falha.
type ScrapeError struct {
	Err            error  // Erro base (um dos sentinelas acima)
	Code           string // Código de erro para API
	SessionID      string // ID da sessão/tentativa envolvida
	ScreenshotPath string // Screenshot de diagnóstico (quando disponível)
	Details        string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ScrapeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// NewScrapeError cria um novo ScrapeError
func NewScrapeError(baseErr error, code string, sessionID string, details string) *ScrapeError {
	return &ScrapeError{
		Err:       baseErr,
		Code:      code,
		SessionID: sessionID,
		Details:   details,
	}
}

// WithScreenshot anexa o caminho do screenshot de diagnóstico ao erro
func (e *ScrapeError) WithScreenshot(path string) *ScrapeError {
	e.ScreenshotPath = path
	return e
}

// ScreenshotFromError extrai o caminho do screenshot de um erro, se houver
func ScreenshotFromError(err error) string {
	var scrapeErr *ScrapeError
	if errors.As(err, &scrapeErr) {
		return scrapeErr.ScreenshotPath
	}
	return ""
}

// IsTerminal verifica se o erro é estrutural e não se resolve repetindo a
// tentativa com as mesmas credenciais (credenciais inválidas ou MFA exigido).
// Hoje esses erros ainda consomem o orçamento de tentativas; a política de
// retry fica a cargo exclusivo do serviço de orquestração.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrLoginFailed) ||
		errors.Is(err, ErrMFARequired)
}

// IsTimeout verifica se o erro veio de um tempo limite de espera
func IsTimeout(err error) bool {
	return errors.Is(err, ErrStepTimeout) ||
		errors.Is(err, ErrDownloadTimeout)
}
