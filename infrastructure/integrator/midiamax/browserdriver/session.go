// Package browserdriver implementa a sessão de navegador usada pelos fluxos
// de scraping do MidiaMax, sobre go-rod. Cada sessão é um navegador isolado
// (perfil próprio, viewport fixa, uma única página) amarrado a uma tentativa
// de extração.
package browserdriver

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/sirupsen/logrus"
)

const (
	viewportWidth  = 1366
	viewportHeight = 768

	// Cadência humana entre teclas e entre ações
	minHumanDelay = 200 * time.Millisecond
	maxHumanDelay = 600 * time.Millisecond

	// Janela de rede ociosa usada pelo WaitUntilReady
	requestIdleWindow = 300 * time.Millisecond
)

// Options configura a abertura de uma sessão.
type Options struct {
	SessionID        string
	Headless         bool
	ScreenshotRoot   string
	DownloadRoot     string
	LoadingIndicator string
}

// Session é a implementação real de scraper.Session.
type Session struct {
	id               string
	launcher         *launcher.Launcher
	browser          *rod.Browser
	page             *rod.Page
	screenshotDir    string
	downloadDir      string
	userDataDir      string
	loadingIndicator string
	rng              *rand.Rand

	mu     sync.Mutex
	closed bool
}

// Open lança um navegador isolado e prepara os diretórios de diagnóstico da
// tentativa. O perfil é temporário e descartado junto com a sessão: nenhum
// cookie sobrevive entre tentativas.
func Open(opts Options) (*Session, error) {
	screenshotDir := filepath.Join(opts.ScreenshotRoot, opts.SessionID)
	downloadDir := filepath.Join(opts.DownloadRoot, opts.SessionID)

	for _, dir := range []string{screenshotDir, downloadDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("erro ao criar diretório de diagnóstico %s: %w", dir, err)
		}
	}

	userDataDir, err := os.MkdirTemp("", "midiamax-profile-*")
	if err != nil {
		return nil, fmt.Errorf("erro ao criar perfil temporário do navegador: %w", err)
	}

	l := launcher.New().
		Headless(opts.Headless).
		UserDataDir(userDataDir).
		Set("window-size", fmt.Sprintf("%d,%d", viewportWidth, viewportHeight)).
		NoSandbox(true)

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("erro ao lançar o navegador: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("erro ao conectar ao navegador: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("erro ao abrir a página da sessão: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		logrus.WithError(err).Warn("Não foi possível fixar a viewport da sessão")
	}

	return &Session{
		id:               opts.SessionID,
		launcher:         l,
		browser:          browser,
		page:             page,
		screenshotDir:    screenshotDir,
		downloadDir:      downloadDir,
		userDataDir:      userDataDir,
		loadingIndicator: opts.LoadingIndicator,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Navigate(url string) error {
	return s.page.Navigate(url)
}

// WaitUntilReady espera o carregamento terminar, a rede ficar ociosa e os
// indicadores de loading sumirem, tudo dentro do tempo limite informado.
func (s *Session) WaitUntilReady(timeout time.Duration) error {
	page := s.page.Timeout(timeout)
	deadline := time.Now().Add(timeout)

	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("carregamento não concluído: %w", err)
	}

	page.WaitRequestIdle(requestIdleWindow, nil, nil, nil)()

	for s.loadingIndicator != "" {
		visible, err := s.visible(s.loadingIndicator)
		if err != nil || !visible {
			break
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("indicador de carregamento não sumiu em %s", timeout)
		}
		time.Sleep(100 * time.Millisecond)
	}

	return nil
}

func (s *Session) WaitVisible(selector string, timeout time.Duration) error {
	el, err := s.page.Timeout(timeout).Element(selector)
	if err != nil {
		return fmt.Errorf("seletor %q não encontrado: %w", selector, err)
	}

	if err := el.WaitVisible(); err != nil {
		return fmt.Errorf("seletor %q não ficou visível: %w", selector, err)
	}

	return nil
}

// FirstVisible disputa os seletores e retorna o primeiro que aparecer.
func (s *Session) FirstVisible(timeout time.Duration, selectors ...string) (string, error) {
	race := s.page.Timeout(timeout).Race()
	for _, selector := range selectors {
		race = race.Element(selector)
	}

	el, err := race.Do()
	if err != nil {
		return "", fmt.Errorf("nenhum dos seletores apareceu em %s: %w", timeout, err)
	}

	for _, selector := range selectors {
		if match, _ := el.Matches(selector); match {
			return selector, nil
		}
	}

	// O elemento venceu a disputa mas não casa mais com nenhum seletor
	// (o DOM mudou entre a resolução e a checagem); trata como timeout.
	return "", fmt.Errorf("elemento vencedor não corresponde a nenhum seletor")
}

func (s *Session) Exists(selector string) bool {
	visible, err := s.visible(selector)
	return err == nil && visible
}

func (s *Session) visible(selector string) (bool, error) {
	has, el, err := s.page.Has(selector)
	if err != nil || !has {
		return false, err
	}
	return el.Visible()
}

func (s *Session) Click(selector string) error {
	el, err := s.page.Element(selector)
	if err != nil {
		return fmt.Errorf("seletor %q não encontrado: %w", selector, err)
	}

	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("erro ao clicar em %q: %w", selector, err)
	}

	return nil
}

// Type digita caractere a caractere com pausas aleatórias, o que acomoda os
// debounces do painel e aproxima o tráfego do de um operador humano.
func (s *Session) Type(selector, text string) error {
	el, err := s.page.Element(selector)
	if err != nil {
		return fmt.Errorf("seletor %q não encontrado: %w", selector, err)
	}

	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("erro ao focar %q: %w", selector, err)
	}

	for _, ch := range text {
		if err := el.Input(string(ch)); err != nil {
			return fmt.Errorf("erro ao digitar em %q: %w", selector, err)
		}
		s.sleepHuman()
	}

	return nil
}

// Fill define o valor do campo de uma vez, substituindo o conteúdo atual.
func (s *Session) Fill(selector, value string) error {
	el, err := s.page.Element(selector)
	if err != nil {
		return fmt.Errorf("seletor %q não encontrado: %w", selector, err)
	}

	if err := el.SelectAllText(); err != nil {
		return fmt.Errorf("erro ao selecionar o conteúdo de %q: %w", selector, err)
	}

	if err := el.Input(value); err != nil {
		return fmt.Errorf("erro ao preencher %q: %w", selector, err)
	}

	return nil
}

func (s *Session) Text(selector string) (string, error) {
	el, err := s.page.Element(selector)
	if err != nil {
		return "", fmt.Errorf("seletor %q não encontrado: %w", selector, err)
	}

	return el.Text()
}

func (s *Session) Pause() {
	s.sleepHuman()
}

func (s *Session) sleepHuman() {
	delta := time.Duration(s.rng.Int63n(int64(maxHumanDelay - minHumanDelay)))
	time.Sleep(minHumanDelay + delta)
}

// Screenshot captura a página inteira em <screenshotRoot>/<sessionID>/<label>.png.
// Nunca propaga erro: diagnóstico não pode derrubar a tentativa.
func (s *Session) Screenshot(label string) string {
	data, err := s.page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"session_id": s.id,
			"step":       label,
		}).Warn("Falha ao capturar screenshot de diagnóstico")
		return ""
	}

	path := filepath.Join(s.screenshotDir, label+".png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("Falha ao gravar screenshot de diagnóstico")
		return ""
	}

	return path
}

// ExpectDownload arma a espera pelo próximo download do navegador. O arquivo
// é salvo no diretório da tentativa com o nome sugerido pelo painel, ou com
// um nome gerado quando não há sugestão.
func (s *Session) ExpectDownload(timeout time.Duration) func() (string, error) {
	wait := s.browser.Timeout(timeout).WaitDownload(s.downloadDir)

	return func() (string, error) {
		info := wait()
		if info == nil {
			return "", fmt.Errorf("nenhum download concluído em %s", timeout)
		}

		saved := filepath.Join(s.downloadDir, info.GUID)

		name := info.SuggestedFilename
		if name == "" {
			name = fmt.Sprintf("midiamax-export-%s.xlsx", time.Now().Format("20060102-150405"))
		}

		final := filepath.Join(s.downloadDir, name)
		if err := os.Rename(saved, final); err != nil {
			logrus.WithError(err).Warn("Não foi possível renomear o download; mantendo o nome original")
			return saved, nil
		}

		return final, nil
	}
}

// Close encerra o navegador e o launcher. Pode ser chamado mais de uma vez;
// erros de encerramento são apenas logados.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.browser.Close(); err != nil {
		logrus.WithError(err).WithField("session_id", s.id).Warn("Erro ao fechar o navegador da sessão")
	}
	s.launcher.Kill()

	// O perfil é descartável; screenshots e downloads ficam para auditoria
	if err := os.RemoveAll(s.userDataDir); err != nil {
		logrus.WithError(err).WithField("session_id", s.id).Warn("Erro ao remover o perfil temporário da sessão")
	}

	return nil
}
