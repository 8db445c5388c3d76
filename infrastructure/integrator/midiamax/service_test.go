package midiamax

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
	"github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/mocks"
	"github.com/vfg2006/metrics-scraper-api/pkg/apiErrors"
	"github.com/vfg2006/metrics-scraper-api/pkg/utils"
)

// stubSession é o mínimo de sessão que o orquestrador precisa; os fluxos que
// de fato interagem com o navegador são mockados.
type stubSession struct {
	closeCalls int
}

func (s *stubSession) ID() string                              { return "sessao-stub" }
func (s *stubSession) Navigate(string) error                   { return nil }
func (s *stubSession) WaitUntilReady(time.Duration) error      { return nil }
func (s *stubSession) WaitVisible(string, time.Duration) error { return nil }
func (s *stubSession) FirstVisible(_ time.Duration, _ ...string) (string, error) {
	return "", nil
}
func (s *stubSession) Exists(string) bool          { return false }
func (s *stubSession) Click(string) error          { return nil }
func (s *stubSession) Type(string, string) error   { return nil }
func (s *stubSession) Fill(string, string) error   { return nil }
func (s *stubSession) Text(string) (string, error) { return "", nil }
func (s *stubSession) Pause()                      {}
func (s *stubSession) Screenshot(label string) string {
	return "/tmp/screenshots/" + label + ".png"
}
func (s *stubSession) ExpectDownload(time.Duration) func() (string, error) {
	return func() (string, error) { return "", nil }
}
func (s *stubSession) Close() error {
	s.closeCalls++
	return nil
}

type integratorMocks struct {
	sessions *mocks.MockSessionFactory
	auth     *mocks.MockAuthenticator
	exporter *mocks.MockExporter
	parser   *mocks.MockMetricsParser
}

func newIntegrator(t *testing.T, cfg Config) (MidiaMaxIntegrator, *integratorMocks) {
	ctrl := gomock.NewController(t)

	m := &integratorMocks{
		sessions: mocks.NewMockSessionFactory(ctrl),
		auth:     mocks.NewMockAuthenticator(ctrl),
		exporter: mocks.NewMockExporter(ctrl),
		parser:   mocks.NewMockMetricsParser(ctrl),
	}

	return New(m.sessions, m.auth, m.exporter, m.parser, cfg), m
}

func fetchPeriod() midiamaxdomain.Period {
	return midiamaxdomain.Period{
		Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func fetchCreds() midiamaxdomain.Credentials {
	return midiamaxdomain.Credentials{Username: "usuario@exemplo.com", Password: "senha"}
}

func extractedMetrics() *midiamaxdomain.ExtractedMetrics {
	return &midiamaxdomain.ExtractedMetrics{
		Impressions: utils.Float64Ptr(100000),
		Clicks:      utils.Float64Ptr(2500),
		PeriodStart: fetchPeriod().Start,
		PeriodEnd:   fetchPeriod().End,
	}
}

func TestFetchMetrics_SuccessOnFirstAttempt(t *testing.T) {
	integrator, m := newIntegrator(t, Config{Headless: true, MaxRetries: 3, RetryDelay: time.Millisecond})

	session := &stubSession{}
	metrics := extractedMetrics()

	m.sessions.EXPECT().Open(gomock.Any(), gomock.Any(), true).Return(session, nil).Times(1)
	m.auth.EXPECT().Login(session, fetchCreds()).Return(nil)
	m.auth.EXPECT().IsLoggedIn(session).Return(true)
	m.exporter.EXPECT().Export(session, fetchPeriod()).Return("/tmp/downloads/relatorio.xlsx", nil)
	m.parser.EXPECT().Parse("/tmp/downloads/relatorio.xlsx", fetchPeriod()).Return(metrics, nil)
	m.parser.EXPECT().Validate(metrics).Return([]string{"cliques zerados no período extraído"})

	result := integrator.FetchMetrics(context.Background(), "conta-1", fetchCreds(), fetchPeriod())

	assert.True(t, result.Success)
	assert.Equal(t, metrics, result.Metrics)
	assert.Equal(t, []string{"cliques zerados no período extraído"}, result.Warnings)
	assert.Equal(t, 1, session.closeCalls)
}

func TestFetchMetrics_ExhaustsAllRetries(t *testing.T) {
	integrator, m := newIntegrator(t, Config{Headless: true, MaxRetries: 3, RetryDelay: time.Millisecond})

	session := &stubSession{}
	loginErr := midiamaxdomain.NewScrapeError(midiamaxdomain.ErrLoginFailed, apiErrors.ErrScrapeLogin, "sessao-stub",
		"o painel recusou as credenciais").
		WithScreenshot("/tmp/screenshots/login-recusado.png")

	m.sessions.EXPECT().Open(gomock.Any(), gomock.Any(), true).Return(session, nil).Times(3)
	m.auth.EXPECT().Login(session, fetchCreds()).Return(loginErr).Times(3)

	result := integrator.FetchMetrics(context.Background(), "conta-1", fetchCreds(), fetchPeriod())

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "recusou as credenciais")
	assert.Equal(t, "/tmp/screenshots/login-recusado.png", result.ScreenshotPath)
	// Cada tentativa usa sessão nova e a fecha exatamente uma vez
	assert.Equal(t, 3, session.closeCalls)
}

func TestFetchMetrics_SucceedsOnSecondAttempt(t *testing.T) {
	integrator, m := newIntegrator(t, Config{Headless: true, MaxRetries: 3, RetryDelay: time.Millisecond})

	session := &stubSession{}
	metrics := extractedMetrics()
	exportErr := midiamaxdomain.NewScrapeError(midiamaxdomain.ErrDownloadTimeout, apiErrors.ErrScrapeTimeout, "sessao-stub",
		"download não concluído")

	m.sessions.EXPECT().Open(gomock.Any(), gomock.Any(), true).Return(session, nil).Times(2)
	m.auth.EXPECT().Login(session, fetchCreds()).Return(nil).Times(2)
	m.auth.EXPECT().IsLoggedIn(session).Return(true).Times(2)

	gomock.InOrder(
		m.exporter.EXPECT().Export(session, fetchPeriod()).Return("", exportErr),
		m.exporter.EXPECT().Export(session, fetchPeriod()).Return("/tmp/downloads/relatorio.xlsx", nil),
	)

	m.parser.EXPECT().Parse("/tmp/downloads/relatorio.xlsx", fetchPeriod()).Return(metrics, nil)
	m.parser.EXPECT().Validate(metrics).Return(nil)

	result := integrator.FetchMetrics(context.Background(), "conta-1", fetchCreds(), fetchPeriod())

	assert.True(t, result.Success)
	assert.Equal(t, 2, session.closeCalls)
}

func TestFetchMetrics_ScreenshotFollowsLastError(t *testing.T) {
	integrator, m := newIntegrator(t, Config{Headless: true, MaxRetries: 2, RetryDelay: time.Millisecond})

	session := &stubSession{}
	loginErr := midiamaxdomain.NewScrapeError(midiamaxdomain.ErrLoginFailed, apiErrors.ErrScrapeLogin, "sessao-stub",
		"o painel recusou as credenciais").
		WithScreenshot("/tmp/screenshots/login-recusado.png")

	// Primeira tentativa falha com screenshot; a última falha ao abrir a
	// sessão, sem captura possível
	gomock.InOrder(
		m.sessions.EXPECT().Open(gomock.Any(), gomock.Any(), true).Return(session, nil),
		m.sessions.EXPECT().Open(gomock.Any(), gomock.Any(), true).Return(nil, errors.New("navegador não iniciou")),
	)
	m.auth.EXPECT().Login(session, fetchCreds()).Return(loginErr)

	result := integrator.FetchMetrics(context.Background(), "conta-1", fetchCreds(), fetchPeriod())

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "navegador não iniciou")
	// O screenshot da tentativa anterior não vaza para o resultado final
	assert.Empty(t, result.ScreenshotPath)
}

func TestFetchMetrics_LoginInconclusiveFails(t *testing.T) {
	integrator, m := newIntegrator(t, Config{Headless: true, MaxRetries: 1, RetryDelay: time.Millisecond})

	session := &stubSession{}

	m.sessions.EXPECT().Open(gomock.Any(), gomock.Any(), true).Return(session, nil)
	m.auth.EXPECT().Login(session, fetchCreds()).Return(nil)
	m.auth.EXPECT().IsLoggedIn(session).Return(false)

	result := integrator.FetchMetrics(context.Background(), "conta-1", fetchCreds(), fetchPeriod())

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "marcos de sessão autenticada ausentes")
	assert.NotEmpty(t, result.ScreenshotPath)
}

func TestFetchMetrics_StopsWhenContextCancelled(t *testing.T) {
	integrator, m := newIntegrator(t, Config{Headless: true, MaxRetries: 3, RetryDelay: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := &stubSession{}

	// Apenas uma tentativa: o cancelamento interrompe o ciclo de retry
	m.sessions.EXPECT().Open(gomock.Any(), gomock.Any(), true).Return(session, nil).Times(1)
	m.auth.EXPECT().Login(session, fetchCreds()).
		Return(midiamaxdomain.NewScrapeError(midiamaxdomain.ErrStepTimeout, apiErrors.ErrScrapeTimeout, "sessao-stub", "tela de login não assentou")).
		Times(1)

	result := integrator.FetchMetrics(ctx, "conta-1", fetchCreds(), fetchPeriod())

	assert.False(t, result.Success)
}

func TestFetchMetrics_SessionOpenFailure(t *testing.T) {
	integrator, m := newIntegrator(t, Config{Headless: true, MaxRetries: 2, RetryDelay: time.Millisecond})

	m.sessions.EXPECT().Open(gomock.Any(), gomock.Any(), true).
		Return(nil, errors.New("navegador não iniciou")).Times(2)

	result := integrator.FetchMetrics(context.Background(), "conta-1", fetchCreds(), fetchPeriod())

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "navegador não iniciou")
}

func TestTestLogin_OpensVisibleBrowser(t *testing.T) {
	integrator, m := newIntegrator(t, Config{Headless: true, MaxRetries: 1, RetryDelay: time.Millisecond})

	session := &stubSession{}

	// Mesmo com o serviço configurado para headless, o teste de credenciais
	// abre o navegador visível para diagnóstico manual
	m.sessions.EXPECT().Open(gomock.Any(), gomock.Any(), false).Return(session, nil)
	m.auth.EXPECT().Login(session, fetchCreds()).Return(nil)
	m.auth.EXPECT().IsLoggedIn(session).Return(true)

	err := integrator.TestLogin(context.Background(), fetchCreds())
	require.NoError(t, err)
	assert.Equal(t, 1, session.closeCalls)
}

func TestTestLogin_PropagatesLoginFailure(t *testing.T) {
	integrator, m := newIntegrator(t, Config{MaxRetries: 1, RetryDelay: time.Millisecond})

	session := &stubSession{}
	loginErr := midiamaxdomain.NewScrapeError(midiamaxdomain.ErrMFARequired, apiErrors.ErrScrapeMFA, "sessao-stub",
		"conta exige código de dois fatores e nenhuma semente foi informada")

	m.sessions.EXPECT().Open(gomock.Any(), gomock.Any(), false).Return(session, nil)
	m.auth.EXPECT().Login(session, fetchCreds()).Return(loginErr)

	err := integrator.TestLogin(context.Background(), fetchCreds())
	require.Error(t, err)
	assert.ErrorIs(t, err, midiamaxdomain.ErrMFARequired)
	assert.Equal(t, 1, session.closeCalls)
}
