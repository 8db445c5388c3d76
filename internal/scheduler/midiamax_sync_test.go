package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
	"github.com/vfg2006/metrics-scraper-api/internal/config"
	"github.com/vfg2006/metrics-scraper-api/internal/domain"
	collectingmocks "github.com/vfg2006/metrics-scraper-api/internal/usecases/collecting/mocks"
)

func syncAppConfig() *config.Config {
	return &config.Config{
		MidiaMaxSync: config.MidiaMaxSync{
			CronSchedule:        "0 3 * * *",
			LookbackDays:        7,
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   2,
			Enabled:             true,
		},
		MidiaMaxAccounts: map[string]midiamaxdomain.Credentials{
			"conta-1": {Username: "a@exemplo.com", Password: "x"},
			"conta-2": {Username: "b@exemplo.com", Password: "y"},
		},
	}
}

func TestLookbackPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMidiaMaxSyncService(collectingmocks.NewMockCollector(ctrl), syncAppConfig())

	now := time.Date(2026, 3, 15, 4, 0, 0, 0, time.UTC)
	period := service.lookbackPeriod(now)

	// Janela de 7 dias terminando ontem: 08/03 a 14/03
	assert.Equal(t, "2026-03-08", period.Start.Format(time.DateOnly))
	assert.Equal(t, "2026-03-14", period.End.Format(time.DateOnly))
	assert.Equal(t, 7, period.Days())
}

func TestSyncAllAccounts_ProcessesEveryConfiguredAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	collector := collectingmocks.NewMockCollector(ctrl)
	service := NewMidiaMaxSyncService(collector, syncAppConfig())

	collector.EXPECT().
		CollectAccount(gomock.Any(), "conta-1", gomock.Any()).
		Return(&domain.ExtractionEntry{AccountID: "conta-1", Success: true}, nil)
	collector.EXPECT().
		CollectAccount(gomock.Any(), "conta-2", gomock.Any()).
		Return(&domain.ExtractionEntry{AccountID: "conta-2", Success: false, ErrorMessage: "falha no login"}, nil)

	service.syncAllAccounts(context.Background())

	status := service.GetStatus()
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestGetStatus_SafeDuringSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	collector := collectingmocks.NewMockCollector(ctrl)
	service := NewMidiaMaxSyncService(collector, syncAppConfig())

	collector.EXPECT().
		CollectAccount(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, accountID string, period midiamaxdomain.Period) (*domain.ExtractionEntry, error) {
			time.Sleep(20 * time.Millisecond)
			return &domain.ExtractionEntry{AccountID: accountID, Success: true}, nil
		}).
		Times(2)

	done := make(chan struct{})
	go func() {
		defer close(done)
		service.syncAllAccounts(context.Background())
	}()

	// Consulta o status enquanto a sincronização escreve os carimbos de tempo
	for i := 0; i < 10; i++ {
		service.GetStatus()
		time.Sleep(5 * time.Millisecond)
	}

	<-done
	assert.False(t, service.GetStatus()["last_sync_completed_at"].(time.Time).IsZero())
}

func TestSyncAllAccounts_SkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	collector := collectingmocks.NewMockCollector(ctrl)
	service := NewMidiaMaxSyncService(collector, syncAppConfig())

	// Nenhuma chamada ao collector é esperada: a execução sobreposta é descartada
	service.syncRunning = true
	service.syncAllAccounts(context.Background())

	assert.True(t, service.GetStatus()["last_sync_started_at"].(time.Time).IsZero())
}

func TestSyncAllAccounts_StopsOnCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	collector := collectingmocks.NewMockCollector(ctrl)
	service := NewMidiaMaxSyncService(collector, syncAppConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Contexto já cancelado: nenhuma conta é processada
	service.syncAllAccounts(ctx)
}

func TestSyncAllAccounts_NoAccountsConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	collector := collectingmocks.NewMockCollector(ctrl)

	appConfig := syncAppConfig()
	appConfig.MidiaMaxAccounts = nil

	service := NewMidiaMaxSyncService(collector, appConfig)
	service.syncAllAccounts(context.Background())
}

func TestStart_DisabledByConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	collector := collectingmocks.NewMockCollector(ctrl)

	appConfig := syncAppConfig()
	appConfig.MidiaMaxSync.Enabled = false

	service := NewMidiaMaxSyncService(collector, appConfig)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMidiaMaxSyncService(collectingmocks.NewMockCollector(ctrl), syncAppConfig())

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 7, status["sync_lookback_days"])
	assert.Equal(t, 2, status["sync_max_concurrent"])
	assert.Equal(t, 2, status["accounts"])
}
