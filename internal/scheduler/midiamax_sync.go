package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
	"github.com/vfg2006/metrics-scraper-api/internal/config"
	"github.com/vfg2006/metrics-scraper-api/internal/usecases/collecting"
)

// MidiaMaxSyncConfig representa a configuração do agendador de extração do MidiaMax
type MidiaMaxSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// MidiaMaxSyncService gerencia o agendamento da extração periódica de métricas
// do MidiaMax. Cada job concorrente é um navegador inteiro, então o limite de
// concorrência é deliberadamente baixo.
type MidiaMaxSyncService struct {
	scheduler           *gocron.Scheduler
	config              MidiaMaxSyncConfig
	collector           collecting.Collector
	accountIDs          []string
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMidiaMaxSyncService cria uma nova instância do serviço de sincronização do MidiaMax
func NewMidiaMaxSyncService(
	collector collecting.Collector,
	appConfig *config.Config,
) *MidiaMaxSyncService {
	syncConfig := MidiaMaxSyncConfig{
		CronSchedule:        appConfig.MidiaMaxSync.CronSchedule,
		LookbackDays:        appConfig.MidiaMaxSync.LookbackDays,
		RequestDelaySeconds: appConfig.MidiaMaxSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.MidiaMaxSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.MidiaMaxSync.Enabled,
	}

	accountIDs := make([]string, 0, len(appConfig.MidiaMaxAccounts))
	for accountID := range appConfig.MidiaMaxAccounts {
		accountIDs = append(accountIDs, accountID)
	}
	sort.Strings(accountIDs)

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
		"accounts":              len(accountIDs),
	}).Info("Configuração do agendador de extração do MidiaMax carregada")

	return &MidiaMaxSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		collector:   collector,
		accountIDs:  accountIDs,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *MidiaMaxSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Extração agendada do MidiaMax desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de extração do MidiaMax")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar extração do MidiaMax: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de extração do MidiaMax")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts extrai as métricas de todas as contas configuradas para a
// janela de lookback. Execuções sobrepostas são descartadas.
func (s *MidiaMaxSyncService) syncAllAccounts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Extração do MidiaMax já em andamento, ignorando")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if len(s.accountIDs) == 0 {
		logrus.Info("Nenhuma conta do MidiaMax configurada para extração")
		return
	}

	period := s.lookbackPeriod(time.Now())

	logrus.WithFields(logrus.Fields{
		"accounts": len(s.accountIDs),
		"start":    period.Start.Format(time.DateOnly),
		"end":      period.End.Format(time.DateOnly),
	}).Info("Iniciando extração do MidiaMax para todas as contas configuradas")

	s.processAccounts(ctx, period)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(s.accountIDs),
	}).Info("Extração do MidiaMax concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// lookbackPeriod monta a janela de extração: de LookbackDays atrás até ontem.
func (s *MidiaMaxSyncService) lookbackPeriod(now time.Time) midiamaxdomain.Period {
	yesterday := now.AddDate(0, 0, -1)
	return midiamaxdomain.Period{
		Start: yesterday.AddDate(0, 0, -(s.config.LookbackDays - 1)),
		End:   yesterday,
	}
}

// processAccounts processa as contas com concorrência limitada por semáforo.
func (s *MidiaMaxSyncService) processAccounts(ctx context.Context, period midiamaxdomain.Period) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, accountID := range s.accountIDs {
		if ctx.Err() != nil {
			logrus.Info("Contexto cancelado, interrompendo a extração do MidiaMax")
			break
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(id string) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			s.processAccount(ctx, id, period)
		}(accountID)

		// Espaça o início dos jobs para não abrir navegadores em rajada
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	wg.Wait()
}

// processAccount extrai e persiste as métricas de uma conta
func (s *MidiaMaxSyncService) processAccount(ctx context.Context, accountID string, period midiamaxdomain.Period) {
	logger := logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"start":      period.Start.Format(time.DateOnly),
		"end":        period.End.Format(time.DateOnly),
	})
	logger.Info("Processando extração do MidiaMax para conta")

	entry, err := s.collector.CollectAccount(ctx, accountID, period)
	if err != nil {
		logger.WithError(err).Error("Erro ao coletar métricas do MidiaMax para conta")
		return
	}

	if !entry.Success {
		logger.WithField("error", entry.ErrorMessage).Warn("Extração da conta concluída sem sucesso")
		return
	}

	logger.Info("Métricas do MidiaMax salvas com sucesso para conta")
}

// TriggerManualSync inicia manualmente uma extração de todas as contas
func (s *MidiaMaxSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Extração do MidiaMax já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando extração manual do MidiaMax")
	go s.syncAllAccounts(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *MidiaMaxSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"accounts":               len(s.accountIDs),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
