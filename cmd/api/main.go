package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metrics-scraper-api/infrastructure/database/postgres"
	"github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax"
	"github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/browserdriver"
	"github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/parser"
	"github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/scraper"
	"github.com/vfg2006/metrics-scraper-api/infrastructure/repository"
	"github.com/vfg2006/metrics-scraper-api/internal/api"
	"github.com/vfg2006/metrics-scraper-api/internal/config"
	"github.com/vfg2006/metrics-scraper-api/internal/scheduler"
	"github.com/vfg2006/metrics-scraper-api/internal/usecases/collecting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	extractionRepo := repository.NewExtractionRepository(pgConn)

	// Monta o integrador do MidiaMax: sessões reais de navegador, fluxos de
	// login e exportação sobre a tabela de seletores padrão e o parser de
	// planilhas exportadas.
	selectors := scraper.DefaultSelectors()

	sessionFactory := browserdriver.NewFactory(
		cfg.MidiaMax.ScreenshotDir,
		cfg.MidiaMax.DownloadDir,
		selectors.LoadingIndicator,
	)

	// Sem gerador de TOTP configurado: contas com MFA falham com erro tipado
	authFlow := scraper.NewAuthFlow(
		cfg.MidiaMax.LoginURL(),
		selectors,
		nil,
		cfg.MidiaMax.SelectorTimeout(),
		cfg.MidiaMax.NavigationTimeout(),
	)

	exportFlow := scraper.NewExportFlow(
		cfg.MidiaMax.ReportsURL(),
		selectors,
		scraper.DefaultPeriodStrategies(selectors, cfg.MidiaMax.SelectorTimeout(), time.Now),
		cfg.MidiaMax.SelectorTimeout(),
		cfg.MidiaMax.NavigationTimeout(),
		cfg.MidiaMax.DownloadTimeout(),
	)

	midiamaxIntegrator := midiamax.New(
		sessionFactory,
		authFlow,
		exportFlow,
		parser.New(),
		midiamax.Config{
			Headless:   cfg.MidiaMax.Headless,
			MaxRetries: cfg.MidiaMax.MaxRetries,
			RetryDelay: cfg.MidiaMax.RetryDelay(),
		},
	)

	collectorService := collecting.NewService(midiamaxIntegrator, extractionRepo, cfg.MidiaMaxAccounts)

	// Inicializa o agendador de extração periódica
	midiamaxSyncService := scheduler.NewMidiaMaxSyncService(collectorService, cfg)

	if err := midiamaxSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de extração do MidiaMax")
	} else {
		logrus.Info("Agendador de extração do MidiaMax iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		collectorService,
		midiamaxSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
