package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	midiamaxdomain "github.com/vfg2006/metrics-scraper-api/infrastructure/integrator/midiamax/domain"
)

type Config struct {
	App              App                                 `mapstructure:",squash"`
	Server           Server                              `mapstructure:",squash"`
	Database         Database                            `mapstructure:",squash"`
	MidiaMax         MidiaMax                            `mapstructure:",squash"`
	MidiaMaxSync     MidiaMaxSync                        `mapstructure:",squash"`
	MidiaMaxAccounts map[string]midiamaxdomain.Credentials `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// MidiaMax configura o integrador baseado em navegador.
type MidiaMax struct {
	BaseURL     string `mapstructure:"midiamax_base_url"`
	LoginPath   string `mapstructure:"midiamax_login_path"`
	ReportsPath string `mapstructure:"midiamax_reports_path"`

	Headless      bool   `mapstructure:"midiamax_headless"`
	ScreenshotDir string `mapstructure:"midiamax_screenshot_dir"`
	DownloadDir   string `mapstructure:"midiamax_download_dir"`

	MaxRetries               int `mapstructure:"midiamax_max_retries"`
	RetryDelaySeconds        int `mapstructure:"midiamax_retry_delay_seconds"`
	SelectorTimeoutSeconds   int `mapstructure:"midiamax_selector_timeout_seconds"`
	NavigationTimeoutSeconds int `mapstructure:"midiamax_navigation_timeout_seconds"`
	DownloadTimeoutSeconds   int `mapstructure:"midiamax_download_timeout_seconds"`

	// Credenciais das contas no formato
	// "conta1:usuario:senha[:semente_totp];conta2:usuario:senha"
	AccountsSpec string `mapstructure:"midiamax_accounts"`
}

// MidiaMaxSync configura o agendador de extração periódica.
type MidiaMaxSync struct {
	CronSchedule        string `mapstructure:"midiamax_sync_cron"`
	LookbackDays        int    `mapstructure:"midiamax_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"midiamax_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"midiamax_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"midiamax_sync_enabled"`
}

// LoginURL retorna a URL absoluta da tela de login do painel.
func (m MidiaMax) LoginURL() string {
	return strings.TrimRight(m.BaseURL, "/") + m.LoginPath
}

// ReportsURL retorna a URL absoluta da tela de relatórios do painel.
func (m MidiaMax) ReportsURL() string {
	return strings.TrimRight(m.BaseURL, "/") + m.ReportsPath
}

func (m MidiaMax) RetryDelay() time.Duration {
	return time.Duration(m.RetryDelaySeconds) * time.Second
}

func (m MidiaMax) SelectorTimeout() time.Duration {
	return time.Duration(m.SelectorTimeoutSeconds) * time.Second
}

func (m MidiaMax) NavigationTimeout() time.Duration {
	return time.Duration(m.NavigationTimeoutSeconds) * time.Second
}

func (m MidiaMax) DownloadTimeout() time.Duration {
	return time.Duration(m.DownloadTimeoutSeconds) * time.Second
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/metrics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("MIDIAMAX_BASE_URL", "https://painel.midiamax.app")
	viper.SetDefault("MIDIAMAX_LOGIN_PATH", "/login")
	viper.SetDefault("MIDIAMAX_REPORTS_PATH", "/relatorios/campanhas")

	viper.SetDefault("MIDIAMAX_HEADLESS", true)
	viper.SetDefault("MIDIAMAX_SCREENSHOT_DIR", "./data/screenshots")
	viper.SetDefault("MIDIAMAX_DOWNLOAD_DIR", "./data/downloads")

	viper.SetDefault("MIDIAMAX_MAX_RETRIES", 3)                 // 3 tentativas por extração
	viper.SetDefault("MIDIAMAX_RETRY_DELAY_SECONDS", 5)         // 5 segundos entre tentativas
	viper.SetDefault("MIDIAMAX_SELECTOR_TIMEOUT_SECONDS", 10)   // Espera por elemento do painel
	viper.SetDefault("MIDIAMAX_NAVIGATION_TIMEOUT_SECONDS", 30) // Espera por página assentada
	viper.SetDefault("MIDIAMAX_DOWNLOAD_TIMEOUT_SECONDS", 60)   // O relatório é gerado no servidor do painel

	viper.SetDefault("MIDIAMAX_ACCOUNTS", "")

	// Defaults para a sincronização agendada
	viper.SetDefault("MIDIAMAX_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("MIDIAMAX_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar dados
	viper.SetDefault("MIDIAMAX_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre contas
	viper.SetDefault("MIDIAMAX_SYNC_MAX_CONCURRENT_JOBS", 2)   // Cada job é um navegador inteiro
	viper.SetDefault("MIDIAMAX_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.MidiaMaxAccounts, err = ParseAccountsSpec(config.MidiaMax.AccountsSpec)
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// ParseAccountsSpec interpreta a lista de contas vinda do ambiente, no formato
// "conta:usuario:senha[:semente_totp]" separado por ponto e vírgula. A semente
// TOTP é opcional por conta.
func ParseAccountsSpec(spec string) (map[string]midiamaxdomain.Credentials, error) {
	accounts := make(map[string]midiamaxdomain.Credentials)

	for _, entry := range strings.Split(spec, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) < 3 || len(parts) > 4 {
			return nil, fmt.Errorf("entrada de conta inválida em MIDIAMAX_ACCOUNTS: %q", entry)
		}

		creds := midiamaxdomain.Credentials{
			Username: parts[1],
			Password: parts[2],
		}
		if len(parts) == 4 {
			creds.MFASeed = parts[3]
		}

		accounts[parts[0]] = creds
	}

	return accounts, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
