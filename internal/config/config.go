package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	PMS               PMS               `mapstructure:",squash"`
	Reviews           Reviews           `mapstructure:",squash"`
	Reporting         Reporting         `mapstructure:",squash"`
	SnapshotSync      SnapshotSync      `mapstructure:",squash"`
	MonthlyReportSync MonthlyReportSync `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
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

// PMS é a API principal do Stayza (reservas, ocupação e receita)
type PMS struct {
	URL            string `mapstructure:"pms_url"`
	AccessToken    string `mapstructure:"pms_access_token"`
	TimeoutSeconds int    `mapstructure:"pms_timeout_seconds"`
	MaxRetries     int    `mapstructure:"pms_max_retries"`
}

// Reviews é a API da plataforma de avaliações de hóspedes
type Reviews struct {
	URL            string `mapstructure:"reviews_url"`
	AccessToken    string `mapstructure:"reviews_access_token"`
	TimeoutSeconds int    `mapstructure:"reviews_timeout_seconds"`
}

// Reporting é o serviço de geração de relatórios exportados (PDF)
type Reporting struct {
	URL            string `mapstructure:"reporting_url"`
	AccessToken    string `mapstructure:"reporting_access_token"`
	TimeoutSeconds int    `mapstructure:"reporting_timeout_seconds"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type SnapshotSync struct {
	CronSchedule        string `mapstructure:"snapshot_sync_cron"`
	LookbackDays        int    `mapstructure:"snapshot_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"snapshot_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"snapshot_sync_max_concurrent_jobs"`
	RetentionDays       int    `mapstructure:"snapshot_sync_retention_days"`
	Enabled             bool   `mapstructure:"snapshot_sync_enabled"`
}

type MonthlyReportSync struct {
	CronSchedule        string `mapstructure:"monthly_report_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"monthly_report_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"monthly_report_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"monthly_report_sync_enabled"`
	MonthLookBack       int    `mapstructure:"monthly_report_sync_month_lookback"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/stayza")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("PMS_URL", "https://core.stayza.com.br/api/v1")
	viper.SetDefault("PMS_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("PMS_TIMEOUT_SECONDS", 30)
	viper.SetDefault("PMS_MAX_RETRIES", 3)

	viper.SetDefault("REVIEWS_URL", "https://reviews.stayza.com.br/api/v1")
	viper.SetDefault("REVIEWS_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("REVIEWS_TIMEOUT_SECONDS", 30)

	viper.SetDefault("REPORTING_URL", "https://reports.stayza.com.br/api/v1")
	viper.SetDefault("REPORTING_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("REPORTING_TIMEOUT_SECONDS", 30)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults para sincronização diária de snapshots
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar dados
	viper.SetDefault("SNAPSHOT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("SNAPSHOT_SYNC_RETENTION_DAYS", 400)      // Retenção de pouco mais de um ano
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)           // Habilitar sincronização de snapshots

	// Defaults para consolidação mensal de desempenho
	viper.SetDefault("MONTHLY_REPORT_SYNC_CRON", "0 5 1 * *")        // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("MONTHLY_REPORT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("MONTHLY_REPORT_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("MONTHLY_REPORT_SYNC_ENABLED", false)           // Habilitar consolidação mensal
	viper.SetDefault("MONTHLY_REPORT_SYNC_MONTH_LOOKBACK", 1)        // 1 mês para buscar dados

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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
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
