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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Infloww         Infloww         `mapstructure:",squash"`
	Report          Report          `mapstructure:",squash"`
	History         History         `mapstructure:",squash"`
	RankingSnapshot RankingSnapshot `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

// Infloww configura o acesso ao provedor de métricas
type Infloww struct {
	BaseURL     string `mapstructure:"infloww_base_url"`
	AccessToken string `mapstructure:"infloww_access_token"`
	MaxRetries  int    `mapstructure:"infloww_max_retries"`
	PageLimit   int    `mapstructure:"infloww_page_limit"`
}

// Report configura o relatório geral por conta: as contas são consultadas
// em lotes concorrentes com pausa entre lotes para não estourar o rate
// limit implícito do provedor
type Report struct {
	BatchSize        int `mapstructure:"report_batch_size"`
	BatchDelayMillis int `mapstructure:"report_batch_delay_ms"`
}

// History configura a pausa entre contas na montagem do histórico diário
type History struct {
	AccountDelayMillis int `mapstructure:"history_account_delay_ms"`
}

// RankingSnapshot configura o agendador diário do ranking de contas
type RankingSnapshot struct {
	CronSchedule string `mapstructure:"ranking_snapshot_cron"`
	Enabled      bool   `mapstructure:"ranking_snapshot_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/chatter_metrics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("INFLOWW_BASE_URL", "https://api.infloww.com")
	viper.SetDefault("INFLOWW_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("INFLOWW_MAX_RETRIES", 3)
	viper.SetDefault("INFLOWW_PAGE_LIMIT", 100)

	viper.SetDefault("REPORT_BATCH_SIZE", 2)         // Contas consultadas em paralelo por lote
	viper.SetDefault("REPORT_BATCH_DELAY_MS", 1500)  // Pausa entre lotes
	viper.SetDefault("HISTORY_ACCOUNT_DELAY_MS", 1500)

	viper.SetDefault("RANKING_SNAPSHOT_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("RANKING_SNAPSHOT_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
