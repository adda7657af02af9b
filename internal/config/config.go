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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Dashboard    Dashboard    `mapstructure:",squash"`
	DataRefresh  DataRefresh  `mapstructure:",squash"`
	StatusTicker StatusTicker `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
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

type Dashboard struct {
	CompanyID       string `mapstructure:"dashboard_company_id"`
	DefaultTimezone string `mapstructure:"dashboard_default_timezone"`
	Locale          string `mapstructure:"dashboard_locale"`
	HistoryDays     int    `mapstructure:"dashboard_history_days"`
	TopProducts     int    `mapstructure:"dashboard_top_products"`
}

type DataRefresh struct {
	IntervalSeconds int  `mapstructure:"data_refresh_interval_seconds"`
	Enabled         bool `mapstructure:"data_refresh_enabled"`
}

type StatusTicker struct {
	IntervalSeconds int  `mapstructure:"status_ticker_interval_seconds"`
	Enabled         bool `mapstructure:"status_ticker_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/pharmacy?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DASHBOARD_COMPANY_ID", "")
	viper.SetDefault("DASHBOARD_DEFAULT_TIMEZONE", "Africa/Maputo")
	viper.SetDefault("DASHBOARD_LOCALE", "pt-MZ")
	viper.SetDefault("DASHBOARD_HISTORY_DAYS", 91) // Cobre a janela de 3 meses mais o dia atual
	viper.SetDefault("DASHBOARD_TOP_PRODUCTS", 5)

	// Defaults para os agendadores
	viper.SetDefault("DATA_REFRESH_INTERVAL_SECONDS", 30)
	viper.SetDefault("DATA_REFRESH_ENABLED", true)
	viper.SetDefault("STATUS_TICKER_INTERVAL_SECONDS", 1)
	viper.SetDefault("STATUS_TICKER_ENABLED", true)

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

	config.normalize()

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// normalize corrige valores fora do intervalo aceito pelos agendadores
func (c *Config) normalize() {
	if c.DataRefresh.IntervalSeconds <= 0 {
		logrus.Warnf("DATA_REFRESH_INTERVAL_SECONDS inválido (%d), usando 30", c.DataRefresh.IntervalSeconds)
		c.DataRefresh.IntervalSeconds = 30
	}
	if c.StatusTicker.IntervalSeconds <= 0 {
		c.StatusTicker.IntervalSeconds = 1
	}
	if c.Dashboard.HistoryDays <= 0 {
		c.Dashboard.HistoryDays = 91
	}
	if c.Dashboard.DefaultTimezone == "" {
		c.Dashboard.DefaultTimezone = "Africa/Maputo"
	}
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
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
