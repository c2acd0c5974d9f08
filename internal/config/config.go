package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Dataset agrupa a configuração do pipeline de carga da planilha de vendas.
type Dataset struct {
	// Fontes candidatas, tentadas em ordem: download direto do Drive e
	// exportação como planilha do Google Sheets para o mesmo arquivo lógico
	SourceURLs []string `mapstructure:"dataset_source_urls"`

	// Timeout de rede por tentativa de download
	FetchTimeout time.Duration `mapstructure:"dataset_fetch_timeout"`

	// TTL da memoização do resultado de carga
	CacheTTL time.Duration `mapstructure:"dataset_cache_ttl"`

	// Objetivo diário padrão de pedidos por vendedor
	DefaultDailyTarget int `mapstructure:"quota_default_daily_target"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

const driveFileID = "10NLcCVPLe3q9kpqFyOeCrOSY9d5U-WSA"

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATASET_SOURCE_URLS",
		"https://drive.google.com/uc?id="+driveFileID+
			",https://docs.google.com/spreadsheets/d/"+driveFileID+"/export?format=xlsx")
	viper.SetDefault("DATASET_FETCH_TIMEOUT", "30s")
	viper.SetDefault("DATASET_CACHE_TTL", "1h")

	viper.SetDefault("QUOTA_DEFAULT_DAILY_TARGET", 45)

	// Re-aquecimento agendado do cache; desabilitado por padrão
	viper.SetDefault("DATASET_REFRESH_CRON", "0 * * * *")
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

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

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
