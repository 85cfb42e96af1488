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
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Cors                Cors                `mapstructure:",squash"`
	ExchangeRates       ExchangeRates       `mapstructure:",squash"`
	ExchangeRateRefresh ExchangeRateRefresh `mapstructure:",squash"`
	Redis               Redis               `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type ExchangeRates struct {
	URL                 string        `mapstructure:"exchange_rates_url"`
	BaseCurrency        string        `mapstructure:"exchange_rates_base_currency"`
	SupportedCurrencies []string      `mapstructure:"exchange_rates_supported_currencies"`
	TTL                 time.Duration `mapstructure:"exchange_rates_ttl"`
	HTTPTimeout         time.Duration `mapstructure:"exchange_rates_http_timeout"`
}

type ExchangeRateRefresh struct {
	CronSchedule string `mapstructure:"exchange_rate_refresh_cron"`
	Enabled      bool   `mapstructure:"exchange_rate_refresh_enabled"`
}

// Redis vazio mantém o cache de cotações em memória
type Redis struct {
	Addr        string `mapstructure:"redis_addr"`
	Password    string `mapstructure:"redis_password"`
	DB          int    `mapstructure:"redis_db"`
	SnapshotKey string `mapstructure:"redis_snapshot_key"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)

	v.SetDefault("LOG_LEVEL", "debug")

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("EXCHANGE_RATES_URL", "https://v2.xxapi.cn/api/allrates")
	v.SetDefault("EXCHANGE_RATES_BASE_CURRENCY", "CNY")
	v.SetDefault("EXCHANGE_RATES_SUPPORTED_CURRENCIES", "USD,EUR,GBP,JPY,KRW,HKD,SGD,AUD,CAD")
	v.SetDefault("EXCHANGE_RATES_TTL", "1h")         // Cotações valem uma hora
	v.SetDefault("EXCHANGE_RATES_HTTP_TIMEOUT", "0s") // Zero mantém o padrão do transporte

	v.SetDefault("EXCHANGE_RATE_REFRESH_CRON", "0 * * * *") // A cada hora cheia
	v.SetDefault("EXCHANGE_RATE_REFRESH_ENABLED", true)

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_SNAPSHOT_KEY", "seller-calc:exchange-rates")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.ExchangeRates.BaseCurrency = normalizeCode(config.ExchangeRates.BaseCurrency)
	config.ExchangeRates.SupportedCurrencies = normalizeCodes(config.ExchangeRates.SupportedCurrencies)
	config.Cors.AllowedOrigins = trimAll(config.Cors.AllowedOrigins)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica os valores que o cache de cotações não consegue corrigir sozinho
func (c *Config) Validate() error {
	if len(c.ExchangeRates.BaseCurrency) != 3 {
		return fmt.Errorf("invalid EXCHANGE_RATES_BASE_CURRENCY %q", c.ExchangeRates.BaseCurrency)
	}
	if c.ExchangeRates.TTL <= 0 {
		return fmt.Errorf("EXCHANGE_RATES_TTL must be positive, got %s", c.ExchangeRates.TTL)
	}
	if c.ExchangeRates.HTTPTimeout < 0 {
		return fmt.Errorf("EXCHANGE_RATES_HTTP_TIMEOUT must not be negative, got %s", c.ExchangeRates.HTTPTimeout)
	}
	if c.ExchangeRateRefresh.Enabled && strings.TrimSpace(c.ExchangeRateRefresh.CronSchedule) == "" {
		return fmt.Errorf("EXCHANGE_RATE_REFRESH_CRON is required when the refresh is enabled")
	}
	return nil
}

func (s Server) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func normalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = normalizeCode(code)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
