package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envDevelopment = "development"

type Env struct {
	AppEnv            string `mapstructure:"APP_ENV"`
	ServerAddress     string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout    int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBURI             string `mapstructure:"DB_URI"`
	DBName            string `mapstructure:"DB_NAME"`
	RedisURL          string `mapstructure:"REDIS_URL"`
	PickCacheTTL      int    `mapstructure:"PICK_CACHE_TTL"`
	AccessTokenSecret string `mapstructure:"ACCESS_TOKEN_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
}

var envDefaults = map[string]interface{}{
	"APP_ENV":             envDevelopment,
	"SERVER_ADDRESS":      ":8080",
	"CONTEXT_TIMEOUT":     10,
	"DB_URI":              "mongodb://localhost:27017",
	"DB_NAME":             "musicroad",
	"REDIS_URL":           "",
	"PICK_CACHE_TTL":      300,
	"ACCESS_TOKEN_SECRET": "",
	"LOG_LEVEL":           "info",
}

// NewEnv 先加载 .env（可选），进程环境变量优先
func NewEnv(envFile string) (*Env, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range envDefaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	env := Env{}
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}

	if err := env.validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func (e *Env) IsDevelopment() bool {
	return strings.EqualFold(e.AppEnv, envDevelopment)
}

func (e *Env) validate() error {
	if e.ContextTimeout <= 0 {
		return fmt.Errorf("CONTEXT_TIMEOUT must be positive, got %d", e.ContextTimeout)
	}
	if e.PickCacheTTL <= 0 {
		return fmt.Errorf("PICK_CACHE_TTL must be positive, got %d", e.PickCacheTTL)
	}
	if e.AccessTokenSecret == "" {
		if !e.IsDevelopment() {
			return errors.New("ACCESS_TOKEN_SECRET is required outside development")
		}
		e.AccessTokenSecret = "musicroad-dev-secret"
	}
	return nil
}
