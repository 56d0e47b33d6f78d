package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL"  required:"true"`
	HTTPPort    string `envconfig:"HTTP_PORT"     default:":8081"`
	LogLevel    string `envconfig:"LOG_LEVEL"     default:"info"`
	MaxPageSize int    `envconfig:"MAX_PAGE_SIZE" default:"500"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		if err := envconfig.Process("", &config); err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: HTTP Port=%s, LogLevel=%s, MaxPageSize=%d",
			config.HTTPPort, config.LogLevel, config.MaxPageSize)
	})
	return &config
}
