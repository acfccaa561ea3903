package configs

import (
	"log"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	// URL overrides the individual fields when set
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

var (
	configInstance *Config
	once           sync.Once
)

// Load reads configuration from the environment, with an optional .env file
func Load() *Config {
	once.Do(func() {
		viper.SetConfigName(".env")
		viper.SetConfigType("env")
		viper.AddConfigPath(".")

		viper.SetDefault("QNA_HOST", "")
		viper.SetDefault("QNA_PORT", "4000")
		viper.SetDefault("QNA_READ_TIMEOUT", 30*time.Second)
		viper.SetDefault("QNA_WRITE_TIMEOUT", 30*time.Second)
		viper.SetDefault("QNA_IDLE_TIMEOUT", 60*time.Second)
		viper.SetDefault("POSTGRES_USER", "postgres")
		viper.SetDefault("POSTGRES_PASSWORD", "password")
		viper.SetDefault("POSTGRES_HOST", "localhost")
		viper.SetDefault("POSTGRES_PORT", "5432")
		viper.SetDefault("POSTGRES_DB", "postgres")
		viper.SetDefault("POSTGRES_SSLMODE", "disable")
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			log.Printf("No .env file found, using environment variables and defaults")
		}

		configInstance = &Config{
			Server: ServerConfig{
				Host:         viper.GetString("QNA_HOST"),
				Port:         viper.GetString("QNA_PORT"),
				ReadTimeout:  viper.GetDuration("QNA_READ_TIMEOUT"),
				WriteTimeout: viper.GetDuration("QNA_WRITE_TIMEOUT"),
				IdleTimeout:  viper.GetDuration("QNA_IDLE_TIMEOUT"),
			},
			Database: DatabaseConfig{
				URL:      viper.GetString("DATABASE_URL"),
				Host:     viper.GetString("POSTGRES_HOST"),
				Port:     viper.GetString("POSTGRES_PORT"),
				User:     viper.GetString("POSTGRES_USER"),
				Password: viper.GetString("POSTGRES_PASSWORD"),
				DBName:   viper.GetString("POSTGRES_DB"),
				SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
			},
		}
	})
	return configInstance
}
