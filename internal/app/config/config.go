package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int

	JWTSecret   string
	JWTTTLHours int

	MinIOHost       string
	MinIOPort       string
	MinIOAccessKey  string
	MinIOSecretKey  string
	MinIOBucket     string
	MinIOUseSSL     bool
	MinIOPublicBase string

	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int

	AIServiceURL     string
	AITimeoutSeconds int
}

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	viper.WatchConfig()

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// Environment overrides for everything that carries credentials or
	// differs between deployments.
	cfg.JWTSecret = envString("JWT_SECRET", cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
		log.Warn("JWT_SECRET not set, using development secret")
	}
	if cfg.JWTTTLHours == 0 {
		cfg.JWTTTLHours = 24
	}

	cfg.MinIOHost = envString("MINIO_HOST", "127.0.0.1")
	cfg.MinIOPort = envString("MINIO_PORT", "9000")
	cfg.MinIOAccessKey = envString("MINIO_ACCESS_KEY", "minioadmin")
	cfg.MinIOSecretKey = envString("MINIO_SECRET_KEY", "minioadmin")
	cfg.MinIOBucket = envString("MINIO_BUCKET", "health-files")
	cfg.MinIOPublicBase = envString("MINIO_PUBLIC_BASE", "http://"+cfg.MinIOHost+":"+cfg.MinIOPort)

	cfg.RedisHost = envString("REDIS_HOST", "127.0.0.1")
	cfg.RedisPort = envInt("REDIS_PORT", 6379)
	cfg.RedisPassword = envString("REDIS_PASSWORD", "")
	cfg.RedisDB = envInt("REDIS_DB", 0)

	cfg.AIServiceURL = envString("AI_SERVICE_URL", "http://localhost:8001")
	if cfg.AITimeoutSeconds == 0 {
		cfg.AITimeoutSeconds = 60
	}

	log.Info("config parsed")

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
