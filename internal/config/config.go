package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	DBDriver    string
	DBDSN       string
	StorageRoot string
	RedisAddr   string
	Compression string
}

// LoadConfig reads the environment, optionally seeded from a .env file.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}

	return &Config{
		DBDriver:    getEnv("FIREDRIVE_DB_DRIVER", "sqlite"),
		DBDSN:       getEnv("FIREDRIVE_DB_DSN", "firedrive.db"),
		StorageRoot: getEnv("FIREDRIVE_STORAGE_ROOT", "storage"),
		RedisAddr:   os.Getenv("FIREDRIVE_REDIS_ADDR"),
		Compression: getEnv("FIREDRIVE_COMPRESSION", "none"),
	}
}

// GetDb opens the configured database.
func GetDb(cfg *Config) *gorm.DB {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	default:
		dialector = sqlite.Open(cfg.DBDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to open database: %v", err)
	}

	return db
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
