package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env           string
	Port          string
	StorageDriver string // "sqlite" (default), "postgres" or "redis"
	DatabaseURL   string // postgres DSN when StorageDriver is "postgres"
	SQLitePath    string // sqlite file path; ":memory:" allowed
	RedisURL      string
	LogLevel      string
	SeedListings  bool // seed the built-in listings when the listings record is absent
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	driver := strings.ToLower(viper.GetString("STORAGE_DRIVER"))
	if driver == "" {
		driver = "sqlite"
	}
	sqlitePath := viper.GetString("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = "imovia.db"
	}

	seed := true
	if viper.IsSet("SEED_LISTINGS") {
		seed = strings.EqualFold(viper.GetString("SEED_LISTINGS"), "true")
	}

	return &Config{
		Env:           env,
		Port:          port,
		StorageDriver: driver,
		DatabaseURL:   viper.GetString("DATABASE_URL"),
		SQLitePath:    sqlitePath,
		RedisURL:      viper.GetString("REDIS_URL"),
		LogLevel:      viper.GetString("LOG_LEVEL"),
		SeedListings:  seed,
	}, nil
}
