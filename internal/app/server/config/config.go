package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultSecret     = "dev-only-secret"
	defaultRunAddress = "localhost:8080"
	defaultDatabase   = "tutorlink.db"
	defaultMigrations = "migrations"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env    string
	DB     db
	Server server
	Secret string
}

type db struct {
	DatabasePath string
	Migrations   string
}

type server struct {
	RunAddress string
}

// MustLoad reads the environment, falling back to a .env file when present.
// Missing values get local-development defaults: this server exists to back
// the client during development, not to face the internet.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	config := Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabasePath: viper.GetString("database_path"),
			Migrations:   viper.GetString("migrations_path"),
		},
		Server: server{RunAddress: viper.GetString("run_address")},
		Secret: viper.GetString("secret"),
	}

	if config.Env == "" {
		config.Env = EnvLocal
	}
	if config.DB.DatabasePath == "" {
		config.DB.DatabasePath = defaultDatabase
	}
	if config.DB.Migrations == "" {
		config.DB.Migrations = defaultMigrations
	}
	if config.Server.RunAddress == "" {
		config.Server.RunAddress = defaultRunAddress
	}
	if config.Secret == "" {
		config.Secret = defaultSecret
	}

	return &config
}
