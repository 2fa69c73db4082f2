package config

import (
	"os"

	"github.com/subosito/gotenv"
	"golang.org/x/exp/slog"
)

// LoadEnv loads config/envs/.env.<env>, falling back to the OS
// environment when the file is absent.
func LoadEnv(env string) {
	if env == "" {
		env = "dev"
	}
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment",
			slog.String("env", env))
	}
}

func GetEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
