package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the console's runtime configuration. Defaults can be overridden
// through FEECONSOLE_-prefixed environment variables or a local .env file.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	TokenFile      string
	PollInterval   time.Duration
	Debug          bool
}

// TokenEnvVar is the fallback when the token file is absent.
const TokenEnvVar = "FEECONSOLE_TOKEN"

func Load() (*Config, error) {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("apibaseurl", "http://localhost:5000/api")
	v.SetDefault("requesttimeout", 15*time.Second)
	v.SetDefault("tokenfile", defaultTokenFile())
	v.SetDefault("pollinterval", 30*time.Second)
	v.SetDefault("debug", false)

	// load .env if it exists (ignore if it does not)
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.Wrap(err, "load .env")
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "stat .env")
	}

	v.SetEnvPrefix("FEECONSOLE")
	v.AutomaticEnv()

	return &Config{
		APIBaseURL:     v.GetString("apibaseurl"),
		RequestTimeout: v.GetDuration("requesttimeout"),
		TokenFile:      v.GetString("tokenfile"),
		PollInterval:   v.GetDuration("pollinterval"),
		Debug:          v.GetBool("debug"),
	}, nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".feeconsole-token"
	}
	return filepath.Join(home, ".feeconsole", "token")
}
