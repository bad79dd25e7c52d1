package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config is everything the CLI and server need to reach the budget store.
// Precedence, lowest to highest: defaults, config file, FABU_* environment
// variables, command-line flags.
type Config struct {
	APIURL  string
	Timeout time.Duration
	UserID  string
}

// Build loads configuration from cfgFile (or ./config.yaml when empty) and
// binds any matching flags. A missing default config file is not an error.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault("api_url", "http://localhost:3000")
	v.SetDefault("timeout", "30s")
	v.SetDefault("user_id", "")

	v.SetEnvPrefix("FABU")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	if flags != nil {
		if f := flags.Lookup("api-url"); f != nil {
			if err := v.BindPFlag("api_url", f); err != nil {
				return nil, err
			}
		}
		if f := flags.Lookup("user"); f != nil {
			if err := v.BindPFlag("user_id", f); err != nil {
				return nil, err
			}
		}
	}

	return &Config{
		APIURL:  v.GetString("api_url"),
		Timeout: v.GetDuration("timeout"),
		UserID:  v.GetString("user_id"),
	}, nil
}
