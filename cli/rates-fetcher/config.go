package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/fin-tools/rates-fetcher/fetchers"
)

type Config struct {
	FetcherURL string
	LogFormat  string
	LogLevel   string
}

// loadConfig reads an optional config.yml in the working directory and
// RATES_FETCHER_* environment variables (a .env file is honored too).
func loadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("RATES_FETCHER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("fetchers.privatbank.url", fetchers.PrivatBankFetchURL)
	viper.SetDefault("log.format", "text")
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return &Config{
		FetcherURL: viper.GetString("fetchers.privatbank.url"),
		LogFormat:  viper.GetString("log.format"),
		LogLevel:   viper.GetString("log.level"),
	}, nil
}
