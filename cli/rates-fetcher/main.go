package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/fin-tools/rates-fetcher/cli/cmd"
	"github.com/fin-tools/rates-fetcher/fetchers"
	"github.com/fin-tools/rates-fetcher/logging"
	"github.com/fin-tools/rates-fetcher/services"
)

func main() {
	_ = godotenv.Load()

	config, err := loadConfig()
	if err != nil {
		logrus.Fatalf("Error while loading configuration: %v", err)
	}

	logger, err := logging.New(config.LogFormat, config.LogLevel)
	if err != nil {
		logrus.Fatalf("Error while creating logger: %v", err)
	}

	fetcher := fetchers.PrivatBankFetcher{
		URL: config.FetcherURL,
		Log: logger,
	}

	err = cmd.Execute(&cmd.Config{
		Ctx:     context.Background(),
		Service: services.Service{Fetcher: fetcher, Log: logger},
		Log:     logger,
	})
	if err != nil {
		logger.Fatalf("Error while running command: %v", err)
	}
}
