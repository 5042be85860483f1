package cmd

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	rates "github.com/fin-tools/rates-fetcher"
)

var (
	rootCmd = &cobra.Command{
		Use:     "rates-fetcher",
		Short:   "PrivatBank historical exchange rate fetcher",
		Version: "v1.0.0",
	}
	debug bool
)

type Config struct {
	Ctx     context.Context
	Service rates.Service
	Log     *logrus.Logger
}

func init() {
	// Rates render as JSON numbers, matching the remote payload.
	decimal.MarshalJSONWithoutQuotes = true
}

func Execute(config *Config) error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug flag")
	cobra.OnInitialize(func() {
		if debug && config.Log != nil {
			config.Log.SetLevel(logrus.DebugLevel)
		}
	})

	rootCmd.AddCommand(fetch(config))

	return rootCmd.Execute()
}
