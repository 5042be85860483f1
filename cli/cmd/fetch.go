package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	rates "github.com/fin-tools/rates-fetcher"
)

const defaultShift = 1

// validateFetchArgs rejects a non-integer shift and unrecognized
// currency codes before the pipeline runs.
func validateFetchArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}

	if _, err := strconv.Atoi(args[0]); err != nil {
		return fmt.Errorf("shift must be an integer, got %q", args[0])
	}

	for _, arg := range args[1:] {
		if _, err := rates.ParseCode(arg); err != nil {
			return err
		}
	}

	return nil
}

func parseFetchArgs(args []string) (int, []string) {
	shift := defaultShift
	if len(args) > 0 {
		shift, _ = strconv.Atoi(args[0])
	}

	var codes []string
	if len(args) > 1 {
		codes = args[1:]
	}

	return shift, codes
}

func fetchCobraCommand(config *Config) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		shift, codes := parseFetchArgs(args)

		results, err := config.Service.FetchAll(config.Ctx, shift, codes)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Invalid input: %v\n", err)

			return
		}

		rendered, err := json.MarshalIndent(results, "", "    ")
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "rendering result: %v\n", err)

			return
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
	}
}

func fetch(config *Config) *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch [shift] [currency code...]",
		Short: "Fetch exchange rates for today and up to 10 trailing days",
		Args:  validateFetchArgs,
	}

	fetchCmd.Run = fetchCobraCommand(config)

	return fetchCmd
}
