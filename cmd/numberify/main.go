// Command numberify replaces number words with digits, either from the
// command line or as a JSON REST API.
//
//	numberify convert --lang es "tengo treinta y dos años"
//	echo "three point one four" | numberify convert
//	numberify serve --port 8080
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "numberify",
		Short:        "Convert number words in English and Spanish text to digits",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default ./config.yaml or ./configs/config.yaml)")

	rootCmd.AddCommand(
		newConvertCommand(&configPath),
		newServeCommand(&configPath),
	)
	return rootCmd
}
