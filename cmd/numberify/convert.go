package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	numberify "github.com/xavirn89/numberify-text"
	"github.com/xavirn89/numberify-text/internal/config"
)

func newConvertCommand(configPath *string) *cobra.Command {
	var (
		lang  string
		trace bool
	)

	cmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Replace number words with digits",
		Long: `Convert the arguments, joined with spaces, or every line read from
standard input when no argument is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if lang == "" {
				lang = cfg.Numberify.DefaultLanguage
			}
			if !numberify.Supported(lang) {
				return fmt.Errorf("unsupported language %q (supported: %s)", lang, strings.Join(numberify.Tags(), ", "))
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				return writeConversion(out, strings.Join(args, " "), lang, trace)
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				if err := writeConversion(out, sc.Text(), lang, trace); err != nil {
					return err
				}
			}
			return sc.Err()
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "language tag: en or es (default from config)")
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "print the tokens after every stage")
	return cmd
}

// writeConversion prints the converted sentence, preceded by one line per
// pipeline stage when trace is set.
func writeConversion(w io.Writer, sentence, lang string, trace bool) error {
	if trace {
		for _, step := range numberify.Trace(sentence, lang) {
			if _, err := fmt.Fprintf(w, "%-16s %q\n", step.Stage, step.Tokens); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, numberify.Text(sentence, lang))
	return err
}
