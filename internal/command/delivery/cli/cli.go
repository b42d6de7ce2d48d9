// Package cli exposes the command use case as a cobra command tree.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"taskparse/internal/command"
	"taskparse/internal/command/usecase"
	"taskparse/internal/extraction"
	"taskparse/pkg/log"
)

const (
	defaultTimezone      = "Europe/Athens"
	defaultMaxTextLength = 2000
)

type options struct {
	timezone    string
	lexiconPath string
}

// NewRootCommand builds the taskparse command tree. Results are written to
// out as indented JSON.
func NewRootCommand(l log.Logger, out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "taskparse",
		Short: "Parse free-text task commands",
		Long: `taskparse turns English or Greek free-text commands into structured
task operations: intent, title, entities, priority and dates.`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.timezone, "timezone", defaultTimezone, "IANA timezone dates are resolved in")
	root.PersistentFlags().StringVar(&opts.lexiconPath, "lexicon", "", "path to a lexicon YAML file (default: embedded)")

	root.AddCommand(newProcessCommand(l, opts))
	root.AddCommand(newExamplesCommand(l, opts))
	return root
}

func newProcessCommand(l log.Logger, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "process <text...>",
		Short: "Parse one command",
		Long: `Parse one command and print the task record.

Examples:
  taskparse process create a task in "#Garden Care" for tomorrow
  echo "update /123 priority high" | taskparse process -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if text == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}

			uc, err := buildUseCase(l, opts)
			if err != nil {
				return err
			}
			output, err := uc.Process(cmd.Context(), command.ProcessInput{Text: text})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), command.NewRecord(output.Operation))
		},
	}
}

func newExamplesCommand(l log.Logger, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Parse the built-in example phrases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := buildUseCase(l, opts)
			if err != nil {
				return err
			}
			output, err := uc.Examples(cmd.Context())
			if err != nil {
				return err
			}
			summaries := make([]command.ExampleSummary, 0, len(output.Examples))
			for _, ex := range output.Examples {
				summaries = append(summaries, command.Summarize(ex))
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{"examples": summaries})
		},
	}
}

func buildUseCase(l log.Logger, opts *options) (command.UseCase, error) {
	p, err := extraction.Load(opts.lexiconPath, opts.timezone)
	if err != nil {
		return nil, err
	}
	return usecase.New(l, p, nil, usecase.Config{
		MaxTextLength:    defaultMaxTextLength,
		MaxBatchSize:     1,
		BatchConcurrency: 1,
	}), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
