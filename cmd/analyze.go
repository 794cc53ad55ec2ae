package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriSense/internal/app"
	"github.com/Rorical/RoriSense/internal/client"
	"github.com/Rorical/RoriSense/internal/config"
	"github.com/Rorical/RoriSense/internal/controller"
	"github.com/Rorical/RoriSense/internal/logging"
	"github.com/Rorical/RoriSense/internal/models"
)

var analyzeOutput string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Analyze text once and print the result",
	Long: `Send one text to the classifier and print the sentiment, confidence and probabilities.
The text is taken from the arguments, or from standard input when there are none.`,
	Example: `  rorisense analyze "I love this!"
  echo "Terrible service" | rorisense analyze --output json`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(analyzeOutput); err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		logger := logging.InitLogger(cliLogLevel(cfg))

		text, err := readText(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		text, err = controller.Validate(text)
		if err != nil {
			return err
		}

		analyzer, _ := app.NewAnalyzer(cfg, logger)
		result, err := analyzer.Analyze(cmd.Context(), models.NewAnalysisRequest(text))
		if err != nil {
			return errors.New(client.MessageFor(err))
		}

		return writeResult(cmd.OutOrStdout(), result, analyzeOutput)
	},
}

func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return string(data), nil
}

// cliLogLevel keeps one-shot commands quiet unless a level was configured.
func cliLogLevel(cfg *config.Config) string {
	if cfg.LogLevel == "" {
		return "warn"
	}
	return cfg.LogLevel
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", formatText, "output format: text, json or yaml")
	rootCmd.AddCommand(analyzeCmd)
}
