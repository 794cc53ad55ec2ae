package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"gopkg.in/yaml.v3"

	"github.com/Rorical/RoriSense/internal/models"
	"github.com/Rorical/RoriSense/ui/components"
	"github.com/Rorical/RoriSense/ui/styles"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	outputWidth   = 72
	outputBarSize = 40
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}

func writeResult(w io.Writer, result *models.AnalysisResult, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, result)
	case formatYAML:
		return writeYAML(w, result)
	}

	icon := "☹"
	if result.IsPositive() {
		icon = "☺"
	}
	panel := components.RenderResults(components.ResultsPanel{
		Icon:          icon,
		Label:         result.Sentiment,
		Tone:          result.Tone(),
		Confidence:    "Confidence: " + models.FormatPercent(result.Confidence),
		PositiveBar:   staticBar(styles.PositiveColor, result.ProbabilityPositive),
		PositiveLabel: models.FormatPercent(result.ProbabilityPositive),
		NegativeBar:   staticBar(styles.NegativeColor, result.ProbabilityNegative),
		NegativeLabel: models.FormatPercent(result.ProbabilityNegative),
		OriginalText:  result.OriginalText,
	}, outputWidth)
	_, err := fmt.Fprintln(w, panel)
	return err
}

func writeHealth(w io.Writer, url string, status *models.HealthStatus, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, status)
	case formatYAML:
		return writeYAML(w, status)
	}

	fmt.Fprintf(w, "Health URL: %s\n", url)
	fmt.Fprintf(w, "Status: %s\n", status.Status)
	fmt.Fprintf(w, "Model loaded: %s\n", yesNo(status.ModelLoaded))
	fmt.Fprintf(w, "Vectorizer loaded: %s\n", yesNo(status.VectorizerLoaded))
	if status.ModelType != nil {
		fmt.Fprintf(w, "Model type: %s\n", *status.ModelType)
	}
	if status.VectorizerType != nil {
		fmt.Fprintf(w, "Vectorizer type: %s\n", *status.VectorizerType)
	}
	return nil
}

func staticBar(color string, percent float64) string {
	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithoutPercentage(),
		progress.WithWidth(outputBarSize),
	)
	return bar.ViewAs(models.ClampPercent(percent) / 100)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
