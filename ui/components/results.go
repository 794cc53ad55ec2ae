package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriSense/internal/models"
	"github.com/Rorical/RoriSense/ui/styles"
)

// ResultsPanel is everything the results section shows. Bars arrive
// rendered so the caller decides how they animate.
type ResultsPanel struct {
	Icon          string
	Label         string
	Tone          models.Tone
	Confidence    string
	PositiveBar   string
	PositiveLabel string
	NegativeBar   string
	NegativeLabel string
	OriginalText  string
}

func RenderResults(p ResultsPanel, width int) string {
	var b strings.Builder

	tone := styles.ToneStyle(p.Tone)
	b.WriteString(tone.Render(p.Icon + " " + p.Label))
	b.WriteString("  ")
	b.WriteString(styles.MutedStyle().Render(p.Confidence))
	b.WriteString("\n\n")

	label := styles.BarLabelStyle()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render("Positive"), p.PositiveBar, " ", p.PositiveLabel))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render("Negative"), p.NegativeBar, " ", p.NegativeLabel))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedStyle().Render("Analyzed text"))
	b.WriteString("\n")
	b.WriteString(styles.OriginalTextStyle().Width(max(width-10, 10)).Render(p.OriginalText))

	return styles.PanelStyle(width).Render(b.String())
}
