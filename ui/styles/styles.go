package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriSense/internal/models"
)

var (
	positiveColor = lipgloss.Color("42")
	negativeColor = lipgloss.Color("203")
	accentColor   = lipgloss.Color("62")
	mutedColor    = lipgloss.Color("241")
)

// PositiveColor and NegativeColor fill the probability bars.
const (
	PositiveColor = "#43A047"
	NegativeColor = "#E53935"
)

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		Padding(0, 1)
}

func InputStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Width(max(width-4, 10))
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(mutedColor).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func PanelStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1).
		Width(max(width-4, 10))
}

func ErrorPanelStyle(width int) lipgloss.Style {
	return PanelStyle(width).BorderForeground(negativeColor)
}

func ErrorTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(negativeColor).Bold(true)
}

func LoadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(accentColor).Padding(0, 2)
}

// ToneStyle colours the sentiment icon and label.
func ToneStyle(tone models.Tone) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch tone {
	case models.TonePositive:
		return style.Foreground(positiveColor)
	case models.ToneNegative:
		return style.Foreground(negativeColor)
	}
	return style
}

func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(mutedColor)
}

func OriginalTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(accentColor).
		Padding(0, 1)
}

func BarLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Width(10)
}
