package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriSense/internal/models"
)

const (
	positiveIcon = "☺"
	negativeIcon = "☹"
)

// RenderResults shows result and schedules the bar fill.
func (c *Controller) RenderResults(result models.AnalysisResult) tea.Cmd {
	c.HideLoading()
	c.HideError()

	tone := result.Tone()
	icon := negativeIcon
	if tone == models.TonePositive {
		icon = positiveIcon
	}
	c.view.SetText(models.FieldSentimentIcon, icon)
	c.view.SetTone(models.FieldSentimentIcon, tone)
	c.view.SetText(models.FieldSentimentLabel, result.Sentiment)
	c.view.SetTone(models.FieldSentimentLabel, tone)
	c.view.SetText(models.FieldConfidence, "Confidence: "+models.FormatPercent(result.Confidence))

	cmds := []tea.Cmd{
		c.view.SetBar(models.BarPositive, 0, models.FormatPercent(0)),
		c.view.SetBar(models.BarNegative, 0, models.FormatPercent(0)),
	}
	generation := c.generation
	positive, negative := result.ProbabilityPositive, result.ProbabilityNegative
	cmds = append(cmds, tea.Tick(c.fillDelay, func(time.Time) tea.Msg {
		return BarFillMsg{Generation: generation, Positive: positive, Negative: negative}
	}))

	c.view.SetText(models.FieldOriginalText, result.OriginalText)

	c.lastResult = &result
	c.state = models.Results
	c.view.SetVisible(models.SectionResults, true)
	c.view.ScrollIntoView(models.SectionResults)

	return tea.Batch(cmds...)
}

func (c *Controller) fillBars(msg BarFillMsg) tea.Cmd {
	if msg.Generation != c.generation || c.state != models.Results {
		return nil
	}
	return tea.Batch(
		c.view.SetBar(models.BarPositive, models.ClampPercent(msg.Positive), models.FormatPercent(msg.Positive)),
		c.view.SetBar(models.BarNegative, models.ClampPercent(msg.Negative), models.FormatPercent(msg.Negative)),
	)
}

func (c *Controller) ShowLoading() {
	c.HideError()
	c.HideResults()
	c.state = models.Loading
	c.view.SetVisible(models.SectionLoading, true)
}

func (c *Controller) HideLoading() {
	c.view.SetVisible(models.SectionLoading, false)
}

// ShowError replaces whatever is visible with the error panel.
func (c *Controller) ShowError(message string) {
	c.HideLoading()
	c.HideResults()
	info := models.NewErrorInfo(message)
	c.view.SetText(models.FieldErrorTitle, info.Title)
	c.view.SetText(models.FieldErrorMessage, info.Message)
	c.state = models.Error
	c.view.SetVisible(models.SectionError, true)
}

func (c *Controller) HideError() {
	c.view.SetVisible(models.SectionError, false)
}

func (c *Controller) HideResults() {
	c.view.SetVisible(models.SectionResults, false)
}

// Clear empties the input, hides every section and refocuses the input.
// A request still in flight keeps the in-flight flag until it returns, but
// its response is discarded.
func (c *Controller) Clear() {
	c.view.SetInputValue("")
	c.HideLoading()
	c.HideError()
	c.HideResults()
	c.generation++
	c.state = models.Idle
	c.view.FocusInput()
}
