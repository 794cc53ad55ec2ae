package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriSense/internal/controller"
	"github.com/Rorical/RoriSense/internal/models"
	"github.com/Rorical/RoriSense/internal/update"
	"github.com/Rorical/RoriSense/ui/components"
	"github.com/Rorical/RoriSense/ui/styles"
)

const (
	MinInputHeight = 3
	MaxInputHeight = 12
	inputCharLimit = 5000
	defaultWidth   = 80
	defaultHeight  = 24
	maxBarWidth    = 50
)

// AppModel is the terminal rendering of the analysis screen. It implements
// controller.View; the controller decides what is shown and AppModel only
// keeps and draws it.
type AppModel struct {
	controller *controller.Controller
	keys       update.KeyMap

	input    textarea.Model
	spinner  spinner.Model
	bars     map[models.Bar]*progress.Model
	barLabel map[models.Bar]string
	viewport viewport.Model
	help     help.Model

	visible map[models.Section]bool
	texts   map[models.Field]string
	tones   map[models.Field]models.Tone

	// offsets holds the first body line of each visible section.
	offsets  map[models.Section]int
	scrollTo *models.Section

	target string
	notice string
	width  int
	height int
}

// NewAppModel builds the model; Bind must be called before it runs.
func NewAppModel(target string) *AppModel {
	ta := textarea.New()
	ta.Placeholder = "Type or paste text to analyze..."
	ta.ShowLineNumbers = false
	ta.CharLimit = inputCharLimit
	ta.SetHeight(MinInputHeight)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.LoadingStyle()

	m := &AppModel{
		keys:     update.DefaultKeyMap(),
		input:    ta,
		spinner:  sp,
		bars:     map[models.Bar]*progress.Model{},
		barLabel: map[models.Bar]string{},
		viewport: viewport.New(defaultWidth, defaultHeight),
		help:     help.New(),
		visible:  map[models.Section]bool{},
		texts:    map[models.Field]string{},
		tones:    map[models.Field]models.Tone{},
		offsets:  map[models.Section]int{},
		target:   target,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.resetBar(models.BarPositive)
	m.resetBar(models.BarNegative)
	m.layout()
	return m
}

// Bind attaches the controller driving this model.
func (m *AppModel) Bind(c *controller.Controller) {
	m.controller = c
}

func (m *AppModel) Controller() *controller.Controller {
	return m.controller
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := update.HandleUpdate(m, m.keys, msg)
	m.refreshBody()
	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle().Render("RoriSense · sentiment analysis"))
	b.WriteString("\n")
	b.WriteString(components.RenderInput(m.input.View(), m.width))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.helpBindings()))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.statusText(), m.target, m.width))

	return b.String()
}

// Resize implements update.Screen.
func (m *AppModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.layout()
}

// SetNotice implements update.Screen.
func (m *AppModel) SetNotice(notice string) {
	m.notice = notice
}

// UpdateWidgets implements update.Screen.
func (m *AppModel) UpdateWidgets(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.fitInput()

	m.spinner, cmd = m.spinner.Update(msg)
	cmds = append(cmds, cmd)

	for _, bar := range m.bars {
		updated, cmd := bar.Update(msg)
		if pm, ok := updated.(progress.Model); ok {
			*bar = pm
		}
		cmds = append(cmds, cmd)
	}

	// Keys belong to the input; the output pane only scrolls with the mouse.
	if _, ok := msg.(tea.MouseMsg); ok {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

func (m *AppModel) InputValue() string {
	return m.input.Value()
}

func (m *AppModel) SetInputValue(text string) {
	m.input.SetValue(text)
	m.fitInput()
}

func (m *AppModel) FocusInput() {
	m.input.Focus()
}

func (m *AppModel) SetVisible(section models.Section, visible bool) {
	m.visible[section] = visible
}

func (m *AppModel) SetText(field models.Field, text string) {
	m.texts[field] = text
}

func (m *AppModel) SetTone(field models.Field, tone models.Tone) {
	m.tones[field] = tone
}

// SetBar moves a bar. Zero snaps the bar back instantly; any other value
// animates towards it.
func (m *AppModel) SetBar(bar models.Bar, percent float64, label string) tea.Cmd {
	m.barLabel[bar] = label
	if percent <= 0 {
		m.resetBar(bar)
		return nil
	}
	return m.bars[bar].SetPercent(percent / 100)
}

func (m *AppModel) ScrollIntoView(section models.Section) {
	m.scrollTo = &section
}

func (m *AppModel) resetBar(bar models.Bar) {
	color := styles.PositiveColor
	if bar == models.BarNegative {
		color = styles.NegativeColor
	}
	pm := progress.New(
		progress.WithSolidFill(color),
		progress.WithoutPercentage(),
		progress.WithWidth(m.barWidth()),
	)
	m.bars[bar] = &pm
}

func (m *AppModel) barWidth() int {
	return min(max(m.width-30, 10), maxBarWidth)
}

// fitInput grows the input with its content up to MaxInputHeight.
func (m *AppModel) fitInput() {
	height := min(max(m.input.LineCount(), MinInputHeight), MaxInputHeight)
	if height != m.input.Height() {
		m.input.SetHeight(height)
		m.layout()
	}
}

func (m *AppModel) layout() {
	m.input.SetWidth(max(m.width-8, 10))
	for _, bar := range m.bars {
		bar.Width = m.barWidth()
	}

	// title, input border, help, blank line and status bar
	chrome := 1 + m.input.Height() + 2 + 1 + 1 + 1 + 1
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chrome, 3)
}

func (m *AppModel) refreshBody() {
	var sections []string
	line := 0
	clear(m.offsets)

	for _, section := range models.Sections {
		if !m.visible[section] {
			continue
		}
		rendered := m.renderSection(section)
		m.offsets[section] = line
		line += lipgloss.Height(rendered) + 1
		sections = append(sections, rendered)
	}

	m.viewport.SetContent(strings.Join(sections, "\n\n"))

	if m.scrollTo != nil {
		m.viewport.SetYOffset(m.offsets[*m.scrollTo])
		m.scrollTo = nil
	}
}

func (m *AppModel) renderSection(section models.Section) string {
	switch section {
	case models.SectionLoading:
		return components.RenderLoading(m.spinner.View())
	case models.SectionError:
		return components.RenderError(m.texts[models.FieldErrorTitle], m.texts[models.FieldErrorMessage], m.width)
	case models.SectionResults:
		return components.RenderResults(components.ResultsPanel{
			Icon:          m.texts[models.FieldSentimentIcon],
			Label:         m.texts[models.FieldSentimentLabel],
			Tone:          m.tones[models.FieldSentimentLabel],
			Confidence:    m.texts[models.FieldConfidence],
			PositiveBar:   m.bars[models.BarPositive].View(),
			PositiveLabel: m.barLabel[models.BarPositive],
			NegativeBar:   m.bars[models.BarNegative].View(),
			NegativeLabel: m.barLabel[models.BarNegative],
			OriginalText:  m.texts[models.FieldOriginalText],
		}, m.width)
	}
	return ""
}

func (m *AppModel) statusText() string {
	var status string
	switch m.controller.State() {
	case models.Idle:
		status = "Ready"
	case models.Loading:
		status = "Analyzing"
	case models.Results:
		status = "Done"
	case models.Error:
		status = "Error"
	}
	if m.notice != "" {
		status += " · " + m.notice
	}
	return status
}

func (m *AppModel) helpBindings() []key.Binding {
	bindings := m.controller.KeyMap().ShortHelp()
	return append(bindings, m.keys.Copy, m.keys.Quit)
}
