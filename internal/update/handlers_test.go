package update

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriSense/internal/controller"
	"github.com/Rorical/RoriSense/internal/models"
)

type stubAnalyzer struct{}

func (stubAnalyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	return &models.AnalysisResult{Sentiment: "Negative", Confidence: 80, ProbabilityPositive: 20, ProbabilityNegative: 80, OriginalText: req.Text}, nil
}

// stubScreen is a minimal Screen and controller.View.
type stubScreen struct {
	ctrl          *controller.Controller
	input         string
	width, height int
	notice        string
	widgetMsgs    []tea.Msg
}

func newStubScreen(t *testing.T) *stubScreen {
	t.Helper()
	s := &stubScreen{}
	s.ctrl = controller.New(stubAnalyzer{}, s, controller.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	t.Cleanup(s.ctrl.Close)
	return s
}

func (s *stubScreen) Controller() *controller.Controller {
	return s.ctrl
}

func (s *stubScreen) Resize(width, height int) {
	s.width, s.height = width, height
}

func (s *stubScreen) SetNotice(notice string) {
	s.notice = notice
}

func (s *stubScreen) UpdateWidgets(msg tea.Msg) tea.Cmd {
	s.widgetMsgs = append(s.widgetMsgs, msg)
	return nil
}

func (s *stubScreen) InputValue() string {
	return s.input
}

func (s *stubScreen) SetInputValue(text string) {
	s.input = text
}

func (s *stubScreen) FocusInput() {}

func (s *stubScreen) SetVisible(models.Section, bool) {}

func (s *stubScreen) SetText(models.Field, string) {}

func (s *stubScreen) SetTone(models.Field, models.Tone) {}

func (s *stubScreen) SetBar(models.Bar, float64, string) tea.Cmd {
	return nil
}

func (s *stubScreen) ScrollIntoView(models.Section) {}

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var written string
	original := clipboardWrite
	clipboardWrite = func(text string) error {
		written = text
		return err
	}
	t.Cleanup(func() { clipboardWrite = original })
	return &written
}

func TestHandleUpdate_WindowSize(t *testing.T) {
	s := newStubScreen(t)
	HandleUpdate(s, DefaultKeyMap(), tea.WindowSizeMsg{Width: 120, Height: 50})
	assert.Equal(t, 120, s.width)
	assert.Equal(t, 50, s.height)
}

func TestHandleUpdate_UnconsumedKeysReachWidgets(t *testing.T) {
	s := newStubScreen(t)
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}

	HandleUpdate(s, DefaultKeyMap(), msg)

	assert.Equal(t, []tea.Msg{msg}, s.widgetMsgs)
}

func TestHandleUpdate_ControllerKeysDoNotReachWidgets(t *testing.T) {
	s := newStubScreen(t)
	s.input = "text"

	HandleUpdate(s, DefaultKeyMap(), tea.KeyMsg{Type: tea.KeyEsc})

	assert.Empty(t, s.widgetMsgs)
	assert.Equal(t, "", s.input)
}

func TestHandleUpdate_AnalysisMessagesGoToController(t *testing.T) {
	s := newStubScreen(t)
	s.input = "bad day"

	cmd := HandleUpdate(s, DefaultKeyMap(), tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	HandleUpdate(s, DefaultKeyMap(), cmd())

	assert.Equal(t, models.Results, s.ctrl.State())
	assert.Empty(t, s.widgetMsgs)
}

func TestCopyResult(t *testing.T) {
	s := newStubScreen(t)
	written := stubClipboard(t, nil)
	s.input = "bad day"
	HandleUpdate(s, DefaultKeyMap(), HandleUpdate(s, DefaultKeyMap(), tea.KeyMsg{Type: tea.KeyCtrlS})())

	cmd := HandleUpdate(s, DefaultKeyMap(), tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	HandleUpdate(s, DefaultKeyMap(), cmd())

	assert.Equal(t, "Negative (Confidence: 80%)\nPositive 20% / Negative 80%\nbad day", *written)
	assert.Equal(t, "Result copied to clipboard", s.notice)
}

func TestCopyResult_NothingToCopy(t *testing.T) {
	s := newStubScreen(t)
	written := stubClipboard(t, nil)

	cmd := HandleUpdate(s, DefaultKeyMap(), tea.KeyMsg{Type: tea.KeyCtrlY})
	HandleUpdate(s, DefaultKeyMap(), cmd())

	assert.Equal(t, "", *written)
	assert.Equal(t, "Nothing to copy", s.notice)
}

func TestCopyResult_ClipboardFailure(t *testing.T) {
	s := newStubScreen(t)
	stubClipboard(t, errors.New("no clipboard utility"))
	s.input = "bad day"
	HandleUpdate(s, DefaultKeyMap(), HandleUpdate(s, DefaultKeyMap(), tea.KeyMsg{Type: tea.KeyCtrlS})())

	HandleUpdate(s, DefaultKeyMap(), CopyResultCmd(s.ctrl.LastResult())())

	assert.Equal(t, "Copy failed: no clipboard utility", s.notice)
}

func TestHandleKeyMsg_QuitClosesController(t *testing.T) {
	s := newStubScreen(t)
	s.input = "text"

	cmd := HandleUpdate(s, DefaultKeyMap(), tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, consumed := s.ctrl.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, consumed)
}
