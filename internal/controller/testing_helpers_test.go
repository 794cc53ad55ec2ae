package controller

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriSense/internal/client"
	"github.com/Rorical/RoriSense/internal/models"
)

type barState struct {
	Percent float64
	Label   string
}

// fakeView records what the controller binds.
type fakeView struct {
	input    string
	focused  int
	visible  map[models.Section]bool
	texts    map[models.Field]string
	tones    map[models.Field]models.Tone
	bars     map[models.Bar][]barState
	scrolled []models.Section
}

func newFakeView() *fakeView {
	return &fakeView{
		visible: map[models.Section]bool{},
		texts:   map[models.Field]string{},
		tones:   map[models.Field]models.Tone{},
		bars:    map[models.Bar][]barState{},
	}
}

func (v *fakeView) InputValue() string {
	return v.input
}

func (v *fakeView) SetInputValue(text string) {
	v.input = text
}

func (v *fakeView) FocusInput() {
	v.focused++
}

func (v *fakeView) ScrollIntoView(s models.Section) {
	v.scrolled = append(v.scrolled, s)
}

func (v *fakeView) SetVisible(s models.Section, visible bool) {
	v.visible[s] = visible
}

func (v *fakeView) SetText(f models.Field, text string) {
	v.texts[f] = text
}

func (v *fakeView) SetTone(f models.Field, tone models.Tone) {
	v.tones[f] = tone
}

func (v *fakeView) SetBar(b models.Bar, percent float64, label string) tea.Cmd {
	v.bars[b] = append(v.bars[b], barState{Percent: percent, Label: label})
	return nil
}

func (v *fakeView) lastBar(b models.Bar) barState {
	history := v.bars[b]
	if len(history) == 0 {
		return barState{}
	}
	return history[len(history)-1]
}

func (v *fakeView) visibleSections() []models.Section {
	var out []models.Section
	for _, s := range models.Sections {
		if v.visible[s] {
			out = append(out, s)
		}
	}
	return out
}

func (v *fakeView) clone() *fakeView {
	c := &fakeView{
		input:    v.input,
		focused:  v.focused,
		visible:  maps.Clone(v.visible),
		texts:    maps.Clone(v.texts),
		tones:    maps.Clone(v.tones),
		bars:     map[models.Bar][]barState{},
		scrolled: append([]models.Section(nil), v.scrolled...),
	}
	for k, h := range v.bars {
		c.bars[k] = append([]barState(nil), h...)
	}
	return c
}

// fakeAnalyzer returns a canned answer and counts calls.
type fakeAnalyzer struct {
	mu       sync.Mutex
	calls    []models.AnalysisRequest
	result   *models.AnalysisResult
	err      error
	panicVal any
}

func (a *fakeAnalyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	a.mu.Lock()
	a.calls = append(a.calls, req)
	a.mu.Unlock()
	if a.panicVal != nil {
		panic(a.panicVal)
	}
	return a.result, a.err
}

func (a *fakeAnalyzer) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.calls)
}

func newTestController(t *testing.T, analyzer client.Analyzer) (*Controller, *fakeView) {
	t.Helper()
	view := newFakeView()
	c := New(analyzer, view,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithFillDelay(time.Millisecond),
	)
	t.Cleanup(c.Close)
	return c, view
}

// drain runs cmd and every command batched under it, returning the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// settle feeds cmd's messages back into the controller until nothing is left.
func settle(c *Controller, cmd tea.Cmd) {
	pending := drain(cmd)
	for len(pending) > 0 {
		msg := pending[0]
		pending = pending[1:]
		pending = append(pending, drain(c.Update(msg))...)
	}
}
