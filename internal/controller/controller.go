// Package controller drives the analysis screen: it validates input, guards
// the single in-flight request and maps each outcome onto exactly one of the
// loading, results and error sections of a View.
//
// All methods run on the bubbletea update loop. The only work done off that
// loop is the remote call inside the command returned by Submit, which
// touches no controller state.
package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriSense/internal/client"
	"github.com/Rorical/RoriSense/internal/models"
)

// FillDelay separates the bar reset from the bar fill so the fill animates.
const FillDelay = 100 * time.Millisecond

// View is the rendering surface the controller binds to.
type View interface {
	InputValue() string
	SetInputValue(text string)
	FocusInput()
	SetVisible(section models.Section, visible bool)
	SetText(field models.Field, text string)
	SetTone(field models.Field, tone models.Tone)
	// SetBar sets a bar's width (0-100) and label. The returned command, if
	// any, drives the bar's transition.
	SetBar(bar models.Bar, percent float64, label string) tea.Cmd
	ScrollIntoView(section models.Section)
}

// Controller owns the analysis screen state.
type Controller struct {
	analyzer  client.Analyzer
	view      View
	keys      KeyMap
	logger    *slog.Logger
	fillDelay time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	state     models.ViewState
	analyzing bool
	// generation changes on every submission and on Clear; completions and
	// bar fills from an older generation are dropped.
	generation uint64
	lastResult *models.AnalysisResult
	closed     bool
}

type Option func(*Controller)

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func WithFillDelay(d time.Duration) Option {
	return func(c *Controller) { c.fillDelay = d }
}

func WithKeyMap(km KeyMap) Option {
	return func(c *Controller) { c.keys = km }
}

// New binds a controller to view. The view starts Idle.
func New(analyzer client.Analyzer, view View, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		analyzer:  analyzer,
		view:      view,
		keys:      DefaultKeyMap(),
		logger:    slog.Default(),
		fillDelay: FillDelay,
		ctx:       ctx,
		cancel:    cancel,
		state:     models.Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() models.ViewState {
	return c.state
}

func (c *Controller) Analyzing() bool {
	return c.analyzing
}

// LastResult is the most recently rendered result, nil when none is shown.
func (c *Controller) LastResult() *models.AnalysisResult {
	if c.state != models.Results {
		return nil
	}
	return c.lastResult
}

func (c *Controller) KeyMap() KeyMap {
	return c.keys
}

// Submit analyzes the current input. While a request is in flight it does
// nothing. Empty input shows a validation error without touching the
// network. Otherwise the view switches to loading and the returned command
// performs the request.
//
// The in-flight check runs before validation, so an empty submission made
// while a request is outstanding is dropped rather than shown as an error.
func (c *Controller) Submit() tea.Cmd {
	if c.analyzing {
		c.logger.Debug("[Controller] Submission dropped, request in flight")
		return nil
	}

	text, err := Validate(c.view.InputValue())
	if err != nil {
		c.ShowError(err.Error())
		return nil
	}

	c.analyzing = true
	c.generation++
	c.ShowLoading()

	req := models.NewAnalysisRequest(text)
	c.logger.Info("[Controller] Submitting analysis",
		slog.String("request_id", req.ID),
		slog.Int("text_length", len(text)))

	return analyzeCmd(c.ctx, c.analyzer, req, c.generation)
}

func analyzeCmd(ctx context.Context, analyzer client.Analyzer, req models.AnalysisRequest, generation uint64) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = AnalysisDoneMsg{
					RequestID:  req.ID,
					Generation: generation,
					Err: &client.RequestError{
						Message: client.RetryMessage,
						Err:     fmt.Errorf("analyzer panicked: %v", r),
					},
				}
			}
		}()

		result, err := analyzer.Analyze(ctx, req)
		if err == nil && result == nil {
			err = &client.RequestError{Message: client.RetryMessage, Err: fmt.Errorf("analyzer returned no result")}
		}
		return AnalysisDoneMsg{RequestID: req.ID, Generation: generation, Result: result, Err: err}
	}
}

// Update handles the controller's own messages and ignores everything else.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case AnalysisDoneMsg:
		return c.complete(msg)
	case BarFillMsg:
		return c.fillBars(msg)
	}
	return nil
}

func (c *Controller) complete(msg AnalysisDoneMsg) tea.Cmd {
	defer func() { c.analyzing = false }()

	log := c.logger.With(slog.String("request_id", msg.RequestID))
	if msg.Generation != c.generation {
		log.Debug("[Controller] Discarding response for a cleared submission")
		return nil
	}

	if msg.Err != nil {
		log.Warn("[Controller] Analysis failed", slog.String("error", msg.Err.Error()))
		c.ShowError(client.MessageFor(msg.Err))
		return nil
	}

	log.Info("[Controller] Analysis complete", slog.String("sentiment", msg.Result.Sentiment))
	return c.RenderResults(*msg.Result)
}

// Close drops key subscriptions and abandons any outstanding request.
func (c *Controller) Close() {
	c.closed = true
	c.cancel()
}

// Validate trims text and rejects it when nothing is left.
func Validate(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyInput
	}
	return trimmed, nil
}
