package update

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriSense/internal/models"
)

// KeyMap holds the keys handled outside the controller.
type KeyMap struct {
	Quit key.Binding
	Copy key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy result"),
		),
	}
}

// CopiedMsg reports the outcome of a clipboard write.
type CopiedMsg struct {
	Err error
}

var errNothingToCopy = errors.New("nothing to copy")

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// HandleKeyMsg gives app keys priority, then the controller, then the input.
func HandleKeyMsg(s Screen, keys KeyMap, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		s.Controller().Close()
		return tea.Quit
	case key.Matches(msg, keys.Copy):
		return CopyResultCmd(s.Controller().LastResult())
	}

	s.SetNotice("")
	if cmd, consumed := s.Controller().HandleKey(msg); consumed {
		return cmd
	}
	return s.UpdateWidgets(msg)
}

func HandleWindowSizeMsg(s Screen, msg tea.WindowSizeMsg) {
	s.Resize(msg.Width, msg.Height)
}

func HandleCopiedMsg(s Screen, msg CopiedMsg) {
	switch {
	case errors.Is(msg.Err, errNothingToCopy):
		s.SetNotice("Nothing to copy")
	case msg.Err != nil:
		s.SetNotice("Copy failed: " + msg.Err.Error())
	default:
		s.SetNotice("Result copied to clipboard")
	}
}

// CopyResultCmd writes the result summary to the system clipboard.
func CopyResultCmd(result *models.AnalysisResult) tea.Cmd {
	return func() tea.Msg {
		if result == nil {
			return CopiedMsg{Err: errNothingToCopy}
		}
		return CopiedMsg{Err: clipboardWrite(result.Summary())}
	}
}
