package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriSense/internal/controller"
)

// Screen is the part of the terminal model the update loop drives.
type Screen interface {
	Controller() *controller.Controller
	Resize(width, height int)
	SetNotice(notice string)
	// UpdateWidgets forwards msg to the embedded bubbles components.
	UpdateWidgets(msg tea.Msg) tea.Cmd
}

// HandleUpdate routes one message. Controller messages go to the controller;
// everything it does not consume reaches the widgets.
func HandleUpdate(s Screen, keys KeyMap, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(s, keys, msg)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(s, msg)
		return nil
	case controller.AnalysisDoneMsg, controller.BarFillMsg:
		return s.Controller().Update(msg)
	case CopiedMsg:
		HandleCopiedMsg(s, msg)
		return nil
	}
	return s.UpdateWidgets(msg)
}
