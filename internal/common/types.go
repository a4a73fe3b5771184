package common

import (
	"github.com/Akashdeep-Patra/dgv/internal/grid"
	"github.com/Akashdeep-Patra/dgv/internal/ui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// ── Custom messages ─────────────────────────────────────────────────────────

// RefreshMsg signals views to reload data. An empty Paths reloads every
// dataset; otherwise only datasets backed by one of the paths reload.
type RefreshMsg struct{ Paths []string }

// ItemsLoadedMsg carries a freshly read dataset to the view on tab Tab.
type ItemsLoadedMsg struct {
	Tab   int
	Items []grid.Item
	Err   error
}

// GoToRowMsg moves the active grid's cursor to Row (0-based).
type GoToRowMsg struct{ Row int }

// DownloadMsg carries the payload produced by the bulk download action.
type DownloadMsg struct {
	Dataset string
	Count   int
	Payload string
}

// ErrMsg carries an error to be displayed.
type ErrMsg struct{ Err error }

// InfoMsg carries an informational message.
type InfoMsg struct{ Text string }

// SwitchTabMsg requests a switch to the dataset tab at Index.
type SwitchTabMsg struct{ Index int }

// CmdRefresh returns a RefreshMsg (use as return from tea.Cmd).
func CmdRefresh() tea.Msg { return RefreshMsg{} }

// CmdErr creates a tea.Cmd that sends an ErrMsg.
func CmdErr(err error) tea.Cmd {
	return func() tea.Msg { return ErrMsg{Err: err} }
}

// CmdInfo creates a tea.Cmd that sends an InfoMsg.
func CmdInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}

// ── View interface ──────────────────────────────────────────────────────────

// View is the interface every tab view must implement.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
	ShortHelp() []components.HelpEntry

	// Title is the tab label.
	Title() string
	// Status describes the view for the bottom status bar.
	Status() components.StatusBarData
}
