package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Akashdeep-Patra/dgv/internal/common"
	"github.com/Akashdeep-Patra/dgv/internal/config"
	"github.com/Akashdeep-Patra/dgv/internal/logging"
	"github.com/Akashdeep-Patra/dgv/internal/ui"
	"github.com/Akashdeep-Patra/dgv/internal/ui/components"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dialog tags.
const (
	tagConfirmDownload = "confirm-download"
	tagDownload        = "download"
	tagGoTo            = "goto"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Model is the top-level Bubbletea model that orchestrates dataset tabs.
type Model struct {
	cfg       *config.Config
	styles    ui.Styles
	keys      KeyMap
	width     int
	height    int
	active    int
	views     []common.View
	showHelp  bool
	statusMsg string
	statusErr bool
	statusExp time.Time
	dialog    *components.Dialog

	// pending holds a download awaiting confirmation.
	pending *common.DownloadMsg
}

// New creates a new application model with one view per dataset tab.
func New(cfg *config.Config, views []common.View) Model {
	return Model{
		cfg:    cfg,
		styles: ui.NewStyles(ui.ThemeByName(cfg.Theme)),
		keys:   NewKeyMap(cfg.Keys),
		views:  views,
	}
}

// Init loads every dataset.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.views))
	for _, v := range m.views {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

// Active returns the index of the active tab.
func (m Model) Active() int { return m.active }

// Update processes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Dialog has exclusive input when visible.
	if m.dialog != nil && m.dialog.Visible() {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			d, cmd := m.dialog.Update(msg)
			m.dialog = &d
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentH := m.contentHeight()
		for _, v := range m.views {
			v.SetSize(m.width, contentH)
		}
		if m.dialog != nil {
			m.dialog.SetMaxHeight(m.height)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case m.showHelp:
			if key.Matches(msg, m.keys.Back) {
				m.showHelp = false
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.broadcast(common.RefreshMsg{})
		case key.Matches(msg, m.keys.NextTab):
			m.cycleTab(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.cycleTab(-1)
			return m, nil
		case key.Matches(msg, m.keys.GoTo):
			if len(m.views) > 0 {
				d := components.NewInputDialog(m.styles, "Go to row", "row number", tagGoTo)
				m.dialog = &d
			}
			return m, nil
		}
		for i, b := range m.keys.Tabs {
			if key.Matches(msg, b) {
				m.switchTo(i)
				return m, nil
			}
		}
		// Keys not handled globally are forwarded to the active view below.

	case common.RefreshMsg:
		return m, m.broadcast(msg)

	case common.ItemsLoadedMsg:
		if msg.Tab >= 0 && msg.Tab < len(m.views) {
			updated, cmd := m.views[msg.Tab].Update(msg)
			m.views[msg.Tab] = updated
			return m, cmd
		}
		return m, nil

	case common.ErrMsg:
		m.statusMsg = msg.Err.Error()
		m.statusErr = true
		m.statusExp = time.Now().Add(5 * time.Second)
		return m, nil

	case common.InfoMsg:
		m.statusMsg = msg.Text
		m.statusErr = false
		m.statusExp = time.Now().Add(3 * time.Second)
		return m, nil

	case common.SwitchTabMsg:
		m.switchTo(msg.Index)
		return m, nil

	case common.DownloadMsg:
		if m.cfg.ConfirmDownload {
			m.pending = &msg
			d := components.NewConfirmDialog(m.styles, "Download",
				fmt.Sprintf("Download %d items from %s?", msg.Count, msg.Dataset), tagConfirmDownload)
			m.dialog = &d
			return m, nil
		}
		cmd := m.showDownload(msg)
		return m, cmd

	case components.CopyRequestMsg:
		return m, copyCmd(msg.Text)

	case components.DialogResult:
		m.dialog = nil
		cmd := m.handleDialog(msg)
		return m, cmd
	}

	// Forward unhandled messages to the active view.
	if m.active < len(m.views) {
		updated, cmd := m.views[m.active].Update(msg)
		m.views[m.active] = updated
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleDialog(res components.DialogResult) tea.Cmd {
	switch res.Tag {
	case tagConfirmDownload:
		pending := m.pending
		m.pending = nil
		if res.Confirmed && pending != nil {
			return m.showDownload(*pending)
		}
	case tagGoTo:
		if !res.Confirmed || strings.TrimSpace(res.Value) == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(res.Value))
		if err != nil {
			return common.CmdErr(fmt.Errorf("not a row number: %q", res.Value))
		}
		if m.active < len(m.views) {
			updated, cmd := m.views[m.active].Update(common.GoToRowMsg{Row: n - 1})
			m.views[m.active] = updated
			return cmd
		}
	}
	return nil
}

// showDownload presents the payload and optionally copies it.
func (m *Model) showDownload(msg common.DownloadMsg) tea.Cmd {
	logging.For("app").Info("present download", "dataset", msg.Dataset, "items", msg.Count)
	d := components.NewNoticeDialog(m.styles, fmt.Sprintf("%s · %d items", msg.Dataset, msg.Count),
		msg.Payload, tagDownload, m.keys.Copy)
	d.SetMaxHeight(m.height)
	m.dialog = &d
	if m.cfg.CopyOnDownload {
		return copyCmd(msg.Payload)
	}
	return nil
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			logging.For("app").Warn("clipboard write failed", "err", err)
			return common.ErrMsg{Err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return common.InfoMsg{Text: "Copied to clipboard"}
	}
}

// broadcast sends msg to every view; each decides whether it applies.
func (m Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.views))
	for i, v := range m.views {
		updated, cmd := v.Update(msg)
		m.views[i] = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View renders the entire UI. It performs no I/O.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showHelp {
		sections := components.GlobalHelpEntries(m.cfg.Keys)
		return components.RenderHelp(m.styles, "Keyboard Shortcuts", sections, m.width, m.height)
	}

	tabBar := components.RenderTabs(m.styles, m.buildTabInfos(), m.width)

	content := ""
	var barData components.StatusBarData
	if m.active < len(m.views) {
		v := m.views[m.active]
		content = v.View()
		barData = v.Status()
		barData.Watching = m.cfg.Watch && barData.Path != ""
	} else {
		content = ui.PlaceCentre(m.width, m.contentHeight(),
			m.styles.Muted.Render("No datasets. Pass files on the command line or list sources in the config."))
	}

	contentH := m.contentHeight()
	content = lipgloss.NewStyle().Width(m.width).Height(contentH).MaxHeight(contentH).Render(content)

	if m.statusMsg != "" && time.Now().Before(m.statusExp) {
		barData.Message = m.statusMsg
		barData.IsError = m.statusErr
	}
	statusBar := components.RenderStatusBar(m.styles, barData, m.width)

	screen := lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)

	if m.dialog != nil && m.dialog.Visible() {
		screen = ui.PlaceCentre(m.width, m.height, m.dialog.View())
	}

	return screen
}

func (m Model) contentHeight() int {
	return max(1, m.height-components.TabBarRows-1)
}

func (m *Model) cycleTab(delta int) {
	n := len(m.views)
	if n == 0 {
		return
	}
	m.active = (m.active + delta + n) % n
}

// switchTo changes the active tab. Views keep their selection across switches.
func (m *Model) switchTo(tab int) {
	if tab >= 0 && tab < len(m.views) {
		m.active = tab
	}
}

// handleMouse processes mouse events: tab clicks, scroll wheel, and click-through.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		// Scroll wheel in tab bar area cycles tabs.
		if msg.Y < components.TabBarRows {
			if msg.Button == tea.MouseButtonWheelUp {
				m.cycleTab(-1)
			} else {
				m.cycleTab(1)
			}
			return m, nil
		}

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		if msg.Y < components.TabBarRows {
			if tab := components.TabAt(m.buildTabInfos(), m.width, msg.X); tab >= 0 {
				m.switchTo(tab)
			}
			return m, nil
		}

	default:
		return m, nil
	}

	// Adjust Y to be relative to the content area, then forward.
	msg.Y -= components.TabBarRows
	if m.active < len(m.views) {
		updated, cmd := m.views[m.active].Update(msg)
		m.views[m.active] = updated
		return m, cmd
	}
	return m, nil
}

func (m Model) buildTabInfos() []components.TabInfo {
	infos := make([]components.TabInfo, len(m.views))
	for i, v := range m.views {
		infos[i] = components.TabInfo{
			Name:     v.Title(),
			Selected: v.Status().Selected,
			Active:   i == m.active,
		}
	}
	return infos
}
