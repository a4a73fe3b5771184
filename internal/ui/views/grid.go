package views

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Akashdeep-Patra/dgv/internal/common"
	"github.com/Akashdeep-Patra/dgv/internal/grid"
	"github.com/Akashdeep-Patra/dgv/internal/logging"
	"github.com/Akashdeep-Patra/dgv/internal/source"
	"github.com/Akashdeep-Patra/dgv/internal/table"
	"github.com/Akashdeep-Patra/dgv/internal/ui"
	"github.com/Akashdeep-Patra/dgv/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen rows above the first body row: toolbar, top border, header and
// header separator.
const gridBodyTop = 4

// Screen rows that are not body rows: the above plus the bottom border and
// the command bar.
const gridChrome = gridBodyTop + 2

const selectAllLabel = "Select all"

const downloadLabel = "Download Selected"

// invalidator is implemented by caching services.
type invalidator interface{ Invalidate() }

// GridView shows one dataset as a selectable grid.
type GridView struct {
	tab    int
	svc    source.Service
	styles ui.Styles
	keys   GridKeyMap
	ctrl   *grid.Controller

	width  int
	height int
	cursor int
	offset int

	loaded bool
	err    error
}

// NewGridView creates the view for the dataset shown on tab.
func NewGridView(tab int, svc source.Service, styles ui.Styles, keys GridKeyMap) *GridView {
	return &GridView{
		tab:    tab,
		svc:    svc,
		styles: styles,
		keys:   keys,
		ctrl:   grid.New(nil),
	}
}

func (v *GridView) Init() tea.Cmd { return v.load() }

func (v *GridView) SetSize(w, h int) {
	v.width = w
	v.height = h
	v.scrollToCursor()
}

// Controller exposes the selection state of the grid.
func (v *GridView) Controller() *grid.Controller { return v.ctrl }

// Cursor is the highlighted row.
func (v *GridView) Cursor() int { return v.cursor }

func (v *GridView) Title() string { return v.svc.Name() }

func (v *GridView) Status() components.StatusBarData {
	return components.StatusBarData{
		Dataset:   v.svc.Name(),
		Items:     v.ctrl.Len(),
		Selection: v.ctrl.SelectionLabel(),
		Selected:  v.ctrl.Count(),
		Path:      v.svc.Path(),
	}
}

func (v *GridView) load() tea.Cmd {
	tab, svc := v.tab, v.svc
	return func() tea.Msg {
		items, err := svc.Items()
		return common.ItemsLoadedMsg{Tab: tab, Items: items, Err: err}
	}
}

func (v *GridView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg := msg.(type) {
	case common.ItemsLoadedMsg:
		if msg.Tab != v.tab {
			return v, nil
		}
		if msg.Err != nil {
			v.err = msg.Err
			logging.For("grid").Error("load dataset", "dataset", v.svc.Name(), "err", msg.Err)
			return v, common.CmdErr(fmt.Errorf("load %s: %w", v.svc.Name(), msg.Err))
		}
		v.err = nil
		v.loaded = true
		v.ctrl.SetItems(msg.Items)
		v.setCursor(v.cursor)
		logging.For("grid").Debug("dataset loaded", "dataset", v.svc.Name(), "items", len(msg.Items))
		return v, nil

	case common.RefreshMsg:
		if len(msg.Paths) > 0 {
			if !slices.Contains(msg.Paths, v.svc.Path()) {
				return v, nil
			}
			if c, ok := v.svc.(invalidator); ok {
				c.Invalidate()
			}
		}
		return v, v.load()

	case common.GoToRowMsg:
		if msg.Row < 0 || msg.Row >= v.ctrl.Len() {
			return v, common.CmdErr(fmt.Errorf("row %d out of range 1-%d", msg.Row+1, v.ctrl.Len()))
		}
		v.setCursor(msg.Row)
		return v, nil

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			v.setCursor(v.cursor - 1)
		case tea.MouseButtonWheelDown:
			v.setCursor(v.cursor + 1)
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress {
				return v, v.click(msg.X, msg.Y)
			}
		}
		return v, nil

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *GridView) updateKeys(msg tea.KeyMsg) (common.View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Down):
		v.setCursor(v.cursor + 1)
	case key.Matches(msg, v.keys.Up):
		v.setCursor(v.cursor - 1)
	case key.Matches(msg, v.keys.PageDown):
		v.setCursor(v.cursor + v.visibleRows())
	case key.Matches(msg, v.keys.PageUp):
		v.setCursor(v.cursor - v.visibleRows())
	case key.Matches(msg, v.keys.Top):
		v.setCursor(0)
	case key.Matches(msg, v.keys.Bottom):
		v.setCursor(v.ctrl.Len() - 1)
	case key.Matches(msg, v.keys.Toggle):
		return v, v.toggle(v.cursor)
	case key.Matches(msg, v.keys.ToggleAll):
		v.ctrl.ToggleAll()
	case key.Matches(msg, v.keys.Download):
		return v, v.download()
	}
	return v, nil
}

// ── Actions ─────────────────────────────────────────────────────────────────

func (v *GridView) toggle(idx int) tea.Cmd {
	if idx < 0 || idx >= v.ctrl.Len() {
		return nil
	}
	if v.ctrl.ToggleAvailable(idx) {
		return nil
	}
	it := v.ctrl.Items()[idx]
	return common.CmdInfo(fmt.Sprintf("%s is %s and cannot be selected", it.Name, it.Status))
}

func (v *GridView) download() tea.Cmd {
	payload, err := v.ctrl.Download()
	if errors.Is(err, grid.ErrDownloadDisabled) {
		if v.ctrl.Count() == 0 {
			return common.CmdErr(errors.New("nothing selected"))
		}
		return common.CmdErr(errors.New("selection includes unavailable items"))
	}
	if err != nil {
		return common.CmdErr(err)
	}
	logging.For("grid").Info("download", "dataset", v.svc.Name(), "items", v.ctrl.Count())
	msg := common.DownloadMsg{Dataset: v.svc.Name(), Count: v.ctrl.Count(), Payload: payload}
	return func() tea.Msg { return msg }
}

// click handles a press at (x, y) relative to the view.
func (v *GridView) click(x, y int) tea.Cmd {
	if y == 0 {
		_, allEnd, btnStart := v.toolbar()
		switch {
		case x < allEnd:
			v.ctrl.ToggleAll()
		case x >= btnStart:
			return v.download()
		}
		return nil
	}

	row := v.offset + y - gridBodyTop
	if y < gridBodyTop || row >= v.ctrl.Len() || y-gridBodyTop >= v.visibleRows() {
		return nil
	}
	v.setCursor(row)
	if x < v.checkboxEnd() {
		return v.toggle(row)
	}
	return nil
}

// ── Cursor & scrolling ──────────────────────────────────────────────────────

func (v *GridView) visibleRows() int {
	return max(1, v.height-gridChrome)
}

func (v *GridView) setCursor(c int) {
	v.cursor = max(0, min(c, v.ctrl.Len()-1))
	v.scrollToCursor()
}

func (v *GridView) scrollToCursor() {
	vis := v.visibleRows()
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+vis {
		v.offset = v.cursor - vis + 1
	}
	v.offset = max(0, min(v.offset, v.ctrl.Len()-vis))
}

// ── Rendering ───────────────────────────────────────────────────────────────

func (v *GridView) View() string {
	if v.width == 0 || v.height == 0 {
		return ""
	}
	muted := lipgloss.NewStyle().Foreground(v.styles.Theme.TextMuted)

	switch {
	case v.err != nil && !v.loaded:
		msg := lipgloss.NewStyle().Foreground(v.styles.Theme.Error).Render("✗ " + v.err.Error())
		return ui.PlaceCentre(v.width, v.height, msg)
	case !v.loaded:
		return ui.PlaceCentre(v.width, v.height, muted.Render("Loading "+v.svc.Name()+"…"))
	}

	bar, _, _ := v.toolbar()
	cmdBar := v.renderCommandBar()
	bodyH := v.height - 1 - lipgloss.Height(cmdBar)

	var body string
	if v.ctrl.Len() == 0 {
		body = ui.PlaceCentre(v.width, bodyH, muted.Render("No items in "+v.svc.Name()))
	} else {
		body = v.renderTable()
	}
	body = lipgloss.NewStyle().Height(bodyH).MaxHeight(bodyH).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, bar, body, cmdBar)
}

// toolbar renders the select-all control, the selection label and the
// download trigger, returning the end column of the control and the start
// column of the trigger for mouse hits.
func (v *GridView) toolbar() (line string, allEnd, btnStart int) {
	s := v.styles
	state := v.ctrl.SelectAllState()

	boxStyle := s.Checkbox
	if state == grid.Unchecked {
		boxStyle = s.CheckboxOff
	}
	control := " " + boxStyle.Render(state.String()) + " " + s.Bold.Render(selectAllLabel)
	allEnd = lipgloss.Width(control)

	labelStyle := s.Muted
	if v.ctrl.Count() > 0 {
		labelStyle = lipgloss.NewStyle().Foreground(s.Theme.Accent)
	}
	left := control + "   " + labelStyle.Render(v.ctrl.SelectionLabel())

	btnStyle := s.ButtonOff
	if v.ctrl.DownloadEnabled() {
		btnStyle = s.Button
	}
	btn := btnStyle.Render(downloadLabel) + " "
	btnStart = v.width - lipgloss.Width(btn)

	line = ui.SpaceBetween(left, btn, v.width)
	return line, allEnd, btnStart
}

// checkboxEnd is the first column right of the checkbox cell.
func (v *GridView) checkboxEnd() int {
	return 1 + lipgloss.Width(v.styles.GridCell.Render(grid.Unchecked.String()))
}

// renderRow is the styled row renderer handed to the table shell.
func (v *GridView) renderRow(_ grid.Item, idx int) table.Row {
	r := v.ctrl.Row(idx)
	boxStyle := v.styles.CheckboxOff
	switch {
	case r.Disabled && r.Checked:
		// Selected but blocking download.
		boxStyle = lipgloss.NewStyle().Foreground(v.styles.Theme.Warning).Faint(true)
	case r.Checked:
		boxStyle = v.styles.Checkbox
	}
	box := boxStyle.Render(r.Box())
	return table.Row{box, r.Name, r.Device, r.Path, r.Status.View(v.styles.StatusIndicator)}
}

func (v *GridView) renderTable() string {
	tbl := table.Build(grid.Headers, v.ctrl.Items(), v.renderRow)
	items := v.ctrl.Items()
	vis := v.visibleRows()

	out := tbl.Render(table.RenderOptions{
		Width:       v.width - 2,
		Offset:      v.offset,
		Height:      vis,
		BorderStyle: v.styles.GridBorder,
		Style: func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return v.styles.GridHeader
			case row == v.cursor:
				return v.styles.GridCursor
			case !grid.Available(items[row]):
				return v.styles.GridDisabled
			}
			return v.styles.GridCell
		},
	})

	// Align the scrollbar with the body rows.
	sb := components.RenderScrollbar(v.styles, min(vis, v.ctrl.Len()), v.ctrl.Len(), vis, v.offset)
	if sb == "" {
		return out
	}
	sb = strings.Repeat("\n", gridBodyTop-1) + sb
	return lipgloss.JoinHorizontal(lipgloss.Top, out, " ", sb)
}

func (v *GridView) renderCommandBar() string {
	t := v.styles.Theme
	sep := lipgloss.NewStyle().Foreground(t.Border).Render(" │ ")

	entries := make([]string, 0, 6)
	for _, e := range v.ShortHelp() {
		entries = append(entries, ui.RenderKeyValue(v.styles, e.Key, e.Desc))
	}
	cmdLine := " " + strings.Join(entries, sep)

	pos := ""
	if n := v.ctrl.Len(); n > 0 {
		pos = v.styles.KeyDesc.Render(fmt.Sprintf("%d/%d ", v.cursor+1, n))
	}
	return ui.SpaceBetween(cmdLine, pos, v.width)
}

func (v *GridView) ShortHelp() []components.HelpEntry {
	entries := []components.HelpEntry{{Key: "↑/↓", Desc: "nav"}}
	for _, b := range []key.Binding{v.keys.Toggle, v.keys.ToggleAll, v.keys.Download} {
		if b.Enabled() {
			h := b.Help()
			entries = append(entries, components.HelpEntry{Key: h.Key, Desc: h.Desc})
		}
	}
	return entries
}
