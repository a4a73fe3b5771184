package components

import (
	"github.com/Akashdeep-Patra/dgv/internal/ui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DialogKind specifies the type of dialog.
type DialogKind int

const (
	DialogConfirm DialogKind = iota
	DialogInput
	DialogNotice
)

const dialogWidth = 64

// noticeWidth is the body width of a notice; longer lines are wrapped.
const noticeWidth = dialogWidth - 8

// DialogResult is sent when the dialog is dismissed.
type DialogResult struct {
	Confirmed bool
	Value     string
	Tag       string // arbitrary tag to identify which dialog this was
}

// CopyRequestMsg asks for text to be placed on the clipboard.
type CopyRequestMsg struct{ Text string }

// Dialog is a modal confirmation, input or notice dialog.
type Dialog struct {
	Kind    DialogKind
	Title   string
	Message string
	Tag     string
	input   textinput.Model
	body    viewport.Model
	copyKey key.Binding
	focused int // 0 = yes/input, 1 = no
	styles  ui.Styles
	visible bool
}

// NewConfirmDialog creates a Yes/No confirmation dialog.
func NewConfirmDialog(styles ui.Styles, title, message, tag string) Dialog {
	return Dialog{
		Kind:    DialogConfirm,
		Title:   title,
		Message: message,
		Tag:     tag,
		styles:  styles,
		visible: true,
	}
}

// NewInputDialog creates a text input dialog.
func NewInputDialog(styles ui.Styles, title, placeholder, tag string) Dialog {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = dialogWidth - 10
	return Dialog{
		Kind:    DialogInput,
		Title:   title,
		Tag:     tag,
		input:   ti,
		styles:  styles,
		visible: true,
	}
}

// NewNoticeDialog creates a dismiss-only dialog presenting a scrollable body.
// copyKey, when enabled, emits a CopyRequestMsg with the body text.
func NewNoticeDialog(styles ui.Styles, title, body, tag string, copyKey key.Binding) Dialog {
	wrapped := lipgloss.NewStyle().Width(noticeWidth).Render(body)
	vp := viewport.New(noticeWidth, min(lipgloss.Height(wrapped), 12))
	vp.SetContent(wrapped)
	return Dialog{
		Kind:    DialogNotice,
		Title:   title,
		Message: body,
		Tag:     tag,
		body:    vp,
		copyKey: copyKey,
		styles:  styles,
		visible: true,
	}
}

// Visible returns whether the dialog is showing.
func (d Dialog) Visible() bool { return d.visible }

// SetMaxHeight bounds a notice body so the dialog fits in height rows.
func (d *Dialog) SetMaxHeight(height int) {
	if d.Kind != DialogNotice {
		return
	}
	d.body.Height = max(1, min(d.body.TotalLineCount(), height-10))
}

// Update handles key events for the dialog.
func (d Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if d.Kind == DialogNotice && key.Matches(keyMsg, d.copyKey) {
			text := d.Message
			return d, func() tea.Msg { return CopyRequestMsg{Text: text} }
		}

		switch keyMsg.String() {
		case "esc":
			d.visible = false
			return d, func() tea.Msg { return DialogResult{Tag: d.Tag} }

		case "enter":
			d.visible = false
			switch d.Kind {
			case DialogInput:
				return d, func() tea.Msg {
					return DialogResult{Confirmed: true, Value: d.input.Value(), Tag: d.Tag}
				}
			case DialogNotice:
				return d, func() tea.Msg { return DialogResult{Confirmed: true, Tag: d.Tag} }
			}
			return d, func() tea.Msg {
				return DialogResult{Confirmed: d.focused == 0, Tag: d.Tag}
			}

		case "tab", "left", "right", "h", "l":
			if d.Kind == DialogConfirm {
				d.focused = 1 - d.focused
			}
		}
	}

	var cmd tea.Cmd
	switch d.Kind {
	case DialogInput:
		d.input, cmd = d.input.Update(msg)
	case DialogNotice:
		d.body, cmd = d.body.Update(msg)
	}
	return d, cmd
}

// View renders the dialog.
func (d Dialog) View() string {
	if !d.visible {
		return ""
	}
	t := d.styles.Theme

	title := d.styles.DialogTitle.Render(d.Title)
	activeBtn := lipgloss.NewStyle().Foreground(t.TextInverse).Background(t.Primary).Bold(true)
	inactiveBtn := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	hint := lipgloss.NewStyle().Foreground(t.TextSubtle).Faint(true)

	var content string
	switch d.Kind {
	case DialogConfirm:
		message := lipgloss.NewStyle().Foreground(t.TextMuted).Render(d.Message)
		yes := "  Yes  "
		no := "  No   "
		if d.focused == 0 {
			yes = activeBtn.Render(yes)
			no = inactiveBtn.Render(no)
		} else {
			yes = inactiveBtn.Render(yes)
			no = activeBtn.Render(no)
		}
		buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no)
		content = title + "\n\n" + message + "\n\n" + buttons

	case DialogInput:
		content = title + "\n\n" + d.input.View()

	case DialogNotice:
		footer := activeBtn.Render("  OK  ")
		if help := d.copyKey.Help(); d.copyKey.Enabled() && help.Key != "" {
			footer += "  " + hint.Render(help.Key+" "+help.Desc)
		}
		if d.body.TotalLineCount() > d.body.Height {
			footer += "  " + hint.Render("↑/↓ scroll")
		}
		body := lipgloss.NewStyle().Foreground(t.Text).Render(d.body.View())
		content = title + "\n\n" + body + "\n\n" + footer
	}

	return d.styles.Dialog.Width(dialogWidth).Render(content)
}
