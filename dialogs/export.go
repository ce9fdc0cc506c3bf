package dialogs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/astrodash/logging"
)

// --- Messages ---------------------------------------------------------------

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
)

// Export asks where the current results should be written.
type Export struct {
	input   textinput.Model
	visible bool
	count   int // records that will be written, shown in the title
	errMsg  string
}

func (d Export) Init() tea.Cmd { return d.input.Focus() }

func NewExportDialog(defaultName string, count int) *Export {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Export as: "
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return &Export{input: ti, visible: true, count: count}
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := strings.TrimSpace(d.input.Value())
			if path == "" {
				path = d.input.Placeholder
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".csv", ".json":
			default:
				d.errMsg = "file name must end in .csv or .json"
				return d, nil
			}
			logging.Debugf("ExportDialog: confirmed %s", path)
			return d, func() tea.Msg { return ExportConfirmedMsg{Path: path} }
		case "esc":
			logging.Debug("ExportDialog: cancelled")
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	d.errMsg = ""
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d Export) View() string {
	if !d.visible {
		return ""
	}
	title := lipgloss.NewStyle().Bold(true).
		Render(fmt.Sprintf("Export %d result(s)", d.count))

	help := lipgloss.NewStyle().
		Faint(true).
		Render("enter to export (.csv or .json) • esc to cancel")

	parts := []string{title, "", d.input.View(), ""}
	if d.errMsg != "" {
		parts = append(parts, errorText.Render(d.errMsg), "")
	}
	parts = append(parts, help)
	return dialogBox.Render(strings.Join(parts, "\n"))
}

func (d *Export) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
