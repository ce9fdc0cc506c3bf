package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/andareed/astrodash/clipboard"
	"github.com/andareed/astrodash/dashboard"
	"github.com/andareed/astrodash/dialogs"
	"github.com/andareed/astrodash/logging"
)

const (
	clockLayout       = "15:04:05"
	defaultExportName = "astrodash-export.csv"
)

type model struct {
	clock    clockwork.Clock
	location string
	dash     *dashboard.Model
	data     dataState
	ui       uiState

	viewport     viewport.Model
	spinner      spinner.Model
	activeDialog dialogs.Dialog

	ready          bool
	terminalWidth  int
	terminalHeight int
	cursor         int // index into data.visible, -1 when empty
}

func newModel(opts options, clock clockwork.Clock) *model {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	m := &model{
		clock:    clock,
		location: opts.location,
		dash:     dashboard.New(clock),
		data:     dataState{columns: recordColumns()},
		viewport: viewport.New(0, 0),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(loadingStyle.Padding(0))),
		cursor:   -1,
	}
	m.ui.clockLabel = clock.Now().Format(clockLayout)
	m.dash.SelectPhase(opts.phase.bucket())
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("astrodash: Initialised, waiting for records")
	return m.spinner.Tick
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		m.refreshView("resize", false)
		return m, nil

	case recordsLoadedMsg:
		m.dash.SetRecords(msg.records)
		logging.Infof("Loaded %d records, glyph %s", len(msg.records), m.dash.CurrentGlyph())
		m.refreshView("records-loaded", true)
		return m, nil

	case clockTickMsg:
		m.ui.clockLabel = msg.now.Format(clockLayout)
		return m, nil

	case spinner.TickMsg:
		if !m.dash.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil

	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		return m, m.exportTo(msg.Path)

	case dialogs.ExportCanceledMsg:
		m.closeDialog()
		return m, nil

	case tea.KeyMsg:
		if m.activeDialog != nil && m.activeDialog.IsVisible() {
			return m.updateDialog(msg)
		}
		return m.updateKey(msg)
	}

	return m, nil
}

func (m *model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.activeDialog, cmd = m.activeDialog.Update(msg)
	if !m.activeDialog.IsVisible() {
		m.closeDialog()
	}
	return m, cmd
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	d.Show()
	return d.Focus()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		logging.Infof("astrodash: quit requested")
		return m, tea.Quit
	case key.Matches(msg, Keys.ViewDashboard):
		m.navigate(dashboard.ViewDashboard)
	case key.Matches(msg, Keys.ViewSearch):
		m.navigate(dashboard.ViewSearch)
	case key.Matches(msg, Keys.ViewAbout):
		m.navigate(dashboard.ViewAbout)
	case key.Matches(msg, Keys.NextView):
		m.dash.NextView()
		m.refreshView("next-view", false)
	case key.Matches(msg, Keys.EditSearch):
		m.enterCommandMode(CmdSearch)
	case key.Matches(msg, Keys.JumpToRow):
		m.enterCommandMode(CmdJump)
	case key.Matches(msg, Keys.Submit):
		m.submitSearch()
	case key.Matches(msg, Keys.BucketDown):
		m.nudgeSlider(-bucketStep)
	case key.Matches(msg, Keys.BucketUp):
		m.nudgeSlider(bucketStep)
	case key.Matches(msg, Keys.SliderDown):
		m.nudgeSlider(-sliderStep)
	case key.Matches(msg, Keys.SliderUp):
		m.nudgeSlider(sliderStep)
	case key.Matches(msg, Keys.PhasePrev):
		m.cyclePhase(-1)
	case key.Matches(msg, Keys.PhaseNext):
		m.cyclePhase(1)
	case key.Matches(msg, Keys.ClearFilters):
		m.clearFilters()
	case key.Matches(msg, Keys.RowDown):
		m.moveCursor(1)
	case key.Matches(msg, Keys.RowUp):
		m.moveCursor(-1)
	case key.Matches(msg, Keys.PageDown):
		m.moveCursor(m.pageSize())
	case key.Matches(msg, Keys.PageUp):
		m.moveCursor(-m.pageSize())
	case key.Matches(msg, Keys.FirstRow):
		m.jumpToStart()
	case key.Matches(msg, Keys.LastRow):
		m.jumpToEnd()
	case key.Matches(msg, Keys.CopyRow):
		return m, m.copyCurrentRow()
	case key.Matches(msg, Keys.ExportToFile):
		return m, m.openDialog(dialogs.NewExportDialog(defaultExportName, len(m.data.visible)))
	case key.Matches(msg, Keys.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog(Keys.Legend()))
	default:
		return m, nil
	}

	m.syncViewport()
	return m, nil
}

func (m *model) navigate(v dashboard.View) {
	logging.Debugf("Navigate %s -> %s", m.dash.Active(), v)
	m.dash.Navigate(v)
	m.refreshView("navigate", false)
}

// refreshView re-reads the filtered records from the dashboard model and
// re-lays out the table. resetCursor puts the cursor back on the first row.
func (m *model) refreshView(reason string, resetCursor bool) {
	m.data.visible = m.dash.Filtered()
	n := len(m.data.visible)
	switch {
	case n == 0:
		m.cursor = -1
	case resetCursor || m.cursor < 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	}
	logging.Debugf("refreshView(%s): %d rows, cursor %d", reason, n, m.cursor)

	if !m.ready {
		return
	}
	m.layout()
	m.syncViewport()
}

// syncViewport re-renders the table and scrolls so the cursor row is shown.
func (m *model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTable())
	if m.cursor < 0 {
		m.viewport.GotoTop()
		return
	}
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
	m.ui.visibleStart = m.viewport.YOffset
	m.ui.visibleEnd = min(len(m.data.visible), m.viewport.YOffset+m.viewport.Height) - 1
}

func (m *model) copyCurrentRow() tea.Cmd {
	r, ok := m.data.current(m.cursor)
	if !ok {
		return m.startNotice("No row selected", "warn", noticeDuration)
	}
	method, err := clipboard.Copy(newRecordRow(r).String())
	if err != nil {
		logging.Errorf("copy row %s: %v", r.Date, err)
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Copied %s (%s)", r.Date, method), "success", noticeDuration)
}

func (m *model) exportTo(path string) tea.Cmd {
	req := exportRequest{
		Path:       path,
		At:         m.clock.Now(),
		SearchTerm: m.dash.SearchTerm(),
		Bucket:     m.dash.Bucket(),
		Records:    append(m.data.visible[:0:0], m.data.visible...),
	}
	if err := ExportRecords(req); err != nil {
		logging.Errorf("export %s: %v", path, err)
		return m.startNotice("Export failed: "+err.Error(), "error", noticeDuration)
	}
	logging.Infof("Exported %d records to %s", len(req.Records), path)
	noun := "records"
	if len(req.Records) == 1 {
		noun = "record"
	}
	return m.startNotice(fmt.Sprintf("Exported %d %s to %s", len(req.Records), noun, strings.TrimSpace(path)), "success", noticeDuration)
}
