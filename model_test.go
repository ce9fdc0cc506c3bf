package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/astrodash/almanac"
	"github.com/andareed/astrodash/dashboard"
	"github.com/andareed/astrodash/dialogs"
	"github.com/andareed/astrodash/moon"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fullMoonEvening is 21:00 local on the reference full moon.
func fullMoonEvening() *clockwork.FakeClock {
	d, err := time.ParseInLocation(almanac.DateLayout, "2025-01-21", time.Local)
	if err != nil {
		panic(err)
	}
	return clockwork.NewFakeClockAt(d.Add(21 * time.Hour))
}

func newTestModel(t *testing.T) *model {
	t.Helper()
	m := newModel(defaultOptions(), fullMoonEvening())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(recordsLoadedMsg{records: almanac.Reference()})
	return m
}

func press(m *model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyPress(k))
	}
	return cmd
}

func TestModelShowsLoadingUntilRecordsArrive(t *testing.T) {
	m := newModel(defaultOptions(), fullMoonEvening())
	assert.Equal(t, "loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Contains(t, m.View(), "Loading astronomical data")
	assert.Equal(t, -1, m.cursor)

	m.Update(recordsLoadedMsg{records: almanac.Reference()})
	assert.False(t, m.dash.Loading())
	assert.Len(t, m.data.visible, 15)
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, moon.FullMoon.Glyph(), m.dash.CurrentGlyph())
}

func TestModelDashboardView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "AstroDash")
	assert.Contains(t, view, "New York, USA")
	assert.Contains(t, view, "21:00:00")
	assert.Contains(t, view, "2025-01-16")
	assert.Contains(t, view, "Total Records: 15")
	assert.Contains(t, view, "Average Temperature: 74.9 °F")
	assert.Contains(t, view, "Unique Moon Phases: 8")
}

func TestModelClockTickUpdatesLabel(t *testing.T) {
	m := newTestModel(t)
	now := m.clock.Now().Add(5 * time.Second)
	m.Update(clockTickMsg{now: now})

	assert.Equal(t, "21:00:05", m.ui.clockLabel)
	assert.Contains(t, m.View(), "21:00:05")
}

func TestModelNavigation(t *testing.T) {
	m := newTestModel(t)

	press(m, "2")
	assert.Equal(t, dashboard.ViewSearch, m.dash.Active())
	assert.True(t, m.dash.ResultsVisible())
	assert.Contains(t, m.View(), "Search Results (15 found)")

	press(m, "3")
	assert.Equal(t, dashboard.ViewAbout, m.dash.Active())
	assert.False(t, m.dash.ResultsVisible())
	assert.Contains(t, m.View(), "About AstroDash")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, dashboard.ViewDashboard, m.dash.Active())
}

func TestModelSearchFiltersWhileTyping(t *testing.T) {
	m := newTestModel(t)

	press(m, "/", "gib")
	assert.Equal(t, modeCommand, m.ui.mode)
	assert.Equal(t, "gib", m.dash.SearchTerm())
	assert.Len(t, m.data.visible, 4)

	press(m, "backspace", "backspace", "backspace", "2025-01-2")
	assert.Len(t, m.data.visible, 10)

	press(m, "esc")
	assert.Equal(t, modeView, m.ui.mode)
	assert.Equal(t, "", m.dash.SearchTerm())
	assert.Len(t, m.data.visible, 15)
}

func TestModelSearchSubmitShowsResults(t *testing.T) {
	m := newTestModel(t)

	press(m, "/", "GIBBOUS", "enter")
	assert.Equal(t, modeView, m.ui.mode)
	assert.Equal(t, "GIBBOUS", m.dash.SearchTerm())
	assert.Equal(t, dashboard.ViewSearch, m.dash.Active())
	assert.True(t, m.dash.ResultsVisible())
	assert.Contains(t, m.View(), "Search Results (4 found)")

	// Editing again starts from the kept term.
	press(m, "/")
	assert.Equal(t, "GIBBOUS", m.ui.command.buf)
}

func TestModelPhaseSelector(t *testing.T) {
	m := newTestModel(t)

	press(m, "]")
	assert.Equal(t, "New Moon", m.dash.Bucket())
	require.Len(t, m.data.visible, 1)
	assert.Equal(t, "2025-01-27", m.data.visible[0].Date)

	press(m, "[", "[")
	assert.Equal(t, "Waning Crescent", m.dash.Bucket())
	assert.Len(t, m.data.visible, 2)

	press(m, "c")
	assert.Equal(t, moon.BucketAll, m.dash.Bucket())
	assert.Len(t, m.data.visible, 15)
}

func TestModelSliderKeys(t *testing.T) {
	m := newTestModel(t)

	press(m, "l")
	assert.Equal(t, 1.0, m.dash.Slider())
	assert.Equal(t, moon.BucketAll, m.dash.Bucket())

	press(m, "L")
	assert.Equal(t, 13.5, m.dash.Slider())
	assert.Equal(t, "New Moon", m.dash.Bucket())

	press(m, "h", "h", "h", "h", "h")
	assert.Equal(t, 8.5, m.dash.Slider())
	assert.Len(t, m.data.visible, 15)
}

func TestModelCursorMovement(t *testing.T) {
	m := newTestModel(t)

	press(m, "j", "j")
	assert.Equal(t, 2, m.cursor)
	press(m, "k")
	assert.Equal(t, 1, m.cursor)
	press(m, "G")
	assert.Equal(t, 14, m.cursor)
	press(m, "j")
	assert.Equal(t, 14, m.cursor)
	press(m, "g")
	assert.Equal(t, 0, m.cursor)
}

func TestModelJumpToRow(t *testing.T) {
	m := newTestModel(t)

	press(m, ":", "3", "enter")
	assert.Equal(t, modeView, m.ui.mode)
	assert.Equal(t, 2, m.cursor)

	cmd := press(m, ":", "99", "enter")
	assert.NotNil(t, cmd)
	assert.Equal(t, 2, m.cursor)
	assert.Equal(t, "Row 99 out of bounds", m.ui.noticeMsg)

	press(m, ":", "x", "enter")
	assert.Equal(t, "Invalid row number", m.ui.noticeMsg)
}

func TestModelNoticeClearsOnlyForLatest(t *testing.T) {
	m := newTestModel(t)
	m.startNotice("first", "info", noticeDuration)
	m.startNotice("second", "info", noticeDuration)

	m.Update(clearNoticeMsg{id: 1})
	assert.Equal(t, "second", m.ui.noticeMsg)
	m.Update(clearNoticeMsg{id: 2})
	assert.Empty(t, m.ui.noticeMsg)
}

func TestModelExportDialogFlow(t *testing.T) {
	m := newTestModel(t)
	press(m, "/", "gibbous", "enter")

	press(m, "e")
	require.NotNil(t, m.activeDialog)
	assert.Contains(t, m.View(), "Export 4 result(s)")

	cmd := press(m, "esc")
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Nil(t, m.activeDialog)

	path := filepath.Join(t.TempDir(), "gibbous.json")
	_, cmd = m.Update(dialogs.ExportConfirmedMsg{Path: path})
	assert.NotNil(t, cmd)
	assert.Equal(t, "Exported 4 records to "+path, m.ui.noticeMsg)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc exportDTO
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "gibbous", doc.SearchTerm)
	assert.Len(t, doc.Records, 4)
}

func TestModelExportFailureIsReported(t *testing.T) {
	m := newTestModel(t)
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	m.Update(dialogs.ExportConfirmedMsg{Path: path})
	assert.Equal(t, "error", m.ui.noticeType)
	assert.Contains(t, m.ui.noticeMsg, "Export failed")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHighlightMatches(t *testing.T) {
	assert.Equal(t, "Full Moon", highlightMatches("Full Moon", ""))
	assert.Equal(t, "Full Moon", highlightMatches("Full Moon", "xyz"))

	got := highlightMatches("Full Moon", "moon")
	assert.Contains(t, got, "Full ")
	assert.Contains(t, got, "Moon")
}

func TestRenderFooterFitsWidth(t *testing.T) {
	out := RenderFooter(120, FooterState{
		ViewName:    "Dashboard",
		FilterLabel: "\"gibbous\"",
		Bucket:      "All",
		Row:         "1/4",
		TotalRows:   4,
		Legend:      "(? help)",
	}, DefaultFooterStyles())

	assert.Contains(t, out, "NORMAL")
	assert.Contains(t, out, "Dashboard")
	assert.Contains(t, out, "Rows 1/4")
	assert.Empty(t, RenderFooter(0, FooterState{}, DefaultFooterStyles()))
}

func TestRenderFooterNeverExceedsWidth(t *testing.T) {
	st := FooterState{
		Mode:        CmdSearch,
		ModeInput:   "gibbous",
		ViewName:    "Dashboard",
		FilterLabel: "\"gibbous\" · Waning Crescent",
		Bucket:      "Waning Crescent",
		Row:         "12/15",
		TotalRows:   15,
		Legend:      "(? help · / search · [ ] phase · e export · q quit)",
	}
	for _, width := range []int{1, 5, 11, 20, 40, 64, 80, 120} {
		out := RenderFooter(width, st, DefaultFooterStyles())
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 2)
		for i, line := range lines {
			assert.LessOrEqual(t, lipgloss.Width(line), width, "width %d line %d", width, i+1)
		}
	}
}

func TestModelPhaseOptionPreselectsBucket(t *testing.T) {
	opts := defaultOptions()
	require.NoError(t, opts.phase.UnmarshalText([]byte("full moon")))

	m := newModel(opts, fullMoonEvening())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(recordsLoadedMsg{records: almanac.Reference()})

	assert.Equal(t, "Full Moon", m.dash.Bucket())
	require.Len(t, m.data.visible, 1)
	assert.Equal(t, "2025-01-21", m.data.visible[0].Date)
}

func TestTruncatePlainCountsWideRunes(t *testing.T) {
	assert.Equal(t, "ab", truncatePlain("abc", 2))
	assert.Equal(t, "🌕", truncatePlain("🌕🌕", 3))
	assert.Equal(t, "", truncatePlain("abc", 0))
}
