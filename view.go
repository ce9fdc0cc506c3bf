package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"github.com/andareed/astrodash/dashboard"
	"github.com/andareed/astrodash/moon"
)

const (
	footerHeight      = 2
	tableChromeHeight = 3 // column header + top and bottom border
	sliderWidth       = 20
)

var navIcons = map[dashboard.View]string{
	dashboard.ViewDashboard: "🏠",
	dashboard.ViewSearch:    "🔍",
	dashboard.ViewAbout:     "ℹ",
}

// region Layout

func (m *model) innerWidth() int  { return max(0, m.terminalWidth-appstyle.GetHorizontalFrameSize()) }
func (m *model) innerHeight() int { return max(0, m.terminalHeight-appstyle.GetVerticalFrameSize()) }
func (m *model) bodyHeight() int  { return max(0, m.innerHeight()-footerHeight) }

func (m *model) contentWidth() int {
	return max(0, m.innerWidth()-sidebarStyle.GetHorizontalFrameSize()-sidebarWidth-contentStyle.GetHorizontalFrameSize())
}

// layout sizes the table viewport to whatever the active view leaves free.
func (m *model) layout() {
	tableWidth := max(0, m.contentWidth()-tableStyle.GetHorizontalFrameSize())
	m.data.columns = layoutColumns(m.data.columns, tableWidth-1) // 1 for the cursor marker

	var above, below string
	switch m.dash.Active() {
	case dashboard.ViewDashboard:
		above, below = m.dashboardHeader(), m.summaryView()
	case dashboard.ViewSearch:
		above = m.searchHeader()
	}
	height := m.bodyHeight() - lipgloss.Height(above) - lipgloss.Height(below) - tableChromeHeight
	if below == "" {
		height++ // lipgloss.Height("") is 1
	}

	m.viewport.Width = tableWidth
	m.viewport.Height = max(1, height)
}

// endregion

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	var body string
	if m.dash.Loading() {
		body = m.loadingView()
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), contentStyle.Render(m.contentView()))
	}
	body = lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body)

	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.footerView(m.innerWidth())))
}

func (m *model) loadingView() string {
	return loadingStyle.Render(m.spinner.View() + " Loading astronomical data...")
}

func (m *model) sidebarView() string {
	lines := []string{logoStyle.Render("🌌 AstroDash")}
	for i, v := range dashboard.Views() {
		entry := fmt.Sprintf("%d %s %s", i+1, navIcons[v], v.Title())
		if v == m.dash.Active() {
			lines = append(lines, navActiveStyle.Render(entry))
			continue
		}
		lines = append(lines, navStyle.Render(entry))
	}
	return sidebarStyle.Height(m.bodyHeight()).Render(strings.Join(lines, "\n"))
}

func (m *model) contentView() string {
	switch m.dash.Active() {
	case dashboard.ViewSearch:
		return m.searchView()
	case dashboard.ViewAbout:
		return m.aboutView()
	default:
		return m.dashboardView()
	}
}

// region Dashboard

func (m *model) dashboardView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.dashboardHeader(),
		m.tableView(),
		m.summaryView(),
	)
}

func (m *model) dashboardHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.statCards(), m.filterBar())
}

func (m *model) statCards() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Location", m.location+", USA"),
		statCard(m.ui.clockLabel, "Moon Rise"),
		statCard(m.dash.CurrentGlyph(), "Moon Phase"),
	)
}

func statCard(value, label string) string {
	return cardStyle.Render(cardValueStyle.Render(value) + "\n" + cardLabelStyle.Render(label))
}

func (m *model) filterBar() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.searchBox("Enter Date"),
		"  ",
		labelStyle.Render("Moon Phase: "),
		sliderBar(m.dash.Slider()),
		" ",
		phaseLabelStyle.Render(m.dash.Bucket()),
		"  ",
		labelStyle.Render("[enter] Search"),
	)
}

func (m *model) searchBox(placeholder string) string {
	editing := m.ui.mode == modeCommand && m.ui.command.cmd == CmdSearch
	style := inputBoxStyle
	text := m.dash.SearchTerm()
	switch {
	case editing:
		style = inputActiveBoxStyle
		text += "█"
	case text == "":
		text = placeholderStyle.Render(placeholder)
	}
	return style.Render(text)
}

// sliderBar draws the 0-100 slider with a knob at v.
func sliderBar(v float64) string {
	pos := int(math.Round(v / dashboard.SliderMax * float64(sliderWidth-1)))
	pos = clamp(pos, 0, sliderWidth-1)
	return sliderFillStyle.Render(strings.Repeat("━", pos)+"●") +
		sliderTrackStyle.Render(strings.Repeat("─", sliderWidth-1-pos))
}

func (m *model) summaryView() string {
	s := m.dash.Summary()
	items := []string{
		fmt.Sprintf("Total Records: %d", s.TotalItems),
		fmt.Sprintf("Average Temperature: %s °F", s.AvgLabel()),
		fmt.Sprintf("Unique Moon Phases: %d", s.UniquePhases),
	}
	return summaryStyle.Width(m.contentWidth()).Render(strings.Join(items, "   "))
}

// endregion

// region Search

func (m *model) searchView() string {
	if !m.dash.ResultsVisible() {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.searchHeader(),
			placeholderStyle.Render("Press enter to show the results."),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.searchHeader(), m.tableView())
}

func (m *model) searchHeader() string {
	selector := "All Phases"
	if b := m.dash.Bucket(); b != moon.BucketAll {
		selector = b
	}
	parts := []string{
		titleStyle.Render("🔍 Advanced Search"),
		labelStyle.Render("Search by Date:"),
		m.searchBox("Enter date (YYYY-MM-DD)"),
		labelStyle.Render("Filter by Moon Phase:") + " " + phaseLabelStyle.Render("◀ "+selector+" ▶") +
			placeholderStyle.Render("  ([ / ] to change)"),
		"",
	}
	if m.dash.ResultsVisible() {
		parts = append(parts, titleStyle.Render(fmt.Sprintf("Search Results (%d found)", len(m.data.visible))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// endregion

// region About

const aboutText = "AstroDash is an astronomical data dashboard that displays moon phases, " +
	"weather data and celestial information. It refreshes the clock every second " +
	"and lets you search and filter the astronomical records."

var aboutFeatures = []string{
	"Moon phase tracking for today",
	"Weather data with moonrise times",
	"Search by date or phase name",
	"Moon phase slider and selector",
	"Export results to CSV or JSON",
}

func (m *model) aboutView() string {
	width := max(20, m.contentWidth()-cardStyle.GetHorizontalFrameSize())
	features := make([]string, len(aboutFeatures))
	for i, f := range aboutFeatures {
		features[i] = "• " + f
	}
	cards := []string{
		titleStyle.Render("ℹ About AstroDash"),
		cardStyle.Width(width).Render(cardValueStyle.Render("What is AstroDash?") + "\n" + wordwrap.String(aboutText, width-4)),
		cardStyle.Width(width).Render(cardValueStyle.Render("🌙 Features") + "\n" + strings.Join(features, "\n")),
		cardStyle.Width(width).Render(cardValueStyle.Render("Build") + "\n" +
			wordwrap.String(fmt.Sprintf("Version %s. Built with Go, Bubble Tea and Lip Gloss.", Version), width-4)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// endregion

// region Table

func (m *model) tableView() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), tableStyle.Render(m.viewport.View()))
}

func (m *model) headerView() string {
	var cells []string
	for _, col := range m.data.columns {
		if col.Width <= 0 {
			continue
		}
		cells = append(cells, cellStyle.Width(col.Width).MaxWidth(col.Width).Render(col.Name))
	}
	return headerStyle.Render(defaultMarker + lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (m *model) renderTable() string {
	if len(m.data.visible) == 0 {
		return placeholderStyle.Render(" No records match the current search.")
	}
	lines := make([]string, 0, len(m.data.visible))
	for i := range m.data.visible {
		if line, ok := m.renderRowAt(i); ok {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderRowAt(idx int) (string, bool) {
	r, ok := m.data.current(idx)
	if !ok {
		return "", false
	}

	selected := idx == m.cursor
	marker := rowStyle.Render(defaultMarker)
	rowPrefix := bgSeq(lipgloss.Color("")) + fgSeq(lipgloss.Color(rowTextFGColor))
	if selected {
		marker = cursorMarker.Inherit(rowSelectedStyle).Render(pillMarker)
		rowPrefix = bgSeq(lipgloss.Color(rowSelectedBGColor)) + fgSeq(lipgloss.Color(rowSelectedTextFGColor))
	}
	rowSuffix := termenv.CSI + "0m"

	content := newRecordRow(r).highlighted(m.dash.SearchTerm()).Render(cellStyle, m.data.columns)
	content = restoreRowStyleAfterReset(content, rowPrefix)
	return marker + rowPrefix + content + rowSuffix, true
}

// highlightMatches marks every case-insensitive occurrence of query in text.
func highlightMatches(text string, query string) string {
	if query == "" || text == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)
	if len(lowerText) != len(text) {
		// Case folding changed byte offsets; skip rather than mis-slice.
		return text
	}
	var b strings.Builder
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerQuery)
		if idx == -1 {
			b.WriteString(text[start:])
			break
		}
		idx += start
		b.WriteString(text[start:idx])
		b.WriteString(searchHighlight.Render(text[idx : idx+len(lowerQuery)]))
		start = idx + len(lowerQuery)
	}
	return b.String()
}

func restoreRowStyleAfterReset(s string, rowPrefix string) string {
	if rowPrefix == "" {
		return s
	}
	reset := termenv.CSI + "0m"
	if !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+rowPrefix)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	seq := tc.Sequence(bg)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

// endregion
