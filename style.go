package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	searchHighlightBGColor = "#f5c542"
	searchHighlightFGColor = "#000000"
	accentColor            = "#8a7dff"
	sidebarWidth           = 20
)

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)
	headerStyle = lipgloss.NewStyle().Bold(true).BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true)
	rowStyle         = lipgloss.NewStyle()
	rowSelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color(rowSelectedBGColor))

	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	tableStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	cursorMarker  = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor))
	defaultMarker = " " // replaces pillMarker on rows without the cursor
	pillMarker    = "▐"

	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	logoStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor)).MarginBottom(1)
	navStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	navActiveStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color(accentColor))

	contentStyle = lipgloss.NewStyle().PaddingLeft(2)
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 2).
			MarginRight(1)
	cardValueStyle = lipgloss.NewStyle().Bold(true)
	cardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(30)
	inputActiveBoxStyle = inputBoxStyle.BorderForeground(lipgloss.Color(accentColor))
	placeholderStyle    = lipgloss.NewStyle().Faint(true)
	labelStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	sliderFillStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor))
	sliderTrackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	phaseLabelStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor))

	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("240"))

	loadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor)).Padding(1, 2)

	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color(searchHighlightBGColor)).
			Foreground(lipgloss.Color(searchHighlightFGColor))
)
