package main

type mode int

const (
	modeView mode = iota
	modeCommand
)

type uiState struct {
	mode         mode
	command      CommandInput
	searchBackup string // term to restore when a search edit is cancelled
	clockLabel   string
	noticeMsg    string
	noticeType   string
	noticeSeq    int
	visibleStart int
	visibleEnd   int
}
