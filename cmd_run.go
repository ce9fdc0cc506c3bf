package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/astrodash/logging"
)

func (m *model) enterCommandMode(cmd Command) {
	m.ui.command = CommandInput{cmd: cmd}
	if cmd == CmdSearch {
		m.ui.searchBackup = m.dash.SearchTerm()
		m.ui.command.buf = m.ui.searchBackup
	}
	m.ui.mode = modeCommand
	logging.Debugf("Entering command mode %s", m.commandBadge(cmd))
}

func (m *model) runCommand() tea.Cmd {
	switch m.ui.command.cmd {
	case CmdJump:
		n, err := strconv.Atoi(strings.TrimSpace(m.ui.command.buf))
		if err != nil {
			return m.startNotice("Invalid row number", "warn", noticeDuration)
		}
		return m.jumpToRow(n)

	case CmdSearch:
		// The term has been applied live while typing.
		logging.Infof("Search term kept: %q", m.dash.SearchTerm())
		m.submitSearch()
		return nil
	}
	return nil
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		if m.ui.command.cmd == CmdSearch {
			m.setSearchTerm(m.ui.searchBackup)
		}
		m.exitCommandMode()
		m.refreshView("command-cancel", false)
		return m, nil
	}

	// commit
	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		m.refreshView("command-run", false)
		return m, cmd
	}

	// editing
	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.ui.command.buf) > 0 {
			r := []rune(m.ui.command.buf)
			m.ui.command.buf = string(r[:len(r)-1])
			m.commandBufferChanged()
		}
		return m, nil
	case tea.KeySpace:
		m.ui.command.buf += " "
		m.commandBufferChanged()
		return m, nil
	case tea.KeyRunes:
		m.ui.command.buf += string(msg.Runes)
		m.commandBufferChanged()
	}
	return m, nil
}

// commandBufferChanged keeps the search term in step with the command line so
// the results filter as the user types.
func (m *model) commandBufferChanged() {
	if m.ui.command.cmd == CmdSearch {
		m.setSearchTerm(m.ui.command.buf)
	}
}
