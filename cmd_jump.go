package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/astrodash/logging"
)

func (m *model) checkViewPortHasData() bool {
	return len(m.data.visible) > 0 && m.cursor >= 0
}

func (m *model) jumpToStart() {
	logging.Debug("jumpToStart called...")
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor = 0
}

func (m *model) jumpToEnd() {
	logging.Debug("jumpToEnd called...")
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor = len(m.data.visible) - 1
}

func (m *model) moveCursor(delta int) {
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, len(m.data.visible)-1)
}

func (m *model) pageSize() int {
	if m.viewport.Height > 0 {
		return m.viewport.Height
	}
	return 1
}

// jumpToRow moves the cursor to the 1-based row of the current results.
func (m *model) jumpToRow(rowNo int) tea.Cmd {
	logging.Debugf("jumpToRow %d", rowNo)
	if !m.checkViewPortHasData() {
		return m.startNotice("No rows to jump to", "warn", noticeDuration)
	}
	if rowNo <= 0 || rowNo > len(m.data.visible) {
		return m.startNotice(fmt.Sprintf("Row %d out of bounds", rowNo), "warn", noticeDuration)
	}
	m.cursor = rowNo - 1
	return nil
}
