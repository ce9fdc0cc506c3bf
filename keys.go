package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit          key.Binding
	ViewDashboard key.Binding
	ViewSearch    key.Binding
	ViewAbout     key.Binding
	NextView      key.Binding
	EditSearch    key.Binding
	Submit        key.Binding
	SliderDown    key.Binding
	SliderUp      key.Binding
	BucketDown    key.Binding
	BucketUp      key.Binding
	PhasePrev     key.Binding
	PhaseNext     key.Binding
	ClearFilters  key.Binding
	RowDown       key.Binding
	RowUp         key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	FirstRow      key.Binding
	LastRow       key.Binding
	JumpToRow     key.Binding
	CopyRow       key.Binding
	ExportToFile  key.Binding
	OpenHelp      key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	ViewDashboard: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "dashboard"),
	),
	ViewSearch: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "advanced search"),
	),
	ViewAbout: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "about"),
	),
	NextView: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	EditSearch: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "edit search term"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search"),
	),
	SliderDown: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "moon phase slider -1"),
	),
	SliderUp: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "moon phase slider +1"),
	),
	BucketDown: key.NewBinding(
		key.WithKeys("H", "shift+left"),
		key.WithHelp("H", "moon phase slider -12.5"),
	),
	BucketUp: key.NewBinding(
		key.WithKeys("L", "shift+right"),
		key.WithHelp("L", "moon phase slider +12.5"),
	),
	PhasePrev: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "previous phase"),
	),
	PhaseNext: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next phase"),
	),
	ClearFilters: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear search and phase"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	FirstRow: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first row"),
	),
	LastRow: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last row"),
	),
	JumpToRow: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to row"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy row to clipboard"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export results (.csv/.json)"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.ViewDashboard,
		k.ViewSearch,
		k.ViewAbout,
		k.NextView,
		k.EditSearch,
		k.Submit,
		k.SliderDown,
		k.SliderUp,
		k.BucketDown,
		k.BucketUp,
		k.PhasePrev,
		k.PhaseNext,
		k.ClearFilters,
		k.JumpToRow,
		k.FirstRow,
		k.LastRow,
		k.CopyRow,
		k.ExportToFile,
	}
}
