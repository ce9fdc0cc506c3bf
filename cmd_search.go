package main

import "github.com/andareed/astrodash/logging"

func (m *model) setSearchTerm(term string) {
	if term == m.dash.SearchTerm() {
		return
	}
	logging.Debugf("Setting search term to: %q", term)
	m.dash.SetSearchTerm(term)
	m.refreshView("search-term", true)
}

// submitSearch reveals the results section on the search view.
func (m *model) submitSearch() {
	logging.Infof("Search submitted: term=%q bucket=%q (%d found)",
		m.dash.SearchTerm(), m.dash.Bucket(), len(m.data.visible))
	m.dash.SubmitSearch()
	m.refreshView("search-submit", false)
}
