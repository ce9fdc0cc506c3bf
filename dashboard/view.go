package dashboard

import (
	"fmt"
	"strings"
)

// View is one of the three navigable screens.
type View int

const (
	ViewDashboard View = iota
	ViewSearch
	ViewAbout
)

var viewNames = [...]string{
	ViewDashboard: "dashboard",
	ViewSearch:    "search",
	ViewAbout:     "about",
}

func Views() []View {
	return []View{ViewDashboard, ViewSearch, ViewAbout}
}

func (v View) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return viewNames[v]
}

// Title is the label shown in navigation.
func (v View) Title() string {
	s := v.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func ParseView(s string) (View, error) {
	for i, name := range viewNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return View(i), nil
		}
	}
	return 0, fmt.Errorf("unknown view %q", s)
}

func (v View) next() View {
	return View((int(v) + 1) % len(viewNames))
}
