// Package shell generates page shells for the dashboard server document.
//
// A shell is a complete HTML page destined for the inside of a
// JavaScript template literal: interpolations such as
// ${req.path === '/x' ? 'active' : ''} and ${user ? ... : ''} are
// emitted verbatim as placeholders for the hosting server to resolve at
// render time. Generation is deterministic; identical input yields
// byte-identical output.
package shell

import "fmt"

// Page describes one generated page shell. It is constructed per target
// by the plan driver, consumed once by Generate, and discarded.
type Page struct {
	// Route is the request path served by the page, e.g. /cb-speeches.
	Route string `yaml:"route" json:"route"`
	// Name is the short display form used in the breadcrumb.
	Name string `yaml:"name" json:"name"`
	// Title is the document title.
	Title string `yaml:"title" json:"title"`
	// ActiveNav is the navigation key the page belongs to; it defaults
	// to Route and must name an entry in NavEntries.
	ActiveNav string `yaml:"activeNav,omitempty" json:"activeNav,omitempty"`
	// RootID is the id of the single content mount element.
	RootID string `yaml:"rootId" json:"rootId"`
	// Script is the companion script reference, e.g. /cb-speeches.jsx.
	Script string `yaml:"script" json:"script"`
	// Footer is rendered verbatim in the fixed footer.
	Footer string `yaml:"footer" json:"footer"`
	// ExtraScripts are appended verbatim after the companion script.
	ExtraScripts []string `yaml:"extraScripts,omitempty" json:"extraScripts,omitempty"`
}

func (p *Page) validate() error {
	if p.Route == "" {
		return fmt.Errorf("page has no route")
	}
	if p.RootID == "" {
		return fmt.Errorf("page %s has no rootId", p.Route)
	}
	active := p.ActiveNav
	if active == "" {
		active = p.Route
	}
	for _, e := range navEntries {
		if e.Route == active {
			return nil
		}
	}
	return fmt.Errorf("page %s: activeNav %q is not a navigation entry", p.Route, active)
}

// Markers bounding a page's html template inside the server document.
const (
	HTMLStartMarker = "const html = `<!DOCTYPE html>"
	HTMLEndMarker   = "</html>`;"
)

// RouteAnchor returns the opening line of route's handler in the server
// document, used to scope patches to that handler.
func RouteAnchor(route string) string {
	return fmt.Sprintf("app.get('%s', ensureAuthenticated, async (req, res) => {", route)
}

// LooseRouteAnchor returns a drift-tolerant prefix of route's handler
// registration, for fallback location when the handler signature has
// changed.
func LooseRouteAnchor(route string) string {
	return fmt.Sprintf("app.get('%s'", route)
}
