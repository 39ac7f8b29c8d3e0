package shell

// NavEntry is one sidebar navigation item. The list returned by
// NavEntries is shared by every generated page; only the runtime active
// check differs per entry, which is what keeps the generated pages
// structurally consistent without a shared include mechanism.
type NavEntry struct {
	Route string
	Label string
	Icon  string
}

var navEntries = []NavEntry{
	{
		Route: "/",
		Label: "Dashboard",
		Icon:  `<svg class="nav-icon" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><rect x="3" y="3" width="7" height="7"/><rect x="14" y="3" width="7" height="7"/><rect x="14" y="14" width="7" height="7"/><rect x="3" y="14" width="7" height="7"/></svg>`,
	},
	{
		Route: "/currency-strength",
		Label: "Currency Strength",
		Icon:  `<svg class="nav-icon" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><polyline points="23,6 13.5,15.5 8.5,10.5 1,18"/><polyline points="17,6 23,6 23,12"/></svg>`,
	},
	{
		Route: "/cb-speeches",
		Label: "CB Speeches",
		Icon:  `<svg class="nav-icon" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M12 1a3 3 0 0 0-3 3v8a3 3 0 0 0 6 0V4a3 3 0 0 0-3-3z"/><path d="M19 10v2a7 7 0 0 1-14 0v-2"/><line x1="12" y1="19" x2="12" y2="23"/><line x1="8" y1="23" x2="16" y2="23"/></svg>`,
	},
	{
		Route: "/weekly-calendar",
		Label: "Weekly Calendar",
		Icon:  `<svg class="nav-icon" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><rect x="3" y="4" width="18" height="18" rx="2" ry="2"/><line x1="16" y1="2" x2="16" y2="6"/><line x1="8" y1="2" x2="8" y2="6"/><line x1="3" y1="10" x2="21" y2="10"/></svg>`,
	},
}

// NavEntries returns the fixed, shared navigation list. Callers must not
// mutate the returned slice.
func NavEntries() []NavEntry {
	return navEntries
}
