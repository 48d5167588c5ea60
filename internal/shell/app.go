package shell

// App is the top-level view state. It lives only as long as the page or
// terminal session that owns it.
type App struct {
	active     string
	mobileOpen bool
}

type NavEntry struct {
	NavItem
	Active bool
}

func NewApp() *App {
	return &App{active: string(DefaultSection)}
}

// Restore rebuilds an App from state submitted back by the client. An empty
// section means the default one.
func Restore(active string, mobileOpen bool) *App {
	if active == "" {
		active = string(DefaultSection)
	}
	return &App{active: active, mobileOpen: mobileOpen}
}

func (a *App) Active() string   { return a.active }
func (a *App) MobileOpen() bool { return a.mobileOpen }

func (a *App) SetActive(id string) {
	a.active = id
}

// Navigate is a sidebar click: it switches section and closes the mobile menu.
func (a *App) Navigate(id string) {
	a.SetActive(id)
	a.mobileOpen = false
}

func (a *App) ToggleMenu() {
	a.mobileOpen = !a.mobileOpen
}

func (a *App) CloseMenu() {
	a.mobileOpen = false
}

func (a *App) Pane() Pane {
	return PaneFor(a.active)
}

func (a *App) Nav() []NavEntry {
	entries := make([]NavEntry, len(Navigation))
	for i, item := range Navigation {
		entries[i] = NavEntry{NavItem: item, Active: string(item.ID) == a.active}
	}
	return entries
}
