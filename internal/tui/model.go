// Package tui renders the dashboard shell in a terminal. It drives the same
// shell and dashboard state as the web pages.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yusufkecer/health-tracker/internal/auth"
	"github.com/yusufkecer/health-tracker/internal/dashboard"
	"github.com/yusufkecer/health-tracker/internal/shell"
	"go.uber.org/zap"
)

// Below this width the sidebar behaves like the mobile menu.
const wideLayout = 100

// Session is the auth source the terminal resolves once at startup.
type Session interface {
	auth.Source
	Resolve(ctx context.Context, token string)
}

type authChangedMsg struct{}

type resolvedMsg struct{}

type mountedMsg struct{}

type Model struct {
	ctx     context.Context
	session Session
	records dashboard.RecordLister
	logger  *zap.Logger
	token   string

	app     *shell.App
	view    *dashboard.View
	changes chan struct{}
	spinner spinner.Model
	styles  Styles

	width    int
	notice   string
	quitting bool
}

func New(ctx context.Context, session Session, records dashboard.RecordLister, token string, logger *zap.Logger) Model {
	m := Model{
		ctx:     ctx,
		session: session,
		records: records,
		logger:  logger,
		token:   token,
		app:     shell.NewApp(),
		changes: make(chan struct{}, 1),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  DefaultStyles(),
	}
	m.syncMount()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForChange(), m.mount(m.view), m.resolve())
}

func (m Model) resolve() tea.Cmd {
	return func() tea.Msg {
		m.session.Resolve(m.ctx, m.token)
		return resolvedMsg{}
	}
}

// waitForChange blocks until the mounted dashboard has handled an auth event.
func (m Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.changes:
			return authChangedMsg{}
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case authChangedMsg:
		return m, m.waitForChange()

	case resolvedMsg, mountedMsg:
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		m.unmount()
		m.quitting = true
		return m, tea.Quit
	case "m":
		m.app.ToggleMenu()
	case "esc":
		m.app.CloseMenu()
	case "l":
		m.notice = "Sign in at " + m.session.LoginURL()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(shell.Navigation) {
				m.app.Navigate(string(shell.Navigation[i].ID))
				return m, m.mount(m.syncMount())
			}
		}
	}
	return m, nil
}

// syncMount keeps exactly one dashboard view while the dashboard pane is
// showing, and none otherwise. It returns a view that still needs mounting.
func (m *Model) syncMount() *dashboard.View {
	wantDashboard := m.app.Pane().Dashboard
	switch {
	case wantDashboard && m.view == nil:
		m.view = dashboard.NewView(notifySource{Source: m.session, changes: m.changes}, m.records, m.logger)
		return m.view
	case !wantDashboard && m.view != nil:
		m.unmount()
	}
	return nil
}

// mount subscribes v off the event loop. Subscribing replays the current
// auth state, which may reach the record store.
func (m Model) mount(v *dashboard.View) tea.Cmd {
	if v == nil {
		return nil
	}
	return func() tea.Msg {
		v.Mount(m.ctx)
		return mountedMsg{}
	}
}

// Close releases the dashboard subscription if one is still mounted.
func (m Model) Close() {
	if m.view != nil {
		m.view.Unmount()
	}
}

func (m *Model) unmount() {
	if m.view != nil {
		m.view.Unmount()
		m.view = nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.renderPane()
	if m.app.MobileOpen() || m.width >= wideLayout {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", body)
	}

	var b strings.Builder
	b.WriteString(m.styles.Brand.Render("HealthTracker"))
	b.WriteString(" ")
	b.WriteString(m.styles.Muted.Render("AI-Powered Insights"))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	if m.notice != "" {
		b.WriteString(m.styles.Notice.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("1-6 switch section · m menu · esc close menu · l sign-in link · q quit"))
	return b.String()
}

func (m Model) renderSidebar() string {
	var b strings.Builder
	for i, entry := range m.app.Nav() {
		line := fmt.Sprintf("%d %s", i+1, entry.Name)
		if entry.Active {
			b.WriteString(m.styles.NavActive.Render(line))
		} else {
			b.WriteString(m.styles.NavItem.Render(line))
		}
		b.WriteString("\n")
	}
	return m.styles.Sidebar.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderPane() string {
	pane := m.app.Pane()
	if !pane.Dashboard || m.view == nil {
		return m.styles.Heading.Render(pane.Title) + "\n" + m.styles.Muted.Render(pane.Description)
	}
	return m.renderDashboard(m.view.Snapshot())
}

// notifySource signals changes after the wrapped listener has run, so a
// redraw always sees the state that listener produced.
type notifySource struct {
	auth.Source
	changes chan struct{}
}

func (n notifySource) OnAuthStateChanged(fn auth.Listener) func() {
	return n.Source.OnAuthStateChanged(func(s auth.State) {
		fn(s)
		select {
		case n.changes <- struct{}{}:
		default:
		}
	})
}
