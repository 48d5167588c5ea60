package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/yusufkecer/health-tracker/internal/auth"
	"github.com/yusufkecer/health-tracker/internal/dashboard"
	"github.com/yusufkecer/health-tracker/internal/middleware"
	"github.com/yusufkecer/health-tracker/internal/shell"
	"go.uber.org/zap"
)

const (
	actionNavigate   = "navigate"
	actionToggleMenu = "toggle-menu"
	actionCloseMenu  = "close-menu"
)

// ShellHandler serves the dashboard shell. Navigation state round-trips
// through the page's forms, so a plain GET always starts from the default
// section with the menu closed.
type ShellHandler struct {
	renderer       *Renderer
	tokens         *auth.TokenIssuer
	accounts       auth.AccountFinder
	records        dashboard.RecordLister
	cookieName     string
	loginURL       string
	resolveTimeout time.Duration
	logger         *zap.Logger
}

type ShellDeps struct {
	Renderer       *Renderer
	Tokens         *auth.TokenIssuer
	Accounts       auth.AccountFinder
	Records        dashboard.RecordLister
	CookieName     string
	LoginURL       string
	ResolveTimeout time.Duration
	Logger         *zap.Logger
}

func NewShellHandler(d ShellDeps) *ShellHandler {
	return &ShellHandler{
		renderer:       d.Renderer,
		tokens:         d.Tokens,
		accounts:       d.Accounts,
		records:        d.Records,
		cookieName:     d.CookieName,
		loginURL:       d.LoginURL,
		resolveTimeout: d.ResolveTimeout,
		logger:         d.Logger,
	}
}

type shellPage struct {
	Active     string
	MobileOpen bool
	Nav        []shell.NavEntry
	Pane       shell.Pane
	Dashboard  *dashboard.Model
}

// Refresh asks the browser to poll again while auth is still resolving.
func (p shellPage) Refresh() bool {
	return p.Dashboard != nil && p.Dashboard.Status == dashboard.StatusLoading
}

func (h *ShellHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, shell.NewApp())
}

func (h *ShellHandler) Act(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	app := shell.Restore(r.PostFormValue("section"), r.PostFormValue("menu") == "open")
	switch r.PostFormValue("action") {
	case actionNavigate:
		app.Navigate(r.PostFormValue("target"))
	case actionToggleMenu:
		app.ToggleMenu()
	case actionCloseMenu:
		app.CloseMenu()
	}

	h.render(w, r, app)
}

func (h *ShellHandler) render(w http.ResponseWriter, r *http.Request, app *shell.App) {
	page := shellPage{
		Active:     app.Active(),
		MobileOpen: app.MobileOpen(),
		Nav:        app.Nav(),
		Pane:       app.Pane(),
	}
	if page.Pane.Dashboard {
		model := h.mountDashboard(r.Context(), middleware.SessionToken(r, h.cookieName))
		page.Dashboard = &model
	}
	h.renderer.Render(w, http.StatusOK, "shell.html", page)
}

// mountDashboard runs one dashboard mount for the request: subscribe,
// resolve the session, wait for it to settle or time out, then snapshot.
// On every return path the view is unmounted, then the resolve is cancelled
// and awaited, so nothing it started outlives the request.
func (h *ShellHandler) mountDashboard(ctx context.Context, token string) dashboard.Model {
	mountCtx, cancel := context.WithCancel(ctx)
	client := auth.NewClient(h.tokens, h.accounts, h.loginURL, h.logger)
	view := dashboard.NewView(client, h.records, h.logger)

	view.Mount(mountCtx)
	done := client.Start(mountCtx, token)
	defer func() {
		view.Unmount()
		cancel()
		<-done
	}()

	timer := time.NewTimer(h.resolveTimeout)
	defer timer.Stop()

	select {
	case <-view.Settled():
	case <-timer.C:
		h.logger.Debug("auth state still loading", zap.Duration("timeout", h.resolveTimeout))
	case <-ctx.Done():
	}
	return view.Snapshot()
}
