// Package dashboard implements the dashboard pane: an auth-driven state
// machine plus the static metric, chart and insight content it renders.
package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/yusufkecer/health-tracker/internal/auth"
	"github.com/yusufkecer/health-tracker/internal/domain"
	"go.uber.org/zap"
)

type Status int

const (
	StatusLoading Status = iota
	StatusUnauthenticated
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "loading"
	}
}

const maxInsights = 3

var errStoreNotConfigured = errors.New("record store not configured")

type RecordLister interface {
	ListRecords(ctx context.Context, userID string, limit int) ([]domain.HealthRecord, error)
}

type InsightItem struct {
	domain.AIInsight
	BadgeClass string
}

// Model is an immutable snapshot handed to templates and the terminal renderer.
type Model struct {
	Status   Status
	User     *auth.User
	Greeting string
	LoginURL string
	Metrics  []Card
	Chart    Chart
	Insights []InsightItem
}

type Option func(*View)

func WithClock(now func() time.Time) Option {
	return func(v *View) { v.now = now }
}

// View owns the dashboard state for one mount. Mount subscribes to the auth
// source; Unmount releases the subscription exactly once.
type View struct {
	source  auth.Source
	records RecordLister
	logger  *zap.Logger
	now     func() time.Time

	mu          sync.Mutex
	status      Status
	user        *auth.User
	insights    []domain.AIInsight
	mounted     bool
	unmounted   bool
	unsubscribe func()

	unmountOnce sync.Once
	settleOnce  sync.Once
	settled     chan struct{}
}

func NewView(source auth.Source, records RecordLister, logger *zap.Logger, opts ...Option) *View {
	v := &View{
		source:  source,
		records: records,
		logger:  logger,
		now:     time.Now,
		status:  StatusLoading,
		settled: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Mount subscribes to auth state. ctx scopes the best-effort record read
// triggered by each signed-in event.
func (v *View) Mount(ctx context.Context) {
	v.mu.Lock()
	if v.mounted || v.unmounted {
		v.mu.Unlock()
		return
	}
	v.mounted = true
	v.mu.Unlock()

	unsubscribe := v.source.OnAuthStateChanged(func(s auth.State) {
		v.handleAuthState(ctx, s)
	})

	// Unmount may have run while the replayed event was still being handled.
	v.mu.Lock()
	if v.unmounted {
		v.mu.Unlock()
		unsubscribe()
		return
	}
	v.unsubscribe = unsubscribe
	v.mu.Unlock()
}

func (v *View) Unmount() {
	v.unmountOnce.Do(func() {
		v.mu.Lock()
		v.unmounted = true
		unsubscribe := v.unsubscribe
		v.unsubscribe = nil
		v.mu.Unlock()

		if unsubscribe != nil {
			unsubscribe()
		}
	})
}

// Settled is closed once the first resolved auth event, including any
// record read it triggered, has been handled.
func (v *View) Settled() <-chan struct{} {
	return v.settled
}

func (v *View) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

func (v *View) handleAuthState(ctx context.Context, s auth.State) {
	v.mu.Lock()
	if v.unmounted {
		v.mu.Unlock()
		return
	}
	v.user = s.User
	switch {
	case s.IsLoading:
		v.status = StatusLoading
	case s.User == nil:
		v.status = StatusUnauthenticated
	default:
		v.status = StatusAuthenticated
	}
	if s.User == nil {
		v.insights = nil
	}
	v.mu.Unlock()

	if s.User != nil {
		v.loadDashboardData(ctx, s.User)
	}

	if !s.IsLoading {
		v.settleOnce.Do(func() { close(v.settled) })
	}
}

func (v *View) loadDashboardData(ctx context.Context, user *auth.User) {
	if err := v.probeRecords(ctx, user.ID); err != nil {
		v.logger.Warn("initializing health tracking database",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
	}

	insights := SampleInsights(user.ID, v.now())

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.unmounted || v.user != user {
		return
	}
	v.insights = insights
}

// probeRecords reads a single record and discards it.
func (v *View) probeRecords(ctx context.Context, userID string) error {
	if v.records == nil {
		return errStoreNotConfigured
	}
	_, err := v.records.ListRecords(ctx, userID, 1)
	return err
}

func (v *View) Snapshot() Model {
	v.mu.Lock()
	defer v.mu.Unlock()

	m := Model{
		Status:   v.status,
		User:     v.user,
		LoginURL: v.source.LoginURL(),
	}
	if v.status != StatusAuthenticated {
		return m
	}

	m.Greeting = "Welcome back, " + displayName(v.user.Email) + "!"
	m.Metrics = SampleMetrics()
	m.Chart = BuildChart(SampleSeries())
	for i, in := range v.insights {
		if i == maxInsights {
			break
		}
		m.Insights = append(m.Insights, InsightItem{AIInsight: in, BadgeClass: PriorityClass(in.Priority)})
	}
	return m
}

// Insights returns a copy of the stored insight list.
func (v *View) Insights() []domain.AIInsight {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.AIInsight(nil), v.insights...)
}

func displayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "User"
	}
	return local
}
