package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusufkecer/health-tracker/internal/auth"
	"github.com/yusufkecer/health-tracker/internal/domain"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSource struct {
	mu           sync.Mutex
	current      auth.State
	listeners    map[int]auth.Listener
	next         int
	unsubscribed int
}

func newFakeSource(initial auth.State) *fakeSource {
	return &fakeSource{current: initial, listeners: map[int]auth.Listener{}}
}

func (f *fakeSource) OnAuthStateChanged(fn auth.Listener) func() {
	f.mu.Lock()
	id := f.next
	f.next++
	f.listeners[id] = fn
	cur := f.current
	f.mu.Unlock()

	fn(cur)
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.unsubscribed++
		delete(f.listeners, id)
	}
}

func (f *fakeSource) LoginURL() string { return "/login" }

func (f *fakeSource) emit(s auth.State) {
	f.mu.Lock()
	f.current = s
	fns := make([]auth.Listener, 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(s)
	}
}

func (f *fakeSource) unsubscribeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unsubscribed
}

type fakeRecords struct {
	mu    sync.Mutex
	err   error
	calls []int
}

func (f *fakeRecords) ListRecords(_ context.Context, _ string, limit int) ([]domain.HealthRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, limit)
	if f.err != nil {
		return nil, f.err
	}
	return []domain.HealthRecord{{ID: "r1"}}, nil
}

var fixedNow = time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

func newTestView(src auth.Source, records RecordLister, logger *zap.Logger) *View {
	if logger == nil {
		logger = zap.NewNop()
	}
	return NewView(src, records, logger, WithClock(func() time.Time { return fixedNow }))
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func insightIDs(items []InsightItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestView_StateTransitions(t *testing.T) {
	src := newFakeSource(auth.State{IsLoading: true})
	view := newTestView(src, &fakeRecords{}, nil)
	view.Mount(context.Background())
	defer view.Unmount()

	m := view.Snapshot()
	assert.Equal(t, StatusLoading, m.Status)
	assert.Empty(t, m.Metrics)
	assert.False(t, isClosed(view.Settled()))

	src.emit(auth.State{})
	m = view.Snapshot()
	assert.Equal(t, StatusUnauthenticated, m.Status)
	assert.Equal(t, "/login", m.LoginURL)
	assert.Empty(t, m.Insights)
	assert.True(t, isClosed(view.Settled()))

	src.emit(auth.State{User: &auth.User{ID: "u1", Email: "a@b.com"}})
	m = view.Snapshot()
	require.Equal(t, StatusAuthenticated, m.Status)
	assert.Equal(t, "Welcome back, a!", m.Greeting)

	require.Len(t, m.Metrics, 4)
	var shown []string
	for _, c := range m.Metrics {
		shown = append(shown, c.Title+" "+c.Display())
	}
	assert.Equal(t, []string{
		"Heart Rate 72 bpm",
		"Blood Pressure 120/80 mmHg",
		"Weight 70.5 kg",
		"Body Temperature 36.8 °C",
	}, shown)

	require.Len(t, m.Insights, 3)
	assert.Equal(t, "Improve Sleep Quality", m.Insights[0].Title)
	assert.Equal(t, "Weight Loss Progress", m.Insights[1].Title)
	assert.Equal(t, "Blood Pressure Monitoring", m.Insights[2].Title)
	assert.Equal(t, "u1", m.Insights[0].UserID)
	assert.Equal(t, fixedNow, m.Insights[0].CreatedAt)
	assert.Len(t, m.Chart.Lines, 2)

	src.emit(auth.State{})
	m = view.Snapshot()
	assert.Equal(t, StatusUnauthenticated, m.Status)
	assert.Empty(t, view.Insights())
}

func TestView_InsightsIndependentOfRecordCall(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"success", nil},
		{"failure", errors.New("Table 'health_records' doesn't exist")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			records := &fakeRecords{err: tt.err}
			src := newFakeSource(auth.State{User: &auth.User{ID: "u1", Email: "a@b.com"}})

			view := newTestView(src, records, zap.New(core))
			view.Mount(context.Background())
			defer view.Unmount()

			assert.Equal(t, []string{"insight_1", "insight_2", "insight_3"}, insightIDs(view.Snapshot().Insights))
			assert.Equal(t, StatusAuthenticated, view.Status())
			assert.Equal(t, []int{1}, records.calls)

			if tt.err != nil {
				require.Equal(t, 1, logs.Len())
				assert.Equal(t, "initializing health tracking database", logs.All()[0].Message)
			} else {
				assert.Equal(t, 0, logs.Len())
			}
		})
	}
}

func TestView_NilStoreIsLoggedOnly(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	src := newFakeSource(auth.State{User: &auth.User{ID: "u1", Email: "a@b.com"}})

	view := newTestView(src, nil, zap.New(core))
	view.Mount(context.Background())
	defer view.Unmount()

	assert.Equal(t, StatusAuthenticated, view.Status())
	assert.Len(t, view.Insights(), 3)
	assert.Equal(t, 1, logs.Len())
}

func TestView_EachSignedInEventReloads(t *testing.T) {
	records := &fakeRecords{}
	src := newFakeSource(auth.State{IsLoading: true})
	view := newTestView(src, records, nil)
	view.Mount(context.Background())
	defer view.Unmount()

	src.emit(auth.State{User: &auth.User{ID: "u1", Email: "a@b.com"}})
	src.emit(auth.State{User: &auth.User{ID: "u1", Email: "a@b.com"}})

	assert.Equal(t, []int{1, 1}, records.calls)
	assert.Equal(t, []string{"insight_1", "insight_2", "insight_3"}, insightIDs(view.Snapshot().Insights))
}

func TestView_UnsubscribesExactlyOnce(t *testing.T) {
	src := newFakeSource(auth.State{IsLoading: true})
	view := newTestView(src, &fakeRecords{}, nil)

	view.Mount(context.Background())
	view.Mount(context.Background())
	assert.Equal(t, 0, src.unsubscribeCount())

	view.Unmount()
	view.Unmount()
	assert.Equal(t, 1, src.unsubscribeCount())

	src.emit(auth.State{User: &auth.User{ID: "u1"}})
	assert.Equal(t, StatusLoading, view.Status())
}

func TestView_UnmountWithoutMount(t *testing.T) {
	src := newFakeSource(auth.State{IsLoading: true})
	view := newTestView(src, &fakeRecords{}, nil)

	view.Unmount()
	view.Mount(context.Background())

	assert.Equal(t, 0, src.unsubscribeCount())
	src.emit(auth.State{})
	assert.Equal(t, StatusLoading, view.Status())
}

func TestView_WithAuthClient(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret-at-least-32-chars-long-for-security", "test", time.Hour)
	client := auth.NewClient(tokens, nil, "/login", zap.NewNop())

	view := newTestView(client, &fakeRecords{}, nil)
	view.Mount(context.Background())
	defer view.Unmount()

	assert.Equal(t, StatusLoading, view.Status())
	<-client.Start(context.Background(), "")
	<-view.Settled()
	assert.Equal(t, StatusUnauthenticated, view.Status())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "a", displayName("a@b.com"))
	assert.Equal(t, "jane.doe", displayName("jane.doe@example.org"))
	assert.Equal(t, "User", displayName(""))
	assert.Equal(t, "User", displayName("@b.com"))
	assert.Equal(t, "plain", displayName("plain"))
}

type blockingRecords struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingRecords) ListRecords(ctx context.Context, _ string, _ int) ([]domain.HealthRecord, error) {
	close(b.started)
	<-b.release
	return nil, nil
}

func TestView_UnmountWhileReplayIsPending(t *testing.T) {
	src := newFakeSource(auth.State{User: &auth.User{ID: "u1", Email: "a@b.com"}})
	records := &blockingRecords{started: make(chan struct{}), release: make(chan struct{})}
	view := newTestView(src, records, nil)

	mounted := make(chan struct{})
	go func() {
		defer close(mounted)
		view.Mount(context.Background())
	}()

	<-records.started
	view.Unmount()
	assert.Equal(t, 0, src.unsubscribeCount())

	close(records.release)
	<-mounted

	assert.Equal(t, 1, src.unsubscribeCount())
	src.mu.Lock()
	assert.Empty(t, src.listeners)
	src.mu.Unlock()
	assert.Empty(t, view.Insights())
}
