package auth

import (
	"context"
	"sort"
	"sync"

	"github.com/yusufkecer/health-tracker/internal/domain"
	"go.uber.org/zap"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type State struct {
	User      *User `json:"user"`
	IsLoading bool  `json:"isLoading"`
}

type Listener func(State)

// Source is the auth-state stream consumed by views. The returned function
// removes the listener and is safe to call more than once.
type Source interface {
	OnAuthStateChanged(fn Listener) (unsubscribe func())
	LoginURL() string
}

type AccountFinder interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

// Client is a session-scoped Source. It starts loading and settles once
// Resolve or SignOut publishes. Listeners are invoked one at a time and must
// not publish from inside the callback.
type Client struct {
	tokens   *TokenIssuer
	accounts AccountFinder
	loginURL string
	logger   *zap.Logger

	emitMu sync.Mutex

	mu        sync.Mutex
	state     State
	listeners map[int]Listener
	nextID    int
}

var _ Source = (*Client)(nil)

func NewClient(tokens *TokenIssuer, accounts AccountFinder, loginURL string, logger *zap.Logger) *Client {
	return &Client{
		tokens:    tokens,
		accounts:  accounts,
		loginURL:  loginURL,
		logger:    logger,
		state:     State{IsLoading: true},
		listeners: make(map[int]Listener),
	}
}

// OnAuthStateChanged registers fn and immediately delivers the current state.
func (c *Client) OnAuthStateChanged(fn Listener) func() {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	current := c.state
	c.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

func (c *Client) LoginURL() string {
	return c.loginURL
}

func (c *Client) Current() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start resolves token on its own goroutine. The returned channel closes
// once the resulting state has been delivered.
func (c *Client) Start(ctx context.Context, token string) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Resolve(ctx, token)
	}()
	return done
}

// Resolve turns a session token into a settled state. Tokens that fail to
// parse or name an unknown account settle as signed out.
func (c *Client) Resolve(ctx context.Context, token string) {
	user, err := c.resolveUser(ctx, token)
	if err != nil {
		c.logger.Debug("session not resolved", zap.Error(err))
	}
	c.publish(State{User: user})
}

func (c *Client) SignOut() {
	c.publish(State{})
}

func (c *Client) resolveUser(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, nil
	}
	claimed, err := c.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	account, err := c.accounts.GetByID(ctx, claimed.ID)
	if err != nil {
		return nil, err
	}
	return &User{ID: account.ID, Email: account.Email}, nil
}

func (c *Client) publish(s State) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	c.state = s
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	c.mu.Unlock()
	sort.Ints(ids)

	for _, id := range ids {
		c.mu.Lock()
		fn, ok := c.listeners[id]
		c.mu.Unlock()
		if ok {
			fn(s)
		}
	}
}
