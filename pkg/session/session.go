// Package session keeps the signed-in state of a client of the clinic API:
// tokens and user profile, persisted between runs and refreshed on a timer.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultRefreshInterval = 15 * time.Minute
	defaultCallTimeout     = 10 * time.Second
)

type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

type Token struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// State is a snapshot of the session. Error holds the last login or refresh
// failure message until ClearError or the next attempt.
type State struct {
	User            *User
	Token           *Token
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// UserPatch carries the profile fields to overwrite; nil fields are kept.
type UserPatch struct {
	Email    *string
	Username *string
	Name     *string
	Lastname *string
}

type Config struct {
	RefreshInterval time.Duration
	AutoRefresh     bool
}

type Manager struct {
	mu            sync.Mutex
	state         State
	provider      Provider
	storage       Storage
	log           logrus.FieldLogger
	interval      time.Duration
	autoRefresh   bool
	cancelRefresh context.CancelFunc
	wg            sync.WaitGroup
}

func NewManager(provider Provider, storage Storage, log logrus.FieldLogger, cfg Config) *Manager {
	interval := cfg.RefreshInterval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Manager{
		provider:    provider,
		storage:     storage,
		log:         log,
		interval:    interval,
		autoRefresh: cfg.AutoRefresh,
	}
}

// State returns a copy of the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.state
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	if s.Token != nil {
		t := *s.Token
		s.Token = &t
	}
	return s
}

// Login authenticates with the provider. Failures are reported through
// State().Error and a false return.
func (m *Manager) Login(ctx context.Context, email, password string) bool {
	m.mu.Lock()
	m.state.IsLoading = true
	m.state.Error = ""
	m.mu.Unlock()

	token, user, err := m.provider.Login(ctx, email, password)
	if err != nil {
		m.log.WithError(err).Warn("Login failed")
		m.mu.Lock()
		m.state.IsLoading = false
		m.state.Error = errorMessage(err, "Login failed")
		m.mu.Unlock()
		return false
	}

	m.persist(&Persisted{Token: token, User: user})

	m.mu.Lock()
	m.state = State{User: user, Token: token, IsAuthenticated: true}
	m.mu.Unlock()

	m.startRefresh()
	return true
}

// Logout drops the local session immediately. The provider is told in the
// background and its outcome is ignored.
func (m *Manager) Logout() {
	m.mu.Lock()
	token := m.state.Token
	m.state = State{}
	cancel := m.cancelRefresh
	m.cancelRefresh = nil
	m.mu.Unlock()

	m.teardown(token, cancel)
}

// expire ends the session only if it still holds token.
func (m *Manager) expire(token *Token, message string) bool {
	m.mu.Lock()
	if m.state.Token != token {
		m.mu.Unlock()
		return false
	}
	m.state = State{Error: message}
	cancel := m.cancelRefresh
	m.cancelRefresh = nil
	m.mu.Unlock()

	m.teardown(token, cancel)
	return true
}

func (m *Manager) teardown(token *Token, cancel context.CancelFunc) {
	if cancel != nil {
		cancel()
	}

	if err := m.storage.Clear(); err != nil {
		m.log.WithError(err).Warn("Failed to clear session storage")
	}

	if token == nil {
		return
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), defaultCallTimeout)
		defer cancel()
		if err := m.provider.Logout(ctx, token); err != nil {
			m.log.WithError(err).Debug("Provider logout failed")
		}
	}()
}

// RefreshToken swaps the current token for a new one. Any failure ends the session.
func (m *Manager) RefreshToken(ctx context.Context) bool {
	m.mu.Lock()
	current := m.state.Token
	m.mu.Unlock()

	if current == nil {
		return false
	}

	token, user, err := m.provider.Refresh(ctx, current)
	if err != nil {
		// a refresh that outlived its session must not end the next one
		if m.expire(current, errorMessage(err, "Session expired")) {
			m.log.WithError(err).Warn("Token refresh failed")
		}
		return false
	}

	m.mu.Lock()
	if m.state.Token != current {
		// logged out or replaced while the call was in flight
		m.mu.Unlock()
		return false
	}
	m.state.Token = token
	if user != nil {
		m.state.User = user
	}
	snapshot := &Persisted{Token: token, User: m.state.User}
	m.mu.Unlock()

	m.persist(snapshot)
	return true
}

// RestoreSession resumes a persisted session if the provider still accepts its
// token. An unusable session is cleared.
func (m *Manager) RestoreSession(ctx context.Context) {
	m.mu.Lock()
	m.state.IsLoading = true
	m.mu.Unlock()

	stored, err := m.storage.Load()
	if err != nil {
		m.log.WithError(err).Warn("Failed to read stored session")
	}
	if err != nil || stored == nil || stored.Token == nil {
		m.reset()
		return
	}

	valid, user, err := m.provider.Verify(ctx, stored.Token)
	if err != nil {
		m.log.WithError(err).Warn("Failed to verify stored session")
	}
	if err != nil || !valid {
		m.reset()
		return
	}

	if user == nil {
		user = stored.User
	} else {
		m.persist(&Persisted{Token: stored.Token, User: user})
	}

	m.mu.Lock()
	m.state = State{User: user, Token: stored.Token, IsAuthenticated: true}
	m.mu.Unlock()

	m.startRefresh()
}

func (m *Manager) UpdateUser(patch UserPatch) {
	m.mu.Lock()
	if m.state.User == nil {
		m.mu.Unlock()
		return
	}

	user := *m.state.User
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Lastname != nil {
		user.Lastname = *patch.Lastname
	}
	m.state.User = &user
	snapshot := &Persisted{Token: m.state.Token, User: &user}
	m.mu.Unlock()

	m.persist(snapshot)
}

func (m *Manager) ClearError() {
	m.mu.Lock()
	m.state.Error = ""
	m.mu.Unlock()
}

// Close stops the refresh task and waits for background calls to finish.
// The stored session is kept.
func (m *Manager) Close() {
	m.mu.Lock()
	cancel := m.cancelRefresh
	m.cancelRefresh = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

func (m *Manager) reset() {
	if err := m.storage.Clear(); err != nil {
		m.log.WithError(err).Warn("Failed to clear session storage")
	}
	m.mu.Lock()
	m.state = State{}
	m.mu.Unlock()
}

func (m *Manager) persist(p *Persisted) {
	if err := m.storage.Save(p); err != nil {
		m.log.WithError(err).Warn("Failed to persist session")
	}
}

func (m *Manager) startRefresh() {
	if !m.autoRefresh {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	m.mu.Lock()
	if m.cancelRefresh != nil {
		m.cancelRefresh()
	}
	m.cancelRefresh = cancel
	m.mu.Unlock()

	m.wg.Add(1)
	go m.refreshLoop(ctx)
}

func (m *Manager) refreshLoop(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.mu.Lock()
			authenticated := m.state.IsAuthenticated
			m.mu.Unlock()
			if !authenticated {
				continue
			}

			callCtx, cancel := context.WithTimeout(ctx, defaultCallTimeout)
			m.RefreshToken(callCtx)
			cancel()
		}
	}
}

func errorMessage(err error, fallback string) string {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) && providerErr.Message != "" {
		return providerErr.Message
	}
	return fallback
}
