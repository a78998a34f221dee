// Package session keeps per-browser-session state: the signed-in user and
// the cached search result window. State is held in memory only and expires
// with the session, nothing here is shared across sessions.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/umputun/mealscope/pkg/domain"
)

// Session is the state for one browser session. All methods are safe for
// concurrent use, two tabs sharing a cookie mutate the same window without
// corrupting it.
type Session struct {
	userID    int64
	createdAt time.Time

	mu     sync.Mutex
	window ResultWindow
}

// UserID returns the signed-in user for this session
func (s *Session) UserID() int64 { return s.userID }

// NeedsRefresh reports whether the result window has to be re-fetched for
// the given filter signature, either because nothing is loaded yet or the
// effective filter changed.
func (s *Session) NeedsRefresh(signature string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.window.Matches(signature)
}

// Replace swaps in a fresh result set for the given filter signature,
// resetting the cursor to the first page
func (s *Session) Replace(results []domain.RecipeSummary, signature string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window.Replace(results, signature)
}

// Navigate moves the window cursor one page in the given direction.
// Anything besides "next" and "back" is ignored.
func (s *Session) Navigate(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch dir {
	case "next":
		s.window.Next()
	case "back":
		s.window.Back()
	}
}

// PageInfo describes the current page of the window for rendering
type PageInfo struct {
	Recipes []domain.RecipeSummary
	HasNext bool
	HasPrev bool
	Cursor  int
	Total   int
}

// Page returns the current page and navigation state
func (s *Session) Page() PageInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return PageInfo{
		Recipes: s.window.Page(),
		HasNext: s.window.HasNext(),
		HasPrev: s.window.HasPrev(),
		Cursor:  s.window.Cursor(),
		Total:   s.window.Total(),
	}
}

// Manager tracks active sessions by opaque token. Sessions expire after the
// configured TTL, expired entries are purged opportunistically on Create.
type Manager struct {
	ttl      time.Duration
	pageSize int
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a session manager. Zero ttl defaults to 24 hours,
// pageSize below 1 defaults to 1.
func NewManager(ttl time.Duration, pageSize int) *Manager {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		ttl:      ttl,
		pageSize: pageSize,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session for the user and returns its token
func (m *Manager) Create(userID int64) (token string, s *Session) {
	token = uuid.NewString()
	s = &Session{
		userID:    userID,
		createdAt: m.now(),
		window:    NewResultWindow(m.pageSize),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeExpiredLocked()
	m.sessions[token] = s
	return token, s
}

// Get returns the session for a token, or false if unknown or expired
func (m *Manager) Get(token string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.now().Sub(s.createdAt) > m.ttl {
		m.Delete(token)
		return nil, false
	}
	return s, true
}

// Delete drops a session, used on sign-out
func (m *Manager) Delete(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

// Count returns the number of tracked sessions, expired included
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) purgeExpiredLocked() {
	cutoff := m.now().Add(-m.ttl)
	for token, s := range m.sessions {
		if s.createdAt.Before(cutoff) {
			delete(m.sessions, token)
		}
	}
}
