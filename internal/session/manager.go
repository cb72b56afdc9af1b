// Package session keys browser sessions to their service objects. Each session
// owns one cart and one wishlist; the registry evicts idle sessions on a TTL.
package session

import (
	"context"
	"net/http"
	"sync"
	"time"
	"voltbay-storefront/internal/usecase"
	"voltbay-storefront/pkg/logger"

	"github.com/google/uuid"
)

const cookieName = "sid"

// Session holds the per-browser service objects.
type Session struct {
	ID       string
	Cart     *usecase.CartService
	Wishlist *usecase.WishlistService

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Manager is the cookie-keyed session registry with background TTL cleanup.
type Manager struct {
	mu            sync.Mutex
	sessions      map[string]*Session
	ttl           time.Duration
	cleanupPeriod time.Duration
	ctx           context.Context
	cancel        context.CancelFunc

	newCart func() *usecase.CartService
	auth    *usecase.AuthUsecase
}

// NewManager creates a session registry and starts its cleanup goroutine.
// newCart builds a fresh cart service for each new session; auth is consulted
// at attach time to restore a previously authenticated session.
func NewManager(ctx context.Context, ttl, cleanupPeriod time.Duration, newCart func() *usecase.CartService, auth *usecase.AuthUsecase) *Manager {
	m := &Manager{
		sessions:      make(map[string]*Session),
		ttl:           ttl,
		cleanupPeriod: cleanupPeriod,
		newCart:       newCart,
		auth:          auth,
	}
	m.ctx, m.cancel = context.WithCancel(ctx)
	go m.cleanupLoop()
	return m
}

// Attach resolves the request's session, creating one (and setting the cookie)
// when absent. A recreated session whose cached token survived the eviction
// re-enters authenticated cart mode immediately.
func (m *Manager) Attach(w http.ResponseWriter, r *http.Request) *Session {
	sid := ""
	if cookie, err := r.Cookie(cookieName); err == nil {
		sid = cookie.Value
	}

	if sid != "" {
		m.mu.Lock()
		if sess, ok := m.sessions[sid]; ok {
			m.mu.Unlock()
			sess.touch()
			return sess
		}
		m.mu.Unlock()
	}

	if sid == "" {
		sid = uuid.New().String()
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	sess := &Session{
		ID:       sid,
		Cart:     m.newCart(),
		Wishlist: usecase.NewWishlistService(),
		lastSeen: time.Now(),
	}

	m.mu.Lock()
	// Another request may have raced us; keep the registered one.
	if existing, ok := m.sessions[sid]; ok {
		m.mu.Unlock()
		existing.touch()
		return existing
	}
	m.sessions[sid] = sess
	m.mu.Unlock()

	if token, ok := m.auth.Token(sid); ok {
		sess.Cart.Authenticate(r.Context(), token)
		logger.Debug().Str("session_id", sid).Msg("Session restored to authenticated cart mode")
	}

	return sess
}

// Count reports the live session count.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) cleanupLoop() {
	ticker := time.NewTicker(m.cleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.ctx.Done():
			return // Graceful shutdown
		}
	}
}

func (m *Manager) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for sid, sess := range m.sessions {
		if time.Since(sess.idleSince()) > m.ttl {
			delete(m.sessions, sid)
		}
	}
}

// Shutdown gracefully stops the cleanup goroutine.
func (m *Manager) Shutdown() {
	m.cancel()
}
