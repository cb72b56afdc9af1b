package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"voltbay-storefront/internal/domain"
	"voltbay-storefront/internal/infrastructure/cache"
	"voltbay-storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthAPI struct {
	user domain.User
}

func (s *stubAuthAPI) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	return &domain.AuthResult{User: s.user, Token: "stub-token"}, nil
}

func (s *stubAuthAPI) Register(ctx context.Context, name, email, password, phone string) (*domain.AuthResult, error) {
	return &domain.AuthResult{User: s.user, Token: "stub-token"}, nil
}

func (s *stubAuthAPI) FetchMe(ctx context.Context, token string) (*domain.User, error) {
	return &s.user, nil
}

type stubCartAPI struct {
	state []domain.ServerCartLine
}

func (s *stubCartAPI) GetCart(ctx context.Context, token string) ([]domain.ServerCartLine, error) {
	return s.state, nil
}

func (s *stubCartAPI) AddCartItem(ctx context.Context, token, productID string, quantity int, variant *domain.Variant) ([]domain.ServerCartLine, error) {
	return s.state, nil
}

func (s *stubCartAPI) UpdateCartItem(ctx context.Context, token, serverLineID string, quantity int) ([]domain.ServerCartLine, error) {
	return s.state, nil
}

func (s *stubCartAPI) RemoveCartItem(ctx context.Context, token, serverLineID string) ([]domain.ServerCartLine, error) {
	return s.state, nil
}

func (s *stubCartAPI) ClearCart(ctx context.Context, token string) ([]domain.ServerCartLine, error) {
	return s.state, nil
}

func newTestManager(t *testing.T, ttl, cleanup time.Duration) (*Manager, *usecase.AuthUsecase) {
	t.Helper()
	authUC := usecase.NewAuthUsecase(&stubAuthAPI{}, cache.NewMemoryCache(time.Minute, time.Hour), time.Minute)
	m := NewManager(
		context.Background(),
		ttl,
		cleanup,
		func() *usecase.CartService { return usecase.NewCartService(&stubCartAPI{}, 1000) },
		authUC,
	)
	t.Cleanup(m.Shutdown)
	return m, authUC
}

func attach(m *Manager, cookie *http.Cookie) (*Session, *httptest.ResponseRecorder) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	if cookie != nil {
		r.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	return m.Attach(w, r), w
}

func TestAttachCreatesSessionAndSetsCookie(t *testing.T) {
	m, _ := newTestManager(t, time.Minute, time.Hour)

	sess, w := attach(m, nil)
	require.NotNil(t, sess)
	require.NotNil(t, sess.Cart)
	require.NotNil(t, sess.Wishlist)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Equal(t, sess.ID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	assert.Equal(t, 1, m.Count())
}

func TestAttachReusesSessionByCookie(t *testing.T) {
	m, _ := newTestManager(t, time.Minute, time.Hour)

	first, w := attach(m, nil)
	cookie := w.Result().Cookies()[0]

	second, w2 := attach(m, cookie)
	assert.Same(t, first, second)
	assert.Empty(t, w2.Result().Cookies(), "no new cookie on a known session")
	assert.Equal(t, 1, m.Count())
}

func TestSessionsAreIsolated(t *testing.T) {
	m, _ := newTestManager(t, time.Minute, time.Hour)

	a, _ := attach(m, nil)
	b, _ := attach(m, nil)
	require.NotEqual(t, a.ID, b.ID)

	a.Wishlist.Toggle("p1")
	assert.False(t, b.Wishlist.Contains("p1"))

	a.Cart.Add(context.Background(), domain.Product{ID: "p1", Price: 10}, nil)
	assert.Empty(t, b.Cart.View().Lines)
}

func TestCleanupEvictsIdleSessions(t *testing.T) {
	m, _ := newTestManager(t, 10*time.Millisecond, time.Hour)

	attach(m, nil)
	require.Equal(t, 1, m.Count())

	time.Sleep(25 * time.Millisecond)
	m.cleanup()

	assert.Equal(t, 0, m.Count())
}

func TestAttachRestoresAuthenticatedCartMode(t *testing.T) {
	m, authUC := newTestManager(t, 10*time.Millisecond, time.Hour)

	sess, w := attach(m, nil)
	cookie := w.Result().Cookies()[0]

	// Log the session in, then let the registry evict it while the cached
	// token outlives the session object.
	_, err := authUC.Login(context.Background(), sess.ID, "a@b.c", "pw")
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)
	m.cleanup()
	require.Equal(t, 0, m.Count())

	restored, _ := attach(m, cookie)
	assert.Equal(t, sess.ID, restored.ID)
	assert.True(t, restored.Cart.View().Authenticated)
}
