package usecase

import (
	"context"
	"time"
	"voltbay-storefront/internal/domain"
	"voltbay-storefront/pkg/cache"
)

// Fixed storage key prefixes for the cached token and user record. They are
// read at session attach to decide initial authentication state.
const (
	tokenKeyPrefix = "auth:token:"
	userKeyPrefix  = "auth:user:"
)

// AuthUsecase proxies login/register/me to the upstream auth service and
// caches the issued token and user record per session under fixed keys.
type AuthUsecase struct {
	api   domain.AuthAPI
	cache cache.CacheService
	ttl   time.Duration
}

func NewAuthUsecase(api domain.AuthAPI, cacheSvc cache.CacheService, ttl time.Duration) *AuthUsecase {
	return &AuthUsecase{
		api:   api,
		cache: cacheSvc,
		ttl:   ttl,
	}
}

func (u *AuthUsecase) Login(ctx context.Context, sessionID, email, password string) (*domain.AuthResult, error) {
	res, err := u.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	u.store(sessionID, res)
	return res, nil
}

func (u *AuthUsecase) Register(ctx context.Context, sessionID, name, email, password, phone string) (*domain.AuthResult, error) {
	res, err := u.api.Register(ctx, name, email, password, phone)
	if err != nil {
		return nil, err
	}
	u.store(sessionID, res)
	return res, nil
}

func (u *AuthUsecase) Logout(sessionID string) {
	u.cache.Delete(tokenKeyPrefix + sessionID)
	u.cache.Delete(userKeyPrefix + sessionID)
}

// Token returns the cached access token for a session, if any.
func (u *AuthUsecase) Token(sessionID string) (string, bool) {
	val, found := u.cache.Get(tokenKeyPrefix + sessionID)
	if !found {
		return "", false
	}
	token, ok := val.(string)
	return token, ok && token != ""
}

// CachedUser returns the cached user record without an upstream round trip.
func (u *AuthUsecase) CachedUser(sessionID string) (*domain.User, bool) {
	val, found := u.cache.Get(userKeyPrefix + sessionID)
	if !found {
		return nil, false
	}
	user, ok := val.(domain.User)
	if !ok {
		return nil, false
	}
	return &user, true
}

// Me resolves the session's token to a user record via the upstream and
// refreshes the cached copy.
func (u *AuthUsecase) Me(ctx context.Context, sessionID string) (*domain.User, error) {
	token, ok := u.Token(sessionID)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	user, err := u.api.FetchMe(ctx, token)
	if err != nil {
		// Fetch failure: fall back to the cached record when present.
		if cached, found := u.CachedUser(sessionID); found {
			return cached, nil
		}
		return nil, err
	}

	u.cache.Set(userKeyPrefix+sessionID, *user, u.ttl)
	return user, nil
}

func (u *AuthUsecase) store(sessionID string, res *domain.AuthResult) {
	u.cache.Set(tokenKeyPrefix+sessionID, res.Token, u.ttl)
	u.cache.Set(userKeyPrefix+sessionID, res.User, u.ttl)
}
