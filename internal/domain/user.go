package domain

import (
	"context"
	"errors"
)

// ErrNotAuthenticated marks operations that require a logged-in session.
var ErrNotAuthenticated = errors.New("not authenticated")

type ContextKey string

const SessionContextKey ContextKey = "session"

// Roles issued by the upstream auth service
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

// AuthResult is what the upstream returns on login/register.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// AuthAPI is the upstream collaborator for authentication.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, name, email, password, phone string) (*AuthResult, error)
	FetchMe(ctx context.Context, token string) (*User, error)
}

// AdminAnalytics is the read-only back-office dashboard payload, proxied
// verbatim from the upstream.
type AdminAnalytics struct {
	Stats        map[string]interface{}   `json:"stats"`
	SalesData    []map[string]interface{} `json:"salesData"`
	RecentOrders []map[string]interface{} `json:"recentOrders"`
}

// AdminAPI is the upstream collaborator for admin-only reads.
type AdminAPI interface {
	FetchAdminAnalytics(ctx context.Context, token string) (*AdminAnalytics, error)
}
