// Package auth is the boundary to the external identity provider: bearer
// token verification and the account directory used for assignment.
package auth

import (
	"context"

	"todoboard/model"
)

// Identity is a verified identity-provider account.
type Identity struct {
	UID   string
	Email string
}

// TokenVerifier checks a bearer token and returns the identity it proves.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// UserDirectory lists known identity-provider accounts, up to limit.
type UserDirectory interface {
	ListUsers(ctx context.Context, limit int) ([]model.AppUser, error)
}
