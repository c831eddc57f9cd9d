package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// HMACVerifier accepts HS256 tokens signed with a shared secret. It
// stands in for the identity provider when running without Firebase
// credentials (AUTH_MODE=hmac); the uid is the "sub" claim.
type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(secret []byte) *HMACVerifier {
	return &HMACVerifier{secret: secret}
}

func (v *HMACVerifier) Verify(ctx context.Context, tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("token verification failed: %w", err)
	}
	if !token.Valid {
		return Identity{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid token claims")
	}
	uid, ok := claims["sub"].(string)
	if !ok || uid == "" {
		return Identity{}, errors.New("sub claim is missing")
	}

	identity := Identity{UID: uid}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	return identity, nil
}
