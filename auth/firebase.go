package auth

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/iterator"

	"todoboard/model"
)

// FirebaseVerifier validates Firebase ID tokens.
type FirebaseVerifier struct {
	client *fbauth.Client
}

func NewFirebaseVerifier(client *fbauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return Identity{}, fmt.Errorf("token verification failed: %w", err)
	}

	identity := Identity{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	return identity, nil
}

// FirebaseDirectory projects Firebase accounts to AppUser.
type FirebaseDirectory struct {
	client *fbauth.Client
}

func NewFirebaseDirectory(client *fbauth.Client) *FirebaseDirectory {
	return &FirebaseDirectory{client: client}
}

func (d *FirebaseDirectory) ListUsers(ctx context.Context, limit int) ([]model.AppUser, error) {
	iter := d.client.Users(ctx, "")
	users := []model.AppUser{}
	for len(users) < limit {
		record, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		users = append(users, model.AppUser{
			UID:         record.UID,
			Email:       record.Email,
			DisplayName: record.DisplayName,
			PhotoURL:    record.PhotoURL,
		})
	}
	return users, nil
}
