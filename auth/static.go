package auth

import (
	"context"
	"strings"

	"todoboard/model"
)

// StaticDirectory serves a fixed account list, so assignment pickers
// work in dev mode without a provider round-trip.
type StaticDirectory struct {
	users []model.AppUser
}

func NewStaticDirectory(users []model.AppUser) *StaticDirectory {
	return &StaticDirectory{users: users}
}

func (d *StaticDirectory) ListUsers(ctx context.Context, limit int) ([]model.AppUser, error) {
	users := d.users
	if len(users) > limit {
		users = users[:limit]
	}
	return append([]model.AppUser{}, users...), nil
}

// ParseStaticUsers parses the DEV_USERS format: comma-separated
// "uid:email" pairs, the email optional ("u1:u1@example.com,u2").
func ParseStaticUsers(raw string) []model.AppUser {
	users := []model.AppUser{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		uid, email, _ := strings.Cut(pair, ":")
		users = append(users, model.AppUser{UID: uid, Email: email})
	}
	return users
}
