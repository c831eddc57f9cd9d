package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoboard/model"
)

func TestParseStaticUsers(t *testing.T) {
	users := ParseStaticUsers("u1:u1@example.com, u2 ,,u3:u3@example.com")
	assert.Equal(t, []model.AppUser{
		{UID: "u1", Email: "u1@example.com"},
		{UID: "u2"},
		{UID: "u3", Email: "u3@example.com"},
	}, users)

	assert.Empty(t, ParseStaticUsers(""))
}

func TestStaticDirectoryHonorsLimit(t *testing.T) {
	users := make([]model.AppUser, 0, 150)
	for i := 0; i < 150; i++ {
		users = append(users, model.AppUser{UID: string(rune('a' + i%26))})
	}
	directory := NewStaticDirectory(users)

	listed, err := directory.ListUsers(context.Background(), 100)
	require.NoError(t, err)
	assert.Len(t, listed, 100)
}
