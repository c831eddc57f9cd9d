package client_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoboard/auth"
	"todoboard/client"
	todocontroller "todoboard/controller/todo"
	usercontroller "todoboard/controller/user"
	"todoboard/dto"
	"todoboard/model"
	"todoboard/services"
)

type stubVerifier struct {
	tokens map[string]string
}

func (v stubVerifier) Verify(ctx context.Context, token string) (auth.Identity, error) {
	uid, ok := v.tokens[token]
	if !ok {
		return auth.Identity{}, errors.New("unknown token")
	}
	return auth.Identity{UID: uid}, nil
}

func newTestBoard(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := services.NewMemoryTodoStore()
	verifier := stubVerifier{tokens: map[string]string{
		"token-u1": "u1",
		"token-u2": "u2",
	}}
	directory := auth.NewStaticDirectory([]model.AppUser{
		{UID: "u1", Email: "u1@example.com"},
		{UID: "u2", Email: "u2@example.com"},
	})

	router := gin.New()
	todocontroller.TodoController(router, services.NewTodoService(store), verifier)
	usercontroller.UserController(router, directory, verifier)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestControllerLoadAndCreate(t *testing.T) {
	server := newTestBoard(t)
	ctx := context.Background()

	ctl := client.NewController(client.NewAPIClient(server.URL, "token-u1"))
	require.NoError(t, ctl.Load(ctx))
	assert.Empty(t, ctl.Todos())
	assert.Len(t, ctl.Users(), 2)

	require.NoError(t, ctl.Create(ctx, dto.CreateTodoRequest{Title: "first"}))
	require.NoError(t, ctl.Create(ctx, dto.CreateTodoRequest{Title: "second"}))

	todos := ctl.Todos()
	require.Len(t, todos, 2)
	assert.Equal(t, "second", todos[0].Title, "confirmed creates are prepended")
	assert.Equal(t, "first", todos[1].Title)
	assert.Empty(t, ctl.Err())
}

func TestControllerUpdateReplacesConfirmedState(t *testing.T) {
	server := newTestBoard(t)
	ctx := context.Background()

	ctl := client.NewController(client.NewAPIClient(server.URL, "token-u1"))
	require.NoError(t, ctl.Load(ctx))
	require.NoError(t, ctl.Create(ctx, dto.CreateTodoRequest{Title: "task"}))

	id := ctl.Todos()[0].ID
	done := model.StatusDone
	require.NoError(t, ctl.Update(ctx, id, dto.UpdateTodoRequest{Status: &done}))

	todos := ctl.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, model.StatusDone, todos[0].Status)
}

func TestControllerDeleteRemovesLocally(t *testing.T) {
	server := newTestBoard(t)
	ctx := context.Background()

	ctl := client.NewController(client.NewAPIClient(server.URL, "token-u1"))
	require.NoError(t, ctl.Load(ctx))
	require.NoError(t, ctl.Create(ctx, dto.CreateTodoRequest{Title: "doomed"}))
	require.NoError(t, ctl.Create(ctx, dto.CreateTodoRequest{Title: "kept"}))

	doomed := ctl.Todos()[1]
	require.NoError(t, ctl.Delete(ctx, doomed.ID))

	todos := ctl.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, "kept", todos[0].Title)
}

func TestControllerFailureLeavesStateUntouched(t *testing.T) {
	server := newTestBoard(t)
	ctx := context.Background()

	ctl := client.NewController(client.NewAPIClient(server.URL, "token-u1"))
	require.NoError(t, ctl.Load(ctx))
	require.NoError(t, ctl.Create(ctx, dto.CreateTodoRequest{Title: "existing"}))
	before := ctl.Todos()

	err := ctl.Create(ctx, dto.CreateTodoRequest{Title: ""})
	require.Error(t, err)
	assert.Equal(t, "Title is required", ctl.Err())
	assert.Equal(t, before, ctl.Todos(), "nothing is applied before confirmation")

	ctl.ClearErr()
	assert.Empty(t, ctl.Err())
}

func TestControllerForbiddenUpdateSurfacesError(t *testing.T) {
	server := newTestBoard(t)
	ctx := context.Background()

	owner := client.NewController(client.NewAPIClient(server.URL, "token-u1"))
	require.NoError(t, owner.Load(ctx))
	require.NoError(t, owner.Create(ctx, dto.CreateTodoRequest{Title: "shared", AssigneeIDs: []string{"u2"}}))
	id := owner.Todos()[0].ID

	assignee := client.NewController(client.NewAPIClient(server.URL, "token-u2"))
	require.NoError(t, assignee.Load(ctx))

	reassigned := []string{"u2"}
	err := assignee.Update(ctx, id, dto.UpdateTodoRequest{AssigneeIDs: &reassigned})
	require.Error(t, err)
	assert.Equal(t, "Only owner can change assignees", assignee.Err())
	assert.Equal(t, []string{"u1", "u2"}, assignee.Todos()[0].VisibleTo)
}

func TestControllerReloadReconciles(t *testing.T) {
	server := newTestBoard(t)
	ctx := context.Background()

	owner := client.NewController(client.NewAPIClient(server.URL, "token-u1"))
	require.NoError(t, owner.Load(ctx))

	other := client.NewController(client.NewAPIClient(server.URL, "token-u2"))
	require.NoError(t, other.Load(ctx))
	require.NoError(t, other.Create(ctx, dto.CreateTodoRequest{Title: "from u2", AssigneeIDs: []string{"u1"}}))

	// The owner's session does not see the new todo until it reloads.
	assert.Empty(t, owner.Todos())
	require.NoError(t, owner.Reload(ctx))
	require.Len(t, owner.Todos(), 1)
	assert.Equal(t, "from u2", owner.Todos()[0].Title)
}
