package client

import (
	"context"
	"sync"

	"todoboard/dto"
	"todoboard/model"
)

// Controller holds the session's view of the board: the visible todos and
// the known users. Local state is mutated only after a round-trip
// confirms success, so it always reflects the last-confirmed server
// state and never runs ahead of it. A failed round-trip records a
// transient error message and leaves the state untouched. Concurrent
// edits from other sessions are reconciled only by Reload.
type Controller struct {
	api *APIClient

	mu    sync.Mutex
	todos []model.Todo
	users []model.AppUser
	err   string
}

func NewController(api *APIClient) *Controller {
	return &Controller{api: api}
}

// Load fetches the todo list and the user directory. A directory failure
// is not fatal: the board is usable without assignment pickers.
func (ctl *Controller) Load(ctx context.Context) error {
	todos, err := ctl.api.ListTodos(ctx)
	if err != nil {
		ctl.setErr(err)
		return err
	}

	users, err := ctl.api.ListUsers(ctx)
	if err != nil {
		users = nil
	}

	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.todos = todos
	ctl.users = users
	ctl.err = ""
	return nil
}

// Reload is the full-refresh reconciliation path.
func (ctl *Controller) Reload(ctx context.Context) error {
	return ctl.Load(ctx)
}

// Create submits a new todo and prepends it once the server confirms.
func (ctl *Controller) Create(ctx context.Context, input dto.CreateTodoRequest) error {
	created, err := ctl.api.CreateTodo(ctx, input)
	if err != nil {
		ctl.setErr(err)
		return err
	}

	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.todos = append([]model.Todo{created}, ctl.todos...)
	ctl.err = ""
	return nil
}

// Update patches a todo and replaces the local copy with the server's
// confirmed record.
func (ctl *Controller) Update(ctx context.Context, id string, patch dto.UpdateTodoRequest) error {
	updated, err := ctl.api.UpdateTodo(ctx, id, patch)
	if err != nil {
		ctl.setErr(err)
		return err
	}

	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	for i := range ctl.todos {
		if ctl.todos[i].ID == id {
			ctl.todos[i] = updated
			break
		}
	}
	ctl.err = ""
	return nil
}

// Delete removes a todo locally once the server confirms the delete.
func (ctl *Controller) Delete(ctx context.Context, id string) error {
	if err := ctl.api.DeleteTodo(ctx, id); err != nil {
		ctl.setErr(err)
		return err
	}

	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	kept := ctl.todos[:0]
	for _, t := range ctl.todos {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	ctl.todos = kept
	ctl.err = ""
	return nil
}

// Todos returns a copy of the confirmed todo list.
func (ctl *Controller) Todos() []model.Todo {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return append([]model.Todo{}, ctl.todos...)
}

// Users returns a copy of the known user list.
func (ctl *Controller) Users() []model.AppUser {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return append([]model.AppUser{}, ctl.users...)
}

// Err returns the message from the last failed round-trip, if any.
func (ctl *Controller) Err() string {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return ctl.err
}

// ClearErr dismisses the transient error message.
func (ctl *Controller) ClearErr() {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.err = ""
}

func (ctl *Controller) setErr(err error) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if apiErr, ok := err.(*APIError); ok {
		ctl.err = apiErr.Message
	} else {
		ctl.err = err.Error()
	}
}
