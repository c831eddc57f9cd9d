package services

import (
	"context"
	"strings"
	"time"

	"todoboard/dto"
	"todoboard/model"
)

// TodoService owns the record lifecycle: input validation, defaulting,
// and recomputation of the derived visibility set. It is policy-agnostic
// about who calls it; the endpoint layer gates permissions before
// invoking Update and Delete.
type TodoService struct {
	store TodoStore
}

func NewTodoService(store TodoStore) *TodoService {
	return &TodoService{store: store}
}

// VisibleTo derives the visibility set from the owner and the assignees:
// owner first, assignee order preserved, duplicates removed.
func VisibleTo(ownerID string, assigneeIDs []string) []string {
	visible := []string{ownerID}
	seen := map[string]bool{ownerID: true}
	for _, id := range assigneeIDs {
		if !seen[id] {
			seen[id] = true
			visible = append(visible, id)
		}
	}
	return visible
}

// List returns the todos visible to userID, most recently created first.
func (s *TodoService) List(ctx context.Context, userID string) ([]*model.Todo, error) {
	return s.store.ListVisibleTo(ctx, userID)
}

// Create validates and defaults the input, derives visibility, and
// persists a new record owned by ownerID.
func (s *TodoService) Create(ctx context.Context, input *dto.CreateTodoRequest, ownerID string) (*model.Todo, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, &ValidationError{Reason: "Title is required"}
	}

	todoType := input.Type
	if todoType == "" {
		todoType = model.TypeText
	}
	if !todoType.Valid() {
		return nil, &ValidationError{Reason: "Invalid type"}
	}

	todoStatus := input.Status
	if todoStatus == "" {
		todoStatus = model.StatusOpen
	}
	if !todoStatus.Valid() {
		return nil, &ValidationError{Reason: "Invalid status"}
	}

	assignees := input.AssigneeIDs
	if assignees == nil {
		assignees = []string{}
	}
	checklist := input.Checklist
	if checklist == nil {
		checklist = []model.ChecklistItem{}
	}
	labels := input.Labels
	if labels == nil {
		labels = []string{}
	}

	now := time.Now().UTC()
	todo := &model.Todo{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		Type:        todoType,
		Checklist:   checklist,
		Color:       input.Color,
		Labels:      labels,
		Status:      todoStatus,
		OwnerID:     ownerID,
		AssigneeIDs: assignees,
		VisibleTo:   VisibleTo(ownerID, assignees),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.store.Create(ctx, todo)
}

// GetByID returns the record or ErrNotFound.
func (s *TodoService) GetByID(ctx context.Context, id string) (*model.Todo, error) {
	return s.store.GetByID(ctx, id)
}

// Update applies the patch to the stored record: provided fields
// overwrite, omitted fields stay. Visibility is recomputed from the
// effective assignee set and the immutable owner, and updatedAt is
// refreshed. Returns ErrNotFound when the id does not exist.
func (s *TodoService) Update(ctx context.Context, id string, patch *dto.UpdateTodoRequest) (*model.Todo, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		existing.Title = *patch.Title
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.Content != nil {
		existing.Content = *patch.Content
	}
	if patch.Type != nil {
		existing.Type = *patch.Type
	}
	if patch.Checklist != nil {
		existing.Checklist = *patch.Checklist
	}
	if patch.Color != nil {
		existing.Color = *patch.Color
	}
	if patch.Labels != nil {
		existing.Labels = *patch.Labels
	}
	if patch.Status != nil {
		existing.Status = *patch.Status
	}
	if patch.AssigneeIDs != nil {
		existing.AssigneeIDs = *patch.AssigneeIDs
	}

	existing.VisibleTo = VisibleTo(existing.OwnerID, existing.AssigneeIDs)
	existing.UpdatedAt = time.Now().UTC()

	if err := s.store.Put(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the record permanently.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
