package dto

import "todoboard/model"

// CreateTodoRequest is the write schema for POST /todos. The derived and
// server-owned fields (id, ownerId, visibleTo, timestamps) have no place
// here, so a client can never supply them.
type CreateTodoRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Content     string                `json:"content"`
	Type        model.TodoType        `json:"type" binding:"omitempty,oneof=TEXT CHECKLIST"`
	Checklist   []model.ChecklistItem `json:"checklist"`
	Color       string                `json:"color"`
	Labels      []string              `json:"labels"`
	Status      model.TodoStatus      `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS DONE"`
	AssigneeIDs []string              `json:"assigneeIds"`
}

// UpdateTodoRequest is the patch schema for PATCH /todos/:id. Pointer
// fields distinguish "omitted" from "set to zero"; omitted fields leave
// the stored value untouched.
type UpdateTodoRequest struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Content     *string                `json:"content"`
	Type        *model.TodoType        `json:"type" binding:"omitempty,oneof=TEXT CHECKLIST"`
	Checklist   *[]model.ChecklistItem `json:"checklist"`
	Color       *string                `json:"color"`
	Labels      *[]string              `json:"labels"`
	Status      *model.TodoStatus      `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS DONE"`
	AssigneeIDs *[]string              `json:"assigneeIds"`
}
