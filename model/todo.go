package model

import (
	"time"

	"github.com/google/uuid"
)

type TodoStatus string

const (
	StatusOpen       TodoStatus = "OPEN"
	StatusInProgress TodoStatus = "IN_PROGRESS"
	StatusDone       TodoStatus = "DONE"
)

func (s TodoStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type TodoType string

const (
	TypeText      TodoType = "TEXT"
	TypeChecklist TodoType = "CHECKLIST"
)

func (t TodoType) Valid() bool {
	return t == TypeText || t == TypeChecklist
}

type ChecklistItem struct {
	ID      string `firestore:"id" json:"id"`
	Text    string `firestore:"text" json:"text"`
	Checked bool   `firestore:"checked" json:"checked"`
}

// NewChecklistItem returns an unchecked item with a fresh id.
func NewChecklistItem(text string) ChecklistItem {
	return ChecklistItem{ID: uuid.New().String(), Text: text}
}

// Todo is one note or checklist on the board. The document id is kept
// outside the stored fields; the store fills it in on reads and creates.
// VisibleTo is derived from OwnerID and AssigneeIDs on every write and is
// never taken from a client.
type Todo struct {
	ID          string          `firestore:"-" json:"id"`
	Title       string          `firestore:"title" json:"title"`
	Description string          `firestore:"description" json:"description"`
	Content     string          `firestore:"content" json:"content"`
	Type        TodoType        `firestore:"type" json:"type"`
	Checklist   []ChecklistItem `firestore:"checklist" json:"checklist"`
	Color       string          `firestore:"color" json:"color,omitempty"`
	Labels      []string        `firestore:"labels" json:"labels"`
	Status      TodoStatus      `firestore:"status" json:"status"`
	OwnerID     string          `firestore:"ownerId" json:"ownerId"`
	AssigneeIDs []string        `firestore:"assigneeIds" json:"assigneeIds"`
	VisibleTo   []string        `firestore:"visibleTo" json:"visibleTo"`
	CreatedAt   time.Time       `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `firestore:"updatedAt" json:"updatedAt"`
}

// IsOwner reports whether uid created this todo.
func (t *Todo) IsOwner(uid string) bool {
	return t.OwnerID == uid
}

// IsAssignee reports whether uid has been granted edit access.
func (t *Todo) IsAssignee(uid string) bool {
	for _, id := range t.AssigneeIDs {
		if id == uid {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the todo.
func (t *Todo) Clone() *Todo {
	c := *t
	if t.Checklist != nil {
		c.Checklist = append([]ChecklistItem{}, t.Checklist...)
	}
	if t.Labels != nil {
		c.Labels = append([]string{}, t.Labels...)
	}
	if t.AssigneeIDs != nil {
		c.AssigneeIDs = append([]string{}, t.AssigneeIDs...)
	}
	if t.VisibleTo != nil {
		c.VisibleTo = append([]string{}, t.VisibleTo...)
	}
	return &c
}
