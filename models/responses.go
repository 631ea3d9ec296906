package models

// TaskResponse is the wire shape returned by every task read.
type TaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	DueDate     LocalTime `json:"dueDate"`
	IsCompleted bool      `json:"isCompleted"`
}

// NewTaskResponse maps a stored task onto the wire shape.
func NewTaskResponse(t *Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		DueDate:     t.DueDate,
		IsCompleted: t.IsCompleted,
	}
}

// UserResponse mirrors the auth contract; unused until authentication lands.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}
