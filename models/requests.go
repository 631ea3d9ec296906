package models

// TaskRequest is the wire shape for create and update. On create, Category
// and IsCompleted are accepted but ignored: the enhancement gateway assigns
// the category and new tasks always start incomplete.
type TaskRequest struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	DueDate     LocalTime `json:"dueDate"`
	IsCompleted bool      `json:"isCompleted"`
}

// Auth request shapes. No endpoint uses these yet; they define the contract
// for when authentication replaces the placeholder user.
type UserLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserRegistrationRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
