package core

import "time"

// UserRecord is the public shape of a user. Salt and password hash never
// leave the repository layer.
type UserRecord struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TodoRecord struct {
	ID        uint      `json:"id"`
	Task      string    `json:"task"`
	Completed bool      `json:"completed"`
	Owner     uint      `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TodoSummary is the reduced shape served by the public unscoped listing.
type TodoSummary struct {
	ID        uint   `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

type RegisterMessage struct {
	Username string
	Email    string
	Password string
}

type AuthMessage struct {
	Username string // username or email
	Password string
}

type CreateTodoMessage struct {
	Task      string
	Completed bool
}

// TodoPatch carries a partial update; nil fields keep the stored value.
type TodoPatch struct {
	Task      *string
	Completed *bool
}
