package model

import "time"

// User represents a registered account in the database. The password column
// holds a bcrypt hash, never plaintext.
type User struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Password  string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RegisterRequest represents a user registration request. The dashboard has
// historically sent the display name under either key, so both are accepted.
type RegisterRequest struct {
	Name     string `json:"name"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DisplayName returns the name field, falling back to the userName alias.
func (r RegisterRequest) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.UserName
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents user data safe for API responses (no password hash).
type UserResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// RegisterResponse wraps the created user for the registration endpoint.
type RegisterResponse struct {
	Data RegisterData `json:"data"`
}

type RegisterData struct {
	User    UserResponse `json:"user"`
	Success bool         `json:"success"`
}

// LoginResponse carries the signed token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
