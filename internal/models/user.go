package models

import "time"

// Supported user roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	FirstName    string    `json:"first_name" db:"first_name"` // Optional first name
	LastName     string    `json:"last_name" db:"last_name"`   // Optional last name
	Role         string    `json:"role" db:"role"`             // user or admin
	IsActive     bool      `json:"is_active" db:"is_active"`   // Inactive accounts cannot log in
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// User is the public view of a user record, without the password hash.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// NewUser carries the columns written when a user is inserted.
type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
}
