package models

// LoginForm represents the login form submitted to POST /login
type LoginForm struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}
