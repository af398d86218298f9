package models

// RegisterForm represents the registration form submitted to POST /register
type RegisterForm struct {
	Username  string `json:"username"`   // required
	Email     string `json:"email"`      // required
	Password  string `json:"password"`   // required
	FirstName string `json:"first_name"` // optional
	LastName  string `json:"last_name"`  // optional
}

// Valid reports whether all required fields are present.
func (f RegisterForm) Valid() bool {
	return f.Username != "" && f.Email != "" && f.Password != ""
}
