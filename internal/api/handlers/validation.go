package handlers

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// SignupPayload defines the structure for registration requests. Usernames
// are letters only; passwords must be at least 3 characters.
type SignupPayload struct {
	Username string `json:"username" validate:"required,alpha"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=3"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=3"`
}
