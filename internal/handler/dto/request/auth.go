package request

import (
	"gym-booking/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r LoginRequest) NormalizedEmail() (string, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return "", err
	}
	return email.String(), nil
}
