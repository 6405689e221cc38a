package request

import (
	"catchpac/internal/domain/user"
	"catchpac/internal/usecase/commands"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (r *RegisterRequest) ToParams() commands.RegisterParams {
	return commands.RegisterParams{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Company:  r.Company,
		Role:     r.Role,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}
