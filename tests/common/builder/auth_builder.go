//go:build unit || e2e

package builder

import (
	reqdto "catchpac/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "buyer@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO(role string) reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		Name:     "김철수",
		Company:  "한빛정밀",
		Role:     role,
	}
}
