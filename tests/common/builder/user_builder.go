//go:build unit || e2e

package builder

import (
	"catchpac/internal/domain/user"
	"catchpac/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	Name         string
	Company      string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "buyer@example.com",
		PasswordHash: "hashed_password",
		Name:         "김철수",
		Company:      "한빛정밀",
		Role:         "BUYER",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithCompany(company string) *UserBuilder {
	u.Company = company
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, u.Name, u.Company, role)
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:      uuid.New(),
		Email:   u.Email,
		Name:    u.Name,
		Company: u.Company,
		Role:    u.Role,
	}
}
