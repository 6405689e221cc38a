package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account on the marketplace. Buyers post quote requests,
// sellers answer them. The admin flag is only ever set by the setadmin CLI.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	name         string
	company      string
	role         Role
	isAdmin      bool
	createdAt    time.Time
}

func NewUser(email Email, passwordHash, name, company string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	company = strings.TrimSpace(company)
	if company == "" {
		return nil, ErrEmptyCompany
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		company:      company,
		role:         role,
	}, nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Name() string         { return u.name }
func (u *User) Company() string      { return u.company }
func (u *User) Role() Role           { return u.role }
func (u *User) IsAdmin() bool        { return u.isAdmin }
func (u *User) CreatedAt() time.Time { return u.createdAt }
