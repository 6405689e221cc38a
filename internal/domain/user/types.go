package user

type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
