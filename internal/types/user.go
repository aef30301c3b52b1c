package types

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the access level granted by a successful login.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleUser:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

func (r Role) String() string {
	return string(r)
}

// User is what the caller keeps once the login view hands over a role.
type User struct {
	Name string
	Role Role
}

func NewUser(name string, role Role) (*User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, string(role))
	}
	return &User{Name: name, Role: role}, nil
}

func (u *User) GetName() string {
	return u.Name
}

func (u *User) GetRole() Role {
	return u.Role
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
