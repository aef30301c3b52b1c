// Package auth resolves a role from a username and password by comparing
// them against a fixed table of configured credential pairs.
package auth

import (
	"errors"
	"strings"

	"posestudio/internal/config"
	"posestudio/internal/types"
)

// ErrMismatch is returned when no configured pair matches. It does not say
// whether the username or the password was wrong.
var ErrMismatch = errors.New("username or password mismatch")

const (
	memberUser     = "member"
	memberPassword = "member"
)

// Pair is one configured username/password and the role it grants.
type Pair struct {
	Username string
	Password string
	Role     types.Role
}

// Table is an ordered list of pairs. Earlier pairs win.
type Table []Pair

// NewTable builds the table in priority order: the configured admin pair,
// the configured user pair, then the built-in member pair.
func NewTable(settings *config.SettingsType) Table {
	return Table{
		{
			Username: settings.Get(config.ADMIN_USERNAME),
			Password: settings.Get(config.ADMIN_PASSWORD),
			Role:     types.RoleAdmin,
		},
		{
			Username: settings.Get(config.USER_USERNAME),
			Password: settings.Get(config.USER_PASSWORD),
			Role:     types.RoleUser,
		},
		{
			Username: memberUser,
			Password: memberPassword,
			Role:     types.RoleUser,
		},
	}
}

// Normalize trims both values and lowercases the username.
func Normalize(username, password string) (string, string) {
	return strings.ToLower(strings.TrimSpace(username)), strings.TrimSpace(password)
}

// Match returns the role of the first pair whose username (case-insensitive)
// and password (exact) equal the normalized input.
func (t Table) Match(username, password string) (types.Role, error) {
	username, password = Normalize(username, password)
	for _, p := range t {
		if username == strings.ToLower(p.Username) && password == p.Password {
			return p.Role, nil
		}
	}
	return "", ErrMismatch
}

