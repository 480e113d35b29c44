package entity

import "fmt"

// Role is the closed set of authorisation tiers a credential can hold.
type Role string

const (
	// RoleUser is assigned to every account at registration.
	RoleUser Role = "user"

	// RoleAdmin unlocks administrative operations such as listing all customers.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a raw claim or column value into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
