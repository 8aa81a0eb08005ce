package role

import (
	"errors"
	"strings"
)

// AdminName is compared case-sensitively; "Admin" is not an admin role.
const AdminName = "admin"

var ErrEmptyName = errors.New("role name is required")

type Role struct {
	ID   int64
	Name string
}

func NewRole(name string) (*Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Role{Name: name}, nil
}

func IsAdminName(name string) bool {
	return name == AdminName
}
