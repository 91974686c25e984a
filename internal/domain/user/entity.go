// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(strings.ToLower(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", ErrInvalidRole
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CreatedAt int64  `json:"createdAt"`
}

var (
	ErrInvalidID    = errors.New("user: invalid id")
	ErrInvalidRole  = errors.New("user: invalid role")
	ErrNotFound     = errors.New("user: not found")
	ErrSelfDemotion = errors.New("user: cannot demote yourself")
	ErrSelfDeletion = errors.New("user: cannot delete yourself")
)
