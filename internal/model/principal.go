package model

import "github.com/google/uuid"

type Role string

const (
	RoleManager    Role = "manager"
	RoleDispatcher Role = "dispatcher"
	RoleSafety     Role = "safety"
	RoleFinance    Role = "finance"
)

// Principal is the authenticated caller extracted from the access token.
type Principal struct {
	UserID uuid.UUID `json:"userId"`
	Name   string    `json:"name"`
	Role   Role      `json:"role"`
}

func (p Principal) HasAnyRole(roles ...Role) bool {
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}
