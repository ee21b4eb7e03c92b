package user

import (
	"fmt"
	"strings"
	"time"
)

// Role is the board role of a user.
type Role string

const (
	RoleMember  Role = "MEMBER"
	RoleManager Role = "MANAGER"
)

// ParseRole normalizes client input ("manager", " Member ") to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleMember, RoleManager:
		return r, nil
	}
	return "", fmt.Errorf("invalid role %q: expected one of MEMBER, MANAGER", s)
}

// User is an identity record. Email and wallet address are unique when present.
type User struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Email         *string   `gorm:"uniqueIndex" json:"email"`
	Avatar        *string   `json:"avatar"`
	WalletAddress *string   `gorm:"uniqueIndex" json:"walletAddress"`
	Role          Role      `gorm:"type:varchar(16);not null;default:MEMBER" json:"role"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }
