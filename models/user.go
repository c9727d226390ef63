// models/user.go
package models

import (
	"time"
)

// User roles
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null;size:100" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:'user';size:20" json:"role"`
	Avatar   string `json:"avatar"`

	// Progression. XP only ever grows; it is credited exclusively by the
	// daily challenge submission processor, in the same transaction as the
	// streak update.
	XP int `gorm:"default:0" json:"xp"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	Results []Result `gorm:"foreignKey:UserID" json:"results,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsStaff reports whether the user may access the admin console.
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
