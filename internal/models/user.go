package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"_id"`

	Name         string `gorm:"size:50;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone,omitempty"`
	Role         string `gorm:"size:20;not null;default:'user'" json:"role"`
	Bio          string `gorm:"size:500" json:"bio,omitempty"`
	Avatar       string `gorm:"size:500" json:"avatar,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	u.ID = EnsureID(u.ID)
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// EnsureID returns id unchanged, or a fresh UUID when it is empty.
func EnsureID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}
