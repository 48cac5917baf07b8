package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a cashier identity used for bill attribution. A user may
// optionally carry a credential (username + password hash) for login.
type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name       string     `gorm:"size:255;not null" json:"name"`
	Username   *string    `gorm:"size:100;uniqueIndex" json:"username,omitempty"`
	Password   string     `gorm:"size:255" json:"-"`
	Role       string     `gorm:"size:50;not null;default:cashier" json:"role"`
	AddedAt    time.Time  `gorm:"column:added_at;autoCreateTime" json:"added_at"`
	ModifiedAt *time.Time `gorm:"column:modified_at" json:"modified_at,omitempty"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// HasCredential reports whether the user can log in
func (u *User) HasCredential() bool {
	return u.Username != nil && u.Password != ""
}
