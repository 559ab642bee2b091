package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Email      string         `json:"email" gorm:"unique"`
	Password   string         `json:"password,omitempty"`
	Phone      string         `json:"phone"`
	PictureURL string         `json:"picture_url"`
	RoleID     uint           `json:"role_id"`
	Role       Role           `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	IsApproved bool           `json:"is_approved"`
	IsActive   bool           `json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// VisibleUsers narrows a query to accounts that may log in and appear
// in patient lists. Soft-deleted rows are already excluded by gorm.
func VisibleUsers(tx *gorm.DB) *gorm.DB {
	return tx.Where("is_approved = ? AND is_active = ?", true, true)
}
