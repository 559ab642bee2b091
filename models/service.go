package models

import (
	"gorm.io/gorm"
)

// DefaultServiceID is assigned when staff create an appointment without
// picking a service (the seeded general consultation).
const DefaultServiceID uint = 1

type Service struct {
	gorm.Model
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes" gorm:"default:30"`
	IsActive        bool    `json:"is_active" gorm:"default:true"`
}
