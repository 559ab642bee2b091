package models

import (
	"time"

	"gorm.io/gorm"
)

// Schedule is a doctor's recurring weekly availability window for one
// day of the week. Times use the 24h "HH:MM" format.
type Schedule struct {
	gorm.Model
	DoctorID        uint         `json:"doctor_id"`
	Doctor          Doctor       `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	DayOfWeek       time.Weekday `json:"day_of_week"`
	StartTime       string       `json:"start_time"`
	EndTime         string       `json:"end_time"`
	MaxAppointments int          `json:"max_appointments" gorm:"default:10"`
	IsActive        bool         `json:"is_active" gorm:"default:true"`
}
