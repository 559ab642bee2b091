package models

import (
	"time"
)

// ClinicSettings is a singleton row of clinic-wide booking configuration.
type ClinicSettings struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	ClinicName            string    `json:"clinic_name"`
	OpeningTime           string    `json:"opening_time"`
	ClosingTime           string    `json:"closing_time"`
	AppointmentDuration   int       `json:"appointment_duration"`
	MaxAppointmentsPerDay int       `json:"max_appointments_per_day"`
	Holidays              string    `json:"holidays"` // JSON array of dates
	UpdatedAt             time.Time `json:"updated_at"`
}

// DefaultClinicSettings are used when no settings row exists yet.
func DefaultClinicSettings() ClinicSettings {
	return ClinicSettings{
		ClinicName:            "Smart Clinic",
		OpeningTime:           "09:00",
		ClosingTime:           "17:00",
		AppointmentDuration:   30,
		MaxAppointmentsPerDay: 1,
		Holidays:              "[]",
	}
}
