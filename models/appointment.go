package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// ValidStatus reports whether s is one of the four appointment statuses.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// IsActive reports whether the appointment still counts toward the
// per-day patient limit and slot conflicts.
func (s AppointmentStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

type Appointment struct {
	gorm.Model
	// Code is the human-readable booking reference, "SC-001" onward.
	Code      string            `json:"code" gorm:"uniqueIndex"`
	PatientID uint              `json:"patient_id"`
	Patient   User              `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	DoctorID  uint              `json:"doctor_id"`
	Doctor    Doctor            `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	ServiceID uint              `json:"service_id"`
	Service   Service           `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Date      time.Time         `json:"date" gorm:"type:date"`
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Status    AppointmentStatus `json:"status"`
	Notes     string            `json:"notes"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// StartsAt combines the appointment date with its start clock time.
func (a *Appointment) StartsAt() time.Time {
	h, m := splitClock(a.StartTime)
	d := a.Date
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, d.Location())
}

func splitClock(s string) (hour, min int) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0
	}
	return t.Hour(), t.Minute()
}
