package models

import (
	"gorm.io/gorm"
)

type Doctor struct {
	gorm.Model
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	IsActive       bool   `json:"is_active" gorm:"default:true"`

	Schedules    []Schedule    `json:"schedules,omitempty" gorm:"foreignKey:DoctorID"`
	Appointments []Appointment `json:"appointments,omitempty" gorm:"foreignKey:DoctorID"`
}
