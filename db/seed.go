package db

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartclinic/clinic-booking/models"
)

// Seed creates the roles, the default admin account, sample doctors and
// services, Monday-Friday schedules and the clinic settings row. Safe to
// run repeatedly.
func Seed() {
	seedRoles()
	seedAdmin()
	seedDoctors()
	seedServices()
	seedSchedules()
	seedSettings()
	log.Println("✅ Seed data applied successfully!")
}

func seedRoles() {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Administrator with full access"},
		{Name: models.RoleStaff, Description: "Clinic staff managing appointments and schedules"},
		{Name: models.RoleClient, Description: "Patient who can book appointments"},
	}
	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}
}

func seedAdmin() {
	var existing models.User
	if DB.Where("email = ?", "admin@clinic.com").First(&existing).RowsAffected > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
		log.Println("Warning: ADMIN_PASSWORD not set, using the default admin password")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password: ", err)
	}

	var adminRole models.Role
	if err := DB.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
		log.Fatal("Admin role missing, run seedRoles first: ", err)
	}

	DB.Create(&models.User{
		FirstName:  "System",
		LastName:   "Admin",
		Email:      "admin@clinic.com",
		Password:   string(hashed),
		RoleID:     adminRole.ID,
		IsApproved: true,
		IsActive:   true,
	})
}

func seedDoctors() {
	var count int64
	DB.Model(&models.Doctor{}).Count(&count)
	if count > 0 {
		return
	}
	DB.Create(&[]models.Doctor{
		{Name: "Dr. Sarah Johnson", Specialization: "Cardiology", Email: "sarah.johnson@clinic.com", Phone: "555-0101", IsActive: true},
		{Name: "Dr. Michael Chen", Specialization: "Dermatology", Email: "michael.chen@clinic.com", Phone: "555-0102", IsActive: true},
		{Name: "Dr. Emily Davis", Specialization: "Pediatrics", Email: "emily.davis@clinic.com", Phone: "555-0103", IsActive: true},
	})
}

func seedServices() {
	var count int64
	DB.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}
	DB.Create(&[]models.Service{
		{Name: "General Consultation", Description: "Routine health checkup and consultation", Price: 100, DurationMinutes: 30, IsActive: true},
		{Name: "Specialist Consultation", Description: "Specialized medical consultation", Price: 200, DurationMinutes: 45, IsActive: true},
		{Name: "Follow-up Visit", Description: "Post-treatment follow-up appointment", Price: 75, DurationMinutes: 20, IsActive: true},
	})
}

func seedSchedules() {
	var count int64
	DB.Model(&models.Schedule{}).Count(&count)
	if count > 0 {
		return
	}
	var doctors []models.Doctor
	DB.Find(&doctors)
	for _, doctor := range doctors {
		for day := time.Monday; day <= time.Friday; day++ {
			DB.Create(&models.Schedule{
				DoctorID:        doctor.ID,
				DayOfWeek:       day,
				StartTime:       "09:00",
				EndTime:         "17:00",
				MaxAppointments: 10,
				IsActive:        true,
			})
		}
	}
}

func seedSettings() {
	var count int64
	DB.Model(&models.ClinicSettings{}).Count(&count)
	if count > 0 {
		return
	}
	settings := models.DefaultClinicSettings()
	DB.Create(&settings)
}
