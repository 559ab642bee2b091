package db

import (
	"fmt"
	"log"

	"github.com/smartclinic/clinic-booking/models"
)

func Migrate() {
	if DB == nil {
		Init()
	}

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Doctor{},
		&models.Service{},
		&models.Schedule{},
		&models.Appointment{},
		&models.ClinicSettings{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// A doctor's slot may be held by at most one active appointment, and
	// booking codes never repeat. Inserts racing past the in-transaction
	// checks fail here instead of double booking.
	err = DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
		ON appointments (doctor_id, date, start_time, end_time)
		WHERE status IN ('pending', 'confirmed') AND deleted_at IS NULL
	`).Error
	if err != nil {
		log.Fatal("Failed to create active slot index: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
