package staff

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smartclinic/clinic-booking/db"
	"github.com/smartclinic/clinic-booking/models"
	"github.com/smartclinic/clinic-booking/utils"
)

// GetDashboard returns the front-desk counters plus today's schedule.
func GetDashboard(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	var todayCount int64
	db.DB.Model(&models.Appointment{}).
		Where("date = ? AND status IN ?", today,
			[]models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Count(&todayCount)

	var pendingCount int64
	db.DB.Model(&models.Appointment{}).
		Where("status = ?", models.StatusPending).
		Count(&pendingCount)

	var patientCount int64
	models.VisibleUsers(db.DB.Model(&models.User{})).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleClient).
		Count(&patientCount)

	var upcomingCount int64
	db.DB.Model(&models.Appointment{}).
		Where("date > ? AND status IN ?", today,
			[]models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Count(&upcomingCount)

	var todayAppointments []models.Appointment
	if err := db.DB.Preload("Patient").Preload("Doctor").Preload("Service").
		Where("date = ?", today).
		Order("start_time ASC").
		Find(&todayAppointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch today's appointments",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"today_appointments":    todayCount,
		"pending_appointments":  pendingCount,
		"total_patients":        patientCount,
		"upcoming_appointments": upcomingCount,
		"appointments":          todayAppointments,
	})
}

// GetPatients lists the approved, active client accounts.
func GetPatients(c *fiber.Ctx) error {
	var patients []models.User
	if err := models.VisibleUsers(db.DB).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleClient).
		Order("first_name ASC").
		Find(&patients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patients",
			Error:   err.Error(),
		})
	}
	for i := range patients {
		patients[i].Password = ""
	}
	return c.JSON(patients)
}
