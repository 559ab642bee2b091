package staff

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartclinic/clinic-booking/booking"
	"github.com/smartclinic/clinic-booking/db"
	"github.com/smartclinic/clinic-booking/models"
	"github.com/smartclinic/clinic-booking/utils"
)

// GetSchedules lists weekly schedules, optionally filtered by doctor.
func GetSchedules(c *fiber.Ctx) error {
	query := db.DB.Preload("Doctor").Order("doctor_id ASC, day_of_week ASC")
	if doctorID := c.QueryInt("doctor_id"); doctorID > 0 {
		query = query.Where("doctor_id = ?", doctorID)
	}
	var schedules []models.Schedule
	if err := query.Find(&schedules).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedules",
			Error:   err.Error(),
		})
	}
	return c.JSON(schedules)
}

// CreateSchedule adds a weekly availability window for a doctor. A
// doctor gets at most one active schedule per weekday.
func CreateSchedule(c *fiber.Ctx) error {
	schedule := new(models.Schedule)
	if err := c.BodyParser(schedule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := validateSchedule(schedule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, schedule.DoctorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}

	var count int64
	db.DB.Model(&models.Schedule{}).
		Where("doctor_id = ? AND day_of_week = ? AND is_active = ?",
			schedule.DoctorID, schedule.DayOfWeek, true).
		Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Doctor already has an active schedule for that day",
		})
	}

	schedule.IsActive = true
	if schedule.MaxAppointments <= 0 {
		schedule.MaxAppointments = 10
	}
	if err := db.DB.Create(schedule).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create schedule",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(schedule)
}

// UpdateSchedule changes an existing schedule's window or day.
func UpdateSchedule(c *fiber.Ctx) error {
	id := c.Params("id")
	var schedule models.Schedule
	if err := db.DB.First(&schedule, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Schedule not found",
		})
	}

	input := new(models.Schedule)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.DoctorID == 0 {
		input.DoctorID = schedule.DoctorID
	}
	if err := validateSchedule(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	schedule.DoctorID = input.DoctorID
	schedule.DayOfWeek = input.DayOfWeek
	schedule.StartTime = input.StartTime
	schedule.EndTime = input.EndTime
	if input.MaxAppointments > 0 {
		schedule.MaxAppointments = input.MaxAppointments
	}
	schedule.IsActive = input.IsActive

	if err := db.DB.Save(&schedule).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update schedule",
			Error:   err.Error(),
		})
	}
	return c.JSON(schedule)
}

// DeleteSchedule removes a schedule. Existing appointments keep their
// slots; the window just stops producing new ones.
func DeleteSchedule(c *fiber.Ctx) error {
	id := c.Params("id")
	var schedule models.Schedule
	if err := db.DB.First(&schedule, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Schedule not found",
		})
	}
	if err := db.DB.Delete(&schedule).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete schedule",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func validateSchedule(s *models.Schedule) error {
	if s.DoctorID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Doctor is required")
	}
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return fiber.NewError(fiber.StatusBadRequest, "Day of week must be 0 (Sunday) through 6 (Saturday)")
	}
	start, err := booking.ParseClock(s.StartTime)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Start time must use HH:MM")
	}
	end, err := booking.ParseClock(s.EndTime)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "End time must use HH:MM")
	}
	if start >= end {
		return fiber.NewError(fiber.StatusBadRequest, "Start time must be before end time")
	}
	return nil
}
