package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/smartclinic/clinic-booking/db"
	"github.com/smartclinic/clinic-booking/models"
	"github.com/smartclinic/clinic-booking/utils"
)

// GetClinicSettings returns the clinic settings row, creating the
// defaults if it does not exist yet.
func GetClinicSettings(c *fiber.Ctx) error {
	var settings models.ClinicSettings
	err := db.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultClinicSettings()
		if err := db.DB.Create(&settings).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to create clinic settings",
				Error:   err.Error(),
			})
		}
		return c.JSON(settings)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch clinic settings",
			Error:   err.Error(),
		})
	}
	return c.JSON(settings)
}

// UpdateClinicSettings updates the singleton clinic settings row.
func UpdateClinicSettings(c *fiber.Ctx) error {
	var settings models.ClinicSettings
	if err := db.DB.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings = models.DefaultClinicSettings()
		} else {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch clinic settings",
				Error:   err.Error(),
			})
		}
	}

	input := new(models.ClinicSettings)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.AppointmentDuration <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Appointment duration must be positive",
		})
	}
	if input.MaxAppointmentsPerDay <= 0 {
		input.MaxAppointmentsPerDay = 1
	}

	settings.ClinicName = input.ClinicName
	settings.OpeningTime = input.OpeningTime
	settings.ClosingTime = input.ClosingTime
	settings.AppointmentDuration = input.AppointmentDuration
	settings.MaxAppointmentsPerDay = input.MaxAppointmentsPerDay
	settings.Holidays = input.Holidays

	if err := db.DB.Save(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update clinic settings",
			Error:   err.Error(),
		})
	}
	return c.JSON(settings)
}
