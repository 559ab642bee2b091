package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartclinic/clinic-booking/db"
	"github.com/smartclinic/clinic-booking/models"
	"github.com/smartclinic/clinic-booking/utils"
)

// GetAllDoctors returns every doctor, active or not.
func GetAllDoctors(c *fiber.Ctx) error {
	var doctors []models.Doctor
	if err := db.DB.Find(&doctors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctors)
}

// GetActiveDoctors returns the doctors currently taking appointments.
func GetActiveDoctors(c *fiber.Ctx) error {
	var doctors []models.Doctor
	if err := db.DB.Where("is_active = ?", true).Find(&doctors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctors)
}

// AddDoctor creates a doctor record.
func AddDoctor(c *fiber.Ctx) error {
	doctor := new(models.Doctor)
	if err := c.BodyParser(doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if doctor.Name == "" || doctor.Specialization == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Name and specialization are required",
		})
	}
	doctor.IsActive = true
	if err := db.DB.Create(doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create doctor",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(doctor)
}

// ToggleDoctorStatus flips a doctor between active and inactive.
func ToggleDoctorStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var doctor models.Doctor
	if err := db.DB.First(&doctor, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}
	doctor.IsActive = !doctor.IsActive
	if err := db.DB.Save(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update doctor",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctor)
}

// DeleteDoctor removes a doctor without appointment history.
func DeleteDoctor(c *fiber.Ctx) error {
	id := c.Params("id")
	var doctor models.Doctor
	if err := db.DB.First(&doctor, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}

	var appointmentCount int64
	db.DB.Model(&models.Appointment{}).Where("doctor_id = ?", doctor.ID).Count(&appointmentCount)
	if appointmentCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot delete doctor with existing appointments",
		})
	}

	if err := db.DB.Delete(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete doctor",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
