package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smartclinic/clinic-booking/db"
	"github.com/smartclinic/clinic-booking/models"
	"github.com/smartclinic/clinic-booking/utils"
)

// GetAllAppointments returns every appointment, newest day first.
func GetAllAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	err := db.DB.Preload("Patient").Preload("Doctor").Preload("Service").
		Order("date DESC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment returns one appointment by ID.
func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	err := db.DB.Preload("Patient").Preload("Doctor").Preload("Service").
		First(&appointment, id).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// UpdateAppointmentStatus overwrites the status of an appointment.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
		})
	}

	var input struct {
		Status models.AppointmentStatus `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := BookingService().UpdateStatus(c.Context(), uint(id), input.Status); err != nil {
		return c.Status(BookingErrorStatus(err)).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment status",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Appointment status updated successfully"})
}

// GetAvailableSlots lists the open slots for a doctor on a date
// (?doctor_id=1&date=2026-03-02).
func GetAvailableSlots(c *fiber.Ctx) error {
	doctorID := c.QueryInt("doctor_id")
	if doctorID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "doctor_id is required",
		})
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "date must be YYYY-MM-DD",
			Error:   err.Error(),
		})
	}

	slots, err := BookingService().AvailableSlots(c.Context(), uint(doctorID), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute available slots",
			Error:   err.Error(),
		})
	}
	return c.JSON(slots)
}
