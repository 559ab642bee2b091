package client

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smartclinic/clinic-booking/booking"
	"github.com/smartclinic/clinic-booking/controllers"
	"github.com/smartclinic/clinic-booking/db"
	"github.com/smartclinic/clinic-booking/models"
	"github.com/smartclinic/clinic-booking/utils"
)

type bookInput struct {
	DoctorID  uint   `json:"doctor_id"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Notes     string `json:"notes"`
}

// BookAppointment books a slot for the logged-in client. The booking
// starts out pending until staff confirm it.
func BookAppointment(c *fiber.Ctx) error {
	input := new(bookInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, expected YYYY-MM-DD",
		})
	}

	userID := c.Locals("userID").(uint)
	svc := controllers.BookingService()
	appt, err := svc.Book(c.Context(), booking.Request{
		ActorRole: models.RoleClient,
		PatientID: userID,
		DoctorID:  input.DoctorID,
		ServiceID: input.ServiceID,
		Date:      date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Notes:     input.Notes,
	})
	if err != nil {
		return c.Status(controllers.BookingErrorStatus(err)).JSON(utils.ErrorResponse{
			Message: "Failed to book appointment",
			Error:   err.Error(),
		})
	}

	var patient models.User
	if db.DB.First(&patient, userID).Error == nil && patient.Email != "" {
		go utils.SendEmail(patient.Email, "Appointment Received",
			"Hello "+patient.FullName()+", we received your booking "+appt.Code+
				" on "+appt.Date.Format("2006-01-02")+" at "+appt.StartTime+
				". You will be notified once it is confirmed.")
	}

	return c.Status(fiber.StatusCreated).JSON(appt)
}

// GetMyAppointments lists the client's own appointments, newest first.
func GetMyAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	var appointments []models.Appointment
	if err := db.DB.Preload("Doctor").Preload("Service").
		Where("patient_id = ?", userID).
		Order("date DESC, start_time ASC").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// CancelAppointment cancels one of the client's own future
// appointments, up to 2 hours before it starts.
func CancelAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
		})
	}
	userID := c.Locals("userID").(uint)

	svc := controllers.BookingService()
	if err := svc.Cancel(c.Context(), userID, uint(id)); err != nil {
		return c.Status(controllers.BookingErrorStatus(err)).JSON(utils.ErrorResponse{
			Message: "Failed to cancel appointment",
			Error:   err.Error(),
		})
	}

	var appt models.Appointment
	var patient models.User
	if db.DB.First(&appt, id).Error == nil &&
		db.DB.First(&patient, userID).Error == nil && patient.Email != "" {
		go utils.SendEmail(patient.Email, "Appointment Canceled",
			"Hello "+patient.FullName()+", your appointment "+appt.Code+
				" on "+appt.Date.Format("2006-01-02")+" at "+appt.StartTime+" has been canceled.")
	}

	return c.JSON(fiber.Map{"message": "Appointment canceled"})
}

// GetDashboard returns the client's upcoming and past visit counters.
func GetDashboard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	today := time.Now().Format("2006-01-02")

	var upcoming int64
	db.DB.Model(&models.Appointment{}).
		Where("patient_id = ? AND date >= ? AND status IN ?", userID, today,
			[]models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Count(&upcoming)

	var completed int64
	db.DB.Model(&models.Appointment{}).
		Where("patient_id = ? AND status = ?", userID, models.StatusCompleted).
		Count(&completed)

	var canceled int64
	db.DB.Model(&models.Appointment{}).
		Where("patient_id = ? AND status = ?", userID, models.StatusCanceled).
		Count(&canceled)

	var next models.Appointment
	hasNext := db.DB.Preload("Doctor").Preload("Service").
		Where("patient_id = ? AND date >= ? AND status IN ?", userID, today,
			[]models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Order("date ASC, start_time ASC").
		First(&next).Error == nil

	resp := fiber.Map{
		"upcoming_appointments":  upcoming,
		"completed_appointments": completed,
		"canceled_appointments":  canceled,
	}
	if hasNext {
		resp["next_appointment"] = next
	}
	return c.JSON(resp)
}
