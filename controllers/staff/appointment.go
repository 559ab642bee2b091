package staff

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smartclinic/clinic-booking/booking"
	"github.com/smartclinic/clinic-booking/controllers"
	"github.com/smartclinic/clinic-booking/db"
	"github.com/smartclinic/clinic-booking/models"
	"github.com/smartclinic/clinic-booking/utils"
)

type createAppointmentInput struct {
	PatientID uint   `json:"patient_id"`
	DoctorID  uint   `json:"doctor_id"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Notes     string `json:"notes"`
}

// CreateAppointment books on a patient's behalf. Front-desk bookings
// are confirmed immediately and default to the general consultation
// when no service is picked.
func CreateAppointment(c *fiber.Ctx) error {
	input := new(createAppointmentInput)
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

	svc := controllers.BookingService()
	appt, err := svc.Book(c.Context(), booking.Request{
		ActorRole: c.Locals("role").(string),
		PatientID: input.PatientID,
		DoctorID:  input.DoctorID,
		ServiceID: input.ServiceID,
		Date:      date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Notes:     input.Notes,
	})
	if err != nil {
		return c.Status(controllers.BookingErrorStatus(err)).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	var patient models.User
	if db.DB.First(&patient, appt.PatientID).Error == nil && patient.Email != "" {
		go utils.SendEmail(patient.Email, "Appointment Confirmed",
			"Hello "+patient.FullName()+", your appointment "+appt.Code+
				" on "+appt.Date.Format("2006-01-02")+" at "+appt.StartTime+" is confirmed.")
	}

	return c.Status(fiber.StatusCreated).JSON(appt)
}
