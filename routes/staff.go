package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartclinic/clinic-booking/controllers"
	"github.com/smartclinic/clinic-booking/controllers/staff"
	"github.com/smartclinic/clinic-booking/middleware"
	"github.com/smartclinic/clinic-booking/models"
)

// SetupStaffRoutes configures the front-desk routes, shared by staff
// and admin accounts.
func SetupStaffRoutes(app *fiber.App) {
	group := app.Group("/staff",
		middleware.Protected(),
		middleware.RequireRole(models.RoleStaff, models.RoleAdmin))

	group.Get("/dashboard", staff.GetDashboard)
	group.Get("/patients", staff.GetPatients)

	// Appointments
	group.Get("/appointments", controllers.GetAllAppointments)
	group.Get("/appointments/:id", controllers.GetAppointment)
	group.Post("/appointments", staff.CreateAppointment)
	group.Patch("/appointments/:id/status", controllers.UpdateAppointmentStatus)

	// Doctor schedules
	group.Get("/schedules", staff.GetSchedules)
	group.Post("/schedules", staff.CreateSchedule)
	group.Put("/schedules/:id", staff.UpdateSchedule)
	group.Delete("/schedules/:id", staff.DeleteSchedule)
}
