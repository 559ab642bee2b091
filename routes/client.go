package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartclinic/clinic-booking/controllers"
	"github.com/smartclinic/clinic-booking/controllers/client"
	"github.com/smartclinic/clinic-booking/middleware"
	"github.com/smartclinic/clinic-booking/models"
)

// SetupClientRoutes configures the patient-facing routes. Browsing
// doctors, services and free slots is public; booking requires an
// approved client account.
func SetupClientRoutes(app *fiber.App) {
	// Public browsing
	app.Get("/doctors", controllers.GetActiveDoctors)
	app.Get("/services", controllers.GetActiveServices)
	app.Get("/slots", controllers.GetAvailableSlots)

	group := app.Group("/client",
		middleware.Protected(),
		middleware.RequireRole(models.RoleClient))

	group.Get("/dashboard", client.GetDashboard)
	group.Post("/appointments", client.BookAppointment)
	group.Get("/appointments", client.GetMyAppointments)
	group.Patch("/appointments/:id/cancel", client.CancelAppointment)

	group.Get("/profile", client.GetProfile)
	group.Put("/profile", client.UpdateProfile)
	group.Post("/profile/picture", client.UploadProfilePicture)
}
