package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartclinic/clinic-booking/controllers"
	"github.com/smartclinic/clinic-booking/middleware"
	"github.com/smartclinic/clinic-booking/models"
)

// SetupAdminRoutes configures the admin-only management routes.
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	admin.Get("/dashboard", controllers.GetAdminDashboard)

	// User management
	admin.Get("/users", controllers.GetAllUsers)
	admin.Get("/users/pending", controllers.GetPendingUsers)
	admin.Patch("/users/:id/approve", controllers.ApproveUser)
	admin.Delete("/users/:id/reject", controllers.RejectUser)
	admin.Patch("/users/:id/toggle", controllers.ToggleUserStatus)
	admin.Delete("/users/:id", controllers.DeleteUser)

	// Doctor management
	admin.Get("/doctors", controllers.GetAllDoctors)
	admin.Post("/doctors", controllers.AddDoctor)
	admin.Patch("/doctors/:id/toggle", controllers.ToggleDoctorStatus)
	admin.Delete("/doctors/:id", controllers.DeleteDoctor)

	// Service management
	admin.Get("/services", controllers.GetAllServices)
	admin.Post("/services", controllers.CreateService)
	admin.Put("/services/:id", controllers.UpdateService)
	admin.Delete("/services/:id", controllers.DeleteService)

	// Clinic settings
	admin.Get("/settings", controllers.GetClinicSettings)
	admin.Put("/settings", controllers.UpdateClinicSettings)
}
