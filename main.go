package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/smartclinic/clinic-booking/cron"
	"github.com/smartclinic/clinic-booking/db"
	"github.com/smartclinic/clinic-booking/redis"
	"github.com/smartclinic/clinic-booking/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	db.Seed()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Smart Clinic API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupStaffRoutes(app)
	routes.SetupClientRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
	fmt.Println("Server started on port 8000")
}
