package routes

import (
	"grc-app/config"
	"grc-app/controllers"
	"grc-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupComplaintRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewComplaintController(db)
	api := app.Group(config.MAIN_ROUTES+"/complaints", middleware.AuthMiddleware)

	api.Post("/", controller.CreateComplaint)
	api.Get("/", controller.GetAllComplaints)
	api.Get("/pending", controller.GetPendingComplaints)
	api.Get("/:complaint_number", controller.GetComplaintByNumber)
	api.Put("/:complaint_number", controller.UpdateComplaint)
}
