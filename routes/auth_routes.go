package routes

import (
	"grc-app/config"
	"grc-app/controllers"
	"grc-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewAuthController(db)
	api := app.Group(config.MAIN_ROUTES + "/auth")

	api.Post("/login", controller.Login)
	api.Get("/logout", middleware.AuthMiddleware, controller.Logout)
}
