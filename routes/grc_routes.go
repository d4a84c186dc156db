package routes

import (
	"grc-app/config"
	"grc-app/controllers"
	"grc-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupGRCRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewGRCController(db)
	api := app.Group(config.MAIN_ROUTES+"/grc", middleware.AuthMiddleware)

	api.Post("/upload", middleware.RequireRole("ADMIN"), controller.UploadBatch)
	api.Get("/not_received", controller.NotReceived)
	api.Get("/not_received/:grc_number", controller.NotReceivedByGRCNumber)
	api.Post("/receive", controller.UpdateReceive)
	api.Get("/return/:division", controller.ReturnByDivision)
	api.Post("/return/save", controller.SaveReturn)
	api.Post("/return/finalize", controller.FinalizeReturn)
	api.Get("/next_challan_code", controller.NextChallanCode)
	api.Get("/enquiry", controller.Enquiry)
	api.Get("/enquiry/excel", controller.ExportEnquiryExcel)
	api.Post("/report/:report_type", controller.PrintReport)
}
