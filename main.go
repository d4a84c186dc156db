package main

import (
	"fmt"
	"log"

	"grc-app/config"
	"grc-app/controllers/idgen"
	"grc-app/database"
	"grc-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	app := fiber.New()

	config.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupGRCRoutes(app, db)
	routes.SetupComplaintRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
