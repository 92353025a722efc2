package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"carmart/config"
	"carmart/database"
	"carmart/routers/authRoutes"
	"carmart/routers/carRoutes"
	"carmart/routers/customerRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded images from the public folder
	app.Static("/", "./public")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to CAR MART")
	})

	api := app.Group("/" + config.AppConfig.ApiPrefix)
	authRoutes.SetupAuthRoutes(api)
	carRoutes.SetupCarInventoryRoutes(api)
	customerRoutes.SetupCustomerRoutes(api)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Can't find " + c.OriginalURL(),
		})
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Server is shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal(err)
	}

	log.Println("Server has been gracefully terminated.")
}
