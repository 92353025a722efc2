package authRoutes

import (
	authController "carmart/controllers/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(router fiber.Router) {
	router.Post("/login", authController.Login)
}
