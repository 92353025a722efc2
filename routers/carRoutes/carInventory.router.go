package carRoutes

import (
	carInventoryController "carmart/controllers/carInventory"
	"carmart/middleware"
	carInventoryValidator "carmart/validators/carInventory"

	"github.com/gofiber/fiber/v2"
)

func SetupCarInventoryRoutes(router fiber.Router) {
	carGroup := router.Group("/car-inventory", middleware.JWTMiddleware)

	carGroup.Get("/", carInventoryController.GetAllCars)
	carGroup.Post("/", middleware.ImageUpload(), carInventoryValidator.CarInventory(), carInventoryController.CreateCar)
	carGroup.Get("/:id", carInventoryController.GetCarByID)
	carGroup.Put("/:id", middleware.ImageUpload(), carInventoryValidator.CarInventory(), carInventoryController.UpdateCar)
	carGroup.Delete("/:id", carInventoryController.DeleteCar)
}
