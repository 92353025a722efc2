package customerRoutes

import (
	customerController "carmart/controllers/customer"
	"carmart/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCustomerRoutes(router fiber.Router) {
	customerGroup := router.Group("/customer", middleware.JWTMiddleware)

	customerGroup.Get("/", customerController.GetAllCustomers)
	customerGroup.Post("/", customerController.CreateCustomer)
	customerGroup.Get("/:id", customerController.GetCustomerByID)
	customerGroup.Put("/:id", customerController.UpdateCustomer)
	customerGroup.Delete("/:id", customerController.DeleteCustomer)
}
