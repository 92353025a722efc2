package carInventoryController

import (
	"strconv"

	"carmart/database"
	"carmart/middleware"
	"carmart/models"
	"carmart/services"

	"github.com/gofiber/fiber/v2"
)

// parseID rejects path ids that are not positive integers before any store
// access.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseIsSold reads the optional exact isSold filter; anything other than
// "true"/"false" leaves it unset.
func parseIsSold(c *fiber.Ctx) *bool {
	switch c.Query("isSold") {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

// GetAllCars lists inventory with filtering, sorting and pagination.
func GetAllCars(c *fiber.Ctx) error {
	query := services.ListQuery{
		Search:    c.Query("search"),
		IsSold:    parseIsSold(c),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      c.QueryInt("pageNumber", 1),
		PageSize:  c.QueryInt("pageSize", services.DefaultPageSize),
	}

	page, err := services.ListCars(database.Database.Db, query)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.PaginatedResponse(c, "Cars fetched successfully",
		page.Items, page.Page, page.Limit, page.TotalPages, page.TotalItems)
}

// GetCarByID returns a single car record.
func GetCarByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ID Format", nil)
	}

	car, err := services.GetCarByID(database.Database.Db, id)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "Car fetched successfully", car)
}

// CreateCar persists a validated car with its uploaded image reference.
func CreateCar(c *fiber.Ctx) error {
	car := c.Locals("validatedCar").(*models.Car)

	if filename, ok := c.Locals("imageFilename").(string); ok {
		car.Image = filename
	}

	if err := services.CreateCar(database.Database.Db, car); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusCreated, "Car added successfully", car)
}

// UpdateCar replaces a car record; the chassis number must match the stored one.
func UpdateCar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ID Format", nil)
	}

	car := c.Locals("validatedCar").(*models.Car)

	if filename, ok := c.Locals("imageFilename").(string); ok {
		car.Image = filename
	}

	updated, err := services.UpdateCar(database.Database.Db, id, car)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "Car updated successfully", updated)
}

// DeleteCar removes a car record permanently.
func DeleteCar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ID Format", nil)
	}

	if err := services.DeleteCar(database.Database.Db, id); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "Car deleted successfully", nil)
}
