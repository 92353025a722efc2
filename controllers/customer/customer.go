package customerController

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"carmart/database"
	"carmart/middleware"
	"carmart/models"
	"carmart/services"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// PurchasePayload is one purchase-history entry on the wire. The date is
// optional and accepts any layout jinzhu/now understands; empty means now.
type PurchasePayload struct {
	ChasisNo     string `json:"chasisNo" form:"chasisNo"`
	PurchaseDate string `json:"purchaseDate" form:"purchaseDate"`
}

// CustomerPayload is the customer-write body. CNIC arrives as a JSON number.
type CustomerPayload struct {
	Name            string            `json:"name" form:"name"`
	Cnic            json.Number       `json:"cnic" form:"cnic"`
	Address         string            `json:"address" form:"address"`
	Contact         string            `json:"contact" form:"contact"`
	PurchaseHistory []PurchasePayload `json:"purchaseHistory" form:"purchaseHistory"`
}

func (p *CustomerPayload) toCustomer() (*models.Customer, error) {
	customer := &models.Customer{
		Name:    strings.TrimSpace(p.Name),
		Cnic:    p.Cnic.String(),
		Address: strings.TrimSpace(p.Address),
		Contact: strings.TrimSpace(p.Contact),
	}
	for _, entry := range p.PurchaseHistory {
		purchaseDate := time.Now()
		if entry.PurchaseDate != "" {
			parsed, err := now.Parse(entry.PurchaseDate)
			if err != nil {
				return nil, err
			}
			purchaseDate = parsed
		}
		customer.PurchaseHistory = append(customer.PurchaseHistory, models.PurchaseEntry{
			ChasisNo:     strings.TrimSpace(entry.ChasisNo),
			PurchaseDate: purchaseDate,
		})
	}
	return customer, nil
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// GetAllCustomers lists customers with CNIC filtering, sorting and pagination.
func GetAllCustomers(c *fiber.Ctx) error {
	query := services.ListQuery{
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      c.QueryInt("pageNumber", 1),
		PageSize:  c.QueryInt("pageSize", services.DefaultPageSize),
	}

	page, err := services.ListCustomers(database.Database.Db, query)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.PaginatedResponse(c, "Customers fetched successfully",
		page.Items, page.Page, page.Limit, page.TotalPages, page.TotalItems)
}

// GetCustomerByID returns a single customer with purchase history.
func GetCustomerByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ID Format", nil)
	}

	customer, err := services.GetCustomerByID(database.Database.Db, id)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "Customer fetched successfully", customer)
}

// CreateCustomer inserts a customer and marks every referenced car sold, all
// inside one transaction.
func CreateCustomer(c *fiber.Ctx) error {
	reqData := new(CustomerPayload)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	customer, err := reqData.toCustomer()
	if err != nil {
		return middleware.ValidationErrorResponse(c, []string{"Enter valid Purchase Date"})
	}

	if err := services.CreateCustomer(database.Database.Db, customer); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusCreated, "Customer added successfully", customer)
}

// UpdateCustomer replaces a customer record through the same transactional
// path as creation.
func UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ID Format", nil)
	}

	if emptyPayload(c.Body()) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Payload cannot be empty", nil)
	}

	reqData := new(CustomerPayload)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	customer, err := reqData.toCustomer()
	if err != nil {
		return middleware.ValidationErrorResponse(c, []string{"Enter valid Purchase Date"})
	}

	updated, err := services.UpdateCustomer(database.Database.Db, id, customer)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "Customer updated successfully", updated)
}

// DeleteCustomer removes the customer and every car in its purchase history.
func DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ID Format", nil)
	}

	if err := services.DeleteCustomer(database.Database.Db, id); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.SuccessResponse(c, fiber.StatusOK, "Customer deleted successfully", nil)
}

// emptyPayload reports whether the update body carries no fields at all.
func emptyPayload(body []byte) bool {
	if len(strings.TrimSpace(string(body))) == 0 {
		return true
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return false
	}
	return len(fields) == 0
}
