package carInventoryValidator

import (
	"strings"

	"carmart/middleware"
	"carmart/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CarPayload is the inventory-write body. Multipart form fields and JSON both
// bind to it; the image file itself is handled by the upload middleware.
type CarPayload struct {
	ChasisNo         string   `json:"chasisNo" form:"chasisNo"`
	EngineNo         string   `json:"engineNo" form:"engineNo"`
	Make             string   `json:"make" form:"make"`
	ModelName        string   `json:"modelName" form:"modelName"`
	Variant          string   `json:"variant" form:"variant"`
	Price            int      `json:"price" form:"price"`
	ModelYear        int      `json:"modelYear" form:"modelYear"`
	FuelType         string   `json:"fuelType" form:"fuelType"`
	RegisteredIn     string   `json:"registeredIn" form:"registeredIn"`
	RegistrationNo   string   `json:"registrationNo" form:"registrationNo"`
	Mileage          int      `json:"mileage" form:"mileage"`
	TransmissionType string   `json:"transmissionType" form:"transmissionType"`
	TaxHistory       string   `json:"taxHistory" form:"taxHistory"`
	Assembly         string   `json:"assembly" form:"assembly"`
	Document         []string `json:"document" form:"document"`
}

// toCar builds the model record with trimmed string fields.
func (p *CarPayload) toCar() *models.Car {
	return &models.Car{
		ChasisNo:         strings.TrimSpace(p.ChasisNo),
		EngineNo:         strings.TrimSpace(p.EngineNo),
		Make:             strings.TrimSpace(p.Make),
		ModelName:        strings.TrimSpace(p.ModelName),
		Variant:          strings.TrimSpace(p.Variant),
		Price:            p.Price,
		ModelYear:        p.ModelYear,
		FuelType:         p.FuelType,
		RegisteredIn:     p.RegisteredIn,
		RegistrationNo:   strings.TrimSpace(p.RegistrationNo),
		Mileage:          p.Mileage,
		TransmissionType: p.TransmissionType,
		TaxHistory:       p.TaxHistory,
		Assembly:         p.Assembly,
		Document:         datatypes.NewJSONSlice(p.Document),
	}
}

// CarInventory validates an inventory-write payload before any store access.
// All field failures are collected and returned together; the validated
// record is passed on through Locals.
func CarInventory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CarPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", nil)
		}

		car := reqData.toCar()

		if errs := car.Validate(); len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedCar", car)
		return c.Next()
	}
}
