package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func validCar() *Car {
	return &Car{
		ChasisNo:         "CN09187",
		EngineNo:         "EN09187",
		Make:             "Porsche",
		ModelName:        "911",
		Variant:          "GT3 RS",
		Price:            9500000,
		ModelYear:        2020,
		FuelType:         FuelTypePetrol,
		RegisteredIn:     RegisteredInPunjab,
		RegistrationNo:   "VXR 1008",
		Mileage:          1009,
		TransmissionType: TransmissionAutomatic,
		TaxHistory:       TaxHistoryTokenPaid,
		Assembly:         AssemblyLocal,
		Document:         datatypes.NewJSONSlice([]string{DocumentOriginalBook}),
	}
}

func TestCarValidateAcceptsValidRecord(t *testing.T) {
	assert.Empty(t, validCar().Validate())
}

func TestCarValidateCollectsAllFailures(t *testing.T) {
	car := validCar()
	car.ChasisNo = "C"
	car.Price = 40000
	car.TransmissionType = "CVT"
	car.Document = nil

	errs := car.Validate()
	assert.Contains(t, errs, "Chasis No can be between 2 and 20 characters")
	assert.Contains(t, errs, "Enter valid Price, must be between 50,000 and 10 Crore")
	assert.Contains(t, errs, "Please provide valid Transmission Type")
	assert.Contains(t, errs, "Select at least one option")
	assert.Len(t, errs, 4)
}

func TestCarValidateFieldOrder(t *testing.T) {
	car := validCar()
	car.ChasisNo = ""
	car.Mileage = 50

	errs := car.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, "Chasis No is required", errs[0])
	assert.Equal(t, "Enter valid Mileage, must be between 100 and 1000000", errs[1])
}

func TestCarValidateRegistrationNoConditional(t *testing.T) {
	car := validCar()
	car.RegistrationNo = ""
	assert.Contains(t, car.Validate(), "Registration No is required")

	car.RegisteredIn = RegisteredInUnRegistered
	assert.Empty(t, car.Validate())
}

func TestCarValidateModelYearUpperBound(t *testing.T) {
	car := validCar()
	car.ModelYear = time.Now().Year() + 1
	errs := car.Validate()
	require.Len(t, errs, 1)
	assert.True(t, strings.HasPrefix(errs[0], "Enter valid Model Year"))

	car.ModelYear = time.Now().Year()
	assert.Empty(t, car.Validate())

	car.ModelYear = 1922
	assert.Len(t, car.Validate(), 1)
}

func TestCarValidateDocumentMembership(t *testing.T) {
	car := validCar()
	car.Document = datatypes.NewJSONSlice([]string{DocumentOriginalBook, "Photocopy"})
	errs := car.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "Please provide valid Document", errs[0])
}

func validCustomer() *Customer {
	return &Customer{
		Name:    "Saad Shahid",
		Cnic:    "3660347880473",
		Address: "Rawalpindi",
		Contact: "03357735290",
	}
}

func TestCustomerValidateAcceptsValidRecord(t *testing.T) {
	assert.Empty(t, validCustomer().Validate())
}

func TestCustomerValidateCnicDigits(t *testing.T) {
	customer := validCustomer()
	customer.Cnic = "36603478804"
	assert.Contains(t, customer.Validate(), "CNIC must be 13 digits")

	customer.Cnic = "36603478804731"
	assert.Contains(t, customer.Validate(), "CNIC must be 13 digits")
}

func TestCustomerValidateContactDigits(t *testing.T) {
	customer := validCustomer()
	customer.Contact = "0335773529"
	assert.Contains(t, customer.Validate(), "Contact must be 11 digits")
}

func TestCustomerValidatePurchaseHistoryUniqueChassis(t *testing.T) {
	customer := validCustomer()
	customer.PurchaseHistory = []PurchaseEntry{
		{ChasisNo: "CN1"},
		{ChasisNo: "CN2"},
		{ChasisNo: "CN1"},
	}
	assert.Contains(t, customer.Validate(),
		"Each Chasis No must be unique within the purchase history")

	customer.PurchaseHistory = customer.PurchaseHistory[:2]
	assert.Empty(t, customer.Validate())
}
