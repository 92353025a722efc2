package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// FuelType enum values
const (
	FuelTypePetrol   = "Petrol"
	FuelTypeDiesel   = "Diesel"
	FuelTypeElectric = "Electric"
	FuelTypeHybrid   = "Hybrid"
	FuelTypeLPG      = "LPG"
	FuelTypeCNG      = "CNG"
)

// RegisteredIn enum values
const (
	RegisteredInUnRegistered = "Un-Registered"
	RegisteredInBalochistan  = "Balochistan"
	RegisteredInIslamabad    = "Islamabad"
	RegisteredInKPK          = "KPK"
	RegisteredInPunjab       = "Punjab"
	RegisteredInSindh        = "Sindh"
)

// TransmissionType enum values
const (
	TransmissionAutomatic = "Automatic"
	TransmissionManual    = "Manual"
)

// TaxHistory enum values
const (
	TaxHistoryTokenPaid         = "Token/Tax Paid"
	TaxHistoryTokenRemaining    = "Token Remaining"
	TaxHistoryLifetimeTokenPaid = "Lifetime Token Paid"
)

// Assembly enum values
const (
	AssemblyLocal    = "Local"
	AssemblyImported = "Imported"
)

// Document enum values
const (
	DocumentOriginalBook          = "Original Book"
	DocumentAuctionSheetAvailable = "Auction Sheet Available"
	DocumentDuplicateBook         = "Duplicate Book"
	DocumentDuplicateNumberPlate  = "Duplicate Number Plate"
	DocumentFreshImport           = "Fresh Import"
	DocumentCompleteOriginalFile  = "Complete Original File"
	DocumentDuplicateFile         = "Duplicate File"
)

// Available* sets are the single source of truth for enum membership,
// shared by the request validator and the store-level checks.
var (
	AvailableFuelTypes = []string{
		FuelTypePetrol, FuelTypeDiesel, FuelTypeElectric,
		FuelTypeHybrid, FuelTypeLPG, FuelTypeCNG,
	}
	AvailableRegisteredIn = []string{
		RegisteredInUnRegistered, RegisteredInBalochistan, RegisteredInIslamabad,
		RegisteredInKPK, RegisteredInPunjab, RegisteredInSindh,
	}
	AvailableTransmissionTypes = []string{TransmissionAutomatic, TransmissionManual}
	AvailableTaxHistories      = []string{
		TaxHistoryTokenPaid, TaxHistoryTokenRemaining, TaxHistoryLifetimeTokenPaid,
	}
	AvailableAssemblies = []string{AssemblyLocal, AssemblyImported}
	AvailableDocuments  = []string{
		DocumentOriginalBook, DocumentAuctionSheetAvailable, DocumentDuplicateBook,
		DocumentDuplicateNumberPlate, DocumentFreshImport, DocumentCompleteOriginalFile,
		DocumentDuplicateFile,
	}
)

// Price, model year and mileage bounds
const (
	MinPrice     = 50000
	MaxPrice     = 100000000
	MinModelYear = 1923
	MinMileage   = 100
	MaxMileage   = 1000000
)

// Car is a single inventory record. ChasisNo identifies the car for its
// entire lifetime and is never reassigned.
type Car struct {
	ID               uint                        `gorm:"primarykey" json:"id"`
	ChasisNo         string                      `gorm:"size:20;uniqueIndex;not null" json:"chasisNo"`
	EngineNo         string                      `gorm:"size:20;index;not null" json:"engineNo"`
	Make             string                      `gorm:"size:20;index;not null" json:"make"`
	ModelName        string                      `gorm:"size:20;index;not null" json:"modelName"`
	Variant          string                      `gorm:"not null" json:"variant"`
	Price            int                         `gorm:"not null" json:"price"`
	ModelYear        int                         `gorm:"not null" json:"modelYear"`
	FuelType         string                      `gorm:"type:varchar(20);default:'Petrol'" json:"fuelType"`
	RegisteredIn     string                      `gorm:"type:varchar(20);default:'Punjab'" json:"registeredIn"`
	RegistrationNo   string                      `gorm:"index" json:"registrationNo"`
	Mileage          int                         `gorm:"not null" json:"mileage"`
	TransmissionType string                      `gorm:"type:varchar(20)" json:"transmissionType"`
	TaxHistory       string                      `gorm:"type:varchar(20);default:'Token/Tax Paid'" json:"taxHistory"`
	Assembly         string                      `gorm:"type:varchar(20);default:'Local'" json:"assembly"`
	Document         datatypes.JSONSlice[string] `json:"document"`
	Image            string                      `json:"image"`
	IsSold           bool                        `gorm:"default:false" json:"isSold"`
	CreatedAt        time.Time                   `json:"createdAt"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
}

func (Car) TableName() string {
	return "cars"
}

func isOneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// Validate runs the schema-level checks on a car record and returns all
// failures in field order. The image requiredness check is separate because
// the upload arrives outside the form fields (see services.CreateCar).
func (car *Car) Validate() []string {
	var errs []string

	errs = append(errs, validateBoundedString(car.ChasisNo, "Chasis No")...)
	errs = append(errs, validateBoundedString(car.EngineNo, "Engine No")...)
	errs = append(errs, validateBoundedString(car.Make, "Make")...)
	errs = append(errs, validateBoundedString(car.ModelName, "Model Name")...)

	if car.Variant == "" {
		errs = append(errs, "Variant is required")
	}

	if car.Price == 0 {
		errs = append(errs, "Price is required")
	} else if car.Price < MinPrice || car.Price > MaxPrice {
		errs = append(errs, "Enter valid Price, must be between 50,000 and 10 Crore")
	}

	maxModelYear := time.Now().Year()
	if car.ModelYear == 0 {
		errs = append(errs, "Model Year is required")
	} else if car.ModelYear < MinModelYear || car.ModelYear > maxModelYear {
		errs = append(errs, fmt.Sprintf("Enter valid Model Year, must be between 1923 and %d", maxModelYear))
	}

	if car.FuelType == "" {
		errs = append(errs, "Please select Fuel Type")
	} else if !isOneOf(car.FuelType, AvailableFuelTypes) {
		errs = append(errs, "Please provide valid Fuel Type")
	}

	if car.RegisteredIn == "" {
		errs = append(errs, "Please select Registered In")
	} else if !isOneOf(car.RegisteredIn, AvailableRegisteredIn) {
		errs = append(errs, "Please provide valid Registered In")
	}

	// Cross-field rule: a registered car must carry its registration number.
	if car.RegisteredIn != RegisteredInUnRegistered && car.RegistrationNo == "" {
		errs = append(errs, "Registration No is required")
	}

	if car.Mileage == 0 {
		errs = append(errs, "Mileage is required")
	} else if car.Mileage < MinMileage || car.Mileage > MaxMileage {
		errs = append(errs, "Enter valid Mileage, must be between 100 and 1000000")
	}

	if car.TransmissionType == "" {
		errs = append(errs, "Please select Transmission Type")
	} else if !isOneOf(car.TransmissionType, AvailableTransmissionTypes) {
		errs = append(errs, "Please provide valid Transmission Type")
	}

	if car.TaxHistory == "" {
		errs = append(errs, "Please select Tax History")
	} else if !isOneOf(car.TaxHistory, AvailableTaxHistories) {
		errs = append(errs, "Please provide valid Tax History")
	}

	if car.Assembly == "" {
		errs = append(errs, "Please select Assembly")
	} else if !isOneOf(car.Assembly, AvailableAssemblies) {
		errs = append(errs, "Please provide valid Assembly")
	}

	if len(car.Document) == 0 {
		errs = append(errs, "Select at least one option")
	} else {
		for _, d := range car.Document {
			if !isOneOf(d, AvailableDocuments) {
				errs = append(errs, "Please provide valid Document")
				break
			}
		}
	}

	return errs
}

func validateBoundedString(value, label string) []string {
	if value == "" {
		return []string{label + " is required"}
	}
	if len(value) < 2 || len(value) > 20 {
		return []string{label + " can be between 2 and 20 characters"}
	}
	return nil
}
