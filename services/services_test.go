package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"carmart/models"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// newTestDB opens a fresh in-memory database per test. The shared cache keeps
// the database alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:carmart_test_%d?mode=memory&cache=shared",
		atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Car{},
		&models.Customer{},
		&models.PurchaseEntry{},
	))
	return db
}

func testCar(chasisNo string) *models.Car {
	return &models.Car{
		ChasisNo:         chasisNo,
		EngineNo:         "EN" + chasisNo,
		Make:             "Porsche",
		ModelName:        "911",
		Variant:          "GT3 RS",
		Price:            9500000,
		ModelYear:        2020,
		FuelType:         models.FuelTypePetrol,
		RegisteredIn:     models.RegisteredInPunjab,
		RegistrationNo:   "VXR 1008",
		Mileage:          1009,
		TransmissionType: models.TransmissionAutomatic,
		TaxHistory:       models.TaxHistoryTokenPaid,
		Assembly:         models.AssemblyLocal,
		Document:         datatypes.NewJSONSlice([]string{models.DocumentOriginalBook}),
		Image:            "car.jpg",
	}
}

func testCustomer(cnic string, chasisNos ...string) *models.Customer {
	customer := &models.Customer{
		Name:    "Saad Shahid",
		Cnic:    cnic,
		Address: "Rawalpindi",
		Contact: "03357735290",
	}
	for _, chasisNo := range chasisNos {
		customer.PurchaseHistory = append(customer.PurchaseHistory,
			models.PurchaseEntry{ChasisNo: chasisNo})
	}
	return customer
}

func mustCreateCar(t *testing.T, db *gorm.DB, chasisNo string) *models.Car {
	t.Helper()
	car := testCar(chasisNo)
	require.NoError(t, CreateCar(db, car))
	return car
}
