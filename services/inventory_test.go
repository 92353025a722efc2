package services

import (
	"fmt"
	"testing"

	"carmart/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCarDuplicateChassisConflicts(t *testing.T) {
	db := newTestDB(t)

	mustCreateCar(t, db, "CN09187")

	err := CreateCar(db, testCar("CN09187"))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	var count int64
	require.NoError(t, db.Model(&models.Car{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateCarStartsUnsold(t *testing.T) {
	db := newTestDB(t)

	car := testCar("CN1")
	car.IsSold = true
	require.NoError(t, CreateCar(db, car))

	stored, err := GetCarByID(db, car.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsSold)
}

func TestCreateCarUnregisteredNeedsNoRegistrationNo(t *testing.T) {
	db := newTestDB(t)

	car := testCar("CN1")
	car.RegisteredIn = models.RegisteredInUnRegistered
	car.RegistrationNo = ""
	require.NoError(t, CreateCar(db, car))
}

func TestCreateCarCollectsValidationErrors(t *testing.T) {
	db := newTestDB(t)

	car := testCar("CN1")
	car.FuelType = "Steam"
	car.Price = 100
	car.Image = ""

	err := CreateCar(db, car)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Messages, "Please provide valid Fuel Type")
	assert.Contains(t, validation.Messages, "Enter valid Price, must be between 50,000 and 10 Crore")
	assert.Contains(t, validation.Messages, "Image is required")
}

func TestUpdateCarChassisImmutable(t *testing.T) {
	db := newTestDB(t)

	car := mustCreateCar(t, db, "CN1")

	payload := testCar("CN2")
	_, err := UpdateCar(db, car.ID, payload)
	var badRequest *BadRequestError
	require.ErrorAs(t, err, &badRequest)
	assert.Equal(t, "Chasis No cannot be updated", badRequest.Message)

	stored, err := GetCarByID(db, car.ID)
	require.NoError(t, err)
	assert.Equal(t, "CN1", stored.ChasisNo)
	assert.Equal(t, car.Price, stored.Price)
}

func TestUpdateCarReplacesRecord(t *testing.T) {
	db := newTestDB(t)

	car := mustCreateCar(t, db, "CN1")

	payload := testCar("CN1")
	payload.Price = 7500000
	payload.Make = "Toyota"

	updated, err := UpdateCar(db, car.ID, payload)
	require.NoError(t, err)
	assert.Equal(t, 7500000, updated.Price)
	assert.Equal(t, "Toyota", updated.Make)
}

func TestUpdateCarKeepsStoredImageWhenNoneUploaded(t *testing.T) {
	db := newTestDB(t)

	car := mustCreateCar(t, db, "CN1")

	payload := testCar("CN1")
	payload.Image = ""

	updated, err := UpdateCar(db, car.ID, payload)
	require.NoError(t, err)
	assert.Equal(t, "car.jpg", updated.Image)
}

func TestUpdateCarNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := UpdateCar(db, 42, testCar("CN1"))
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteCarRemovesRecord(t *testing.T) {
	db := newTestDB(t)

	car := mustCreateCar(t, db, "CN1")
	require.NoError(t, DeleteCar(db, car.ID))

	_, err := GetCarByID(db, car.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	err = DeleteCar(db, car.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestListCarsPaginationMath(t *testing.T) {
	db := newTestDB(t)

	for i := 1; i <= 7; i++ {
		mustCreateCar(t, db, fmt.Sprintf("CN%02d", i))
	}

	page, err := ListCars(db, ListQuery{Page: 1, PageSize: 3})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 3, page.TotalPages)
	assert.EqualValues(t, 7, page.TotalItems)

	page, err = ListCars(db, ListQuery{Page: 3, PageSize: 3})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestListCarsFloorsPageAndPageSize(t *testing.T) {
	db := newTestDB(t)

	mustCreateCar(t, db, "CN1")
	mustCreateCar(t, db, "CN2")

	page, err := ListCars(db, ListQuery{Page: 0, PageSize: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.Limit)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.TotalPages)
}

func TestListCarsZeroMatchesIsNotFound(t *testing.T) {
	db := newTestDB(t)

	mustCreateCar(t, db, "CN1")

	_, err := ListCars(db, ListQuery{Search: "nosuchcar", Page: 1, PageSize: 3})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Cars not found", notFound.Message)
}

func TestListCarsSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	db := newTestDB(t)

	mustCreateCar(t, db, "CN1")
	other := testCar("ZX9")
	other.Make = "Toyota"
	require.NoError(t, CreateCar(db, other))

	page, err := ListCars(db, ListQuery{Search: "PORS", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "CN1", page.Items[0].ChasisNo)

	// chassis number field is searched too
	page, err = ListCars(db, ListQuery{Search: "zx", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "ZX9", page.Items[0].ChasisNo)
}

func TestListCarsIsSoldFilter(t *testing.T) {
	db := newTestDB(t)

	mustCreateCar(t, db, "CN1")
	sold := mustCreateCar(t, db, "CN2")
	require.NoError(t, db.Model(&models.Car{}).
		Where("id = ?", sold.ID).Update("is_sold", true).Error)

	soldOnly := true
	page, err := ListCars(db, ListQuery{IsSold: &soldOnly, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "CN2", page.Items[0].ChasisNo)
}

func TestListCarsSortAllowList(t *testing.T) {
	db := newTestDB(t)

	cheap := testCar("CN1")
	cheap.Price = 60000
	require.NoError(t, CreateCar(db, cheap))
	dear := testCar("CN2")
	dear.Price = 9000000
	require.NoError(t, CreateCar(db, dear))

	page, err := ListCars(db, ListQuery{SortBy: "price", SortOrder: "desc", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "CN2", page.Items[0].ChasisNo)

	// default direction is ascending
	page, err = ListCars(db, ListQuery{SortBy: "price", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, "CN1", page.Items[0].ChasisNo)

	// unrecognized sort field applies no sort but still succeeds
	page, err = ListCars(db, ListQuery{SortBy: "image", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}
