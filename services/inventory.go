package services

import (
	"errors"
	"strings"

	"carmart/models"

	"gorm.io/gorm"
)

// DefaultPageSize is applied when the client sends no page size at all.
const DefaultPageSize = 3

// carSearchFields are matched with a case-insensitive substring OR-filter.
var carSearchFields = []string{
	"chasis_no", "engine_no", "registration_no", "registered_in", "make", "model_name",
}

// carSortFields maps the accepted sortBy values to their columns. Anything
// else leaves the result unsorted.
var carSortFields = map[string]string{
	"mileage":   "mileage",
	"price":     "price",
	"modelYear": "model_year",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// ListQuery carries the list/filter/sort/page parameters shared by both stores.
type ListQuery struct {
	Search    string
	IsSold    *bool
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// Page is one page of records plus the pagination totals.
type Page[T any] struct {
	Items      []T
	Page       int
	Limit      int
	TotalPages int
	TotalItems int64
}

// floor returns page and limit with non-positive values raised to 1.
func (q ListQuery) floor() (int, int) {
	page, limit := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	return page, limit
}

func sortClause(sortBy, sortOrder string, allowed map[string]string) string {
	column, ok := allowed[sortBy]
	if !ok {
		return ""
	}
	direction := "asc"
	if sortOrder == "desc" {
		direction = "desc"
	}
	return column + " " + direction
}

// ListCars returns one page of matching cars. Zero matches is a not-found
// condition, not an empty success.
func ListCars(db *gorm.DB, q ListQuery) (*Page[models.Car], error) {
	page, limit := q.floor()

	query := db.Model(&models.Car{})

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		var clauses []string
		var args []interface{}
		for _, field := range carSearchFields {
			clauses = append(clauses, "LOWER("+field+") LIKE ?")
			args = append(args, pattern)
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	if q.IsSold != nil {
		query = query.Where("is_sold = ?", *q.IsSold)
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		return nil, err
	}

	if clause := sortClause(q.SortBy, q.SortOrder, carSortFields); clause != "" {
		query = query.Order(clause)
	}

	var cars []models.Car
	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&cars).Error; err != nil {
		return nil, err
	}

	if len(cars) == 0 {
		return nil, &NotFoundError{Message: "Cars not found"}
	}

	return &Page[models.Car]{
		Items:      cars,
		Page:       page,
		Limit:      limit,
		TotalPages: int((totalItems + int64(limit) - 1) / int64(limit)),
		TotalItems: totalItems,
	}, nil
}

// GetCarByID fetches a single car record.
func GetCarByID(db *gorm.DB, id uint) (*models.Car, error) {
	var car models.Car
	if err := db.First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Car not Found"}
		}
		return nil, err
	}
	return &car, nil
}

// CreateCar persists a new car with its image reference. The chassis number
// must not exist yet; isSold always starts false.
func CreateCar(db *gorm.DB, car *models.Car) error {
	msgs := car.Validate()
	if car.Image == "" {
		msgs = append(msgs, "Image is required")
	}
	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}

	var existing models.Car
	err := db.Where("chasis_no = ?", car.ChasisNo).First(&existing).Error
	if err == nil {
		return &ConflictError{Message: "Car with Chasis No already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	car.IsSold = false
	if err := db.Create(car).Error; err != nil {
		// A racing insert can slip past the lookup above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &ConflictError{Message: "Car with Chasis No already exists"}
		}
		return err
	}
	return nil
}

// UpdateCar replaces a car record. The chassis number is immutable: a payload
// carrying a different one is rejected outright. An empty image keeps the
// stored one.
func UpdateCar(db *gorm.DB, id uint, car *models.Car) (*models.Car, error) {
	var existing models.Car
	if err := db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Car not found"}
		}
		return nil, err
	}

	if car.ChasisNo != existing.ChasisNo {
		return nil, &BadRequestError{Message: "Chasis No cannot be updated"}
	}

	if car.Image == "" {
		car.Image = existing.Image
	}

	msgs := car.Validate()
	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	car.ID = existing.ID
	car.IsSold = existing.IsSold
	car.CreatedAt = existing.CreatedAt
	if err := db.Save(car).Error; err != nil {
		return nil, err
	}
	return car, nil
}

// DeleteCar removes a car record permanently.
func DeleteCar(db *gorm.DB, id uint) error {
	var existing models.Car
	if err := db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Message: "Car does not exist"}
		}
		return err
	}
	return db.Delete(&existing).Error
}

// claimCar flips an unsold car to sold inside the caller's transaction. The
// conditional UPDATE serializes racing purchases: exactly one claimer sees
// RowsAffected == 1, the loser resolves to Conflict (or NotFound if the car
// never existed).
func claimCar(tx *gorm.DB, chasisNo string) error {
	res := tx.Model(&models.Car{}).
		Where("chasis_no = ? AND is_sold = ?", chasisNo, false).
		Update("is_sold", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var car models.Car
		if err := tx.Where("chasis_no = ?", chasisNo).First(&car).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "Car with chasis No does not exists."}
			}
			return err
		}
		return &ConflictError{Message: "Car with chasis No is already sold."}
	}
	return nil
}

// markCarSold is the idempotent variant used on customer updates: re-linking
// an already-sold car confirms the purchase rather than rejecting it.
func markCarSold(tx *gorm.DB, chasisNo string) error {
	var car models.Car
	if err := tx.Where("chasis_no = ?", chasisNo).First(&car).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Message: "Car with chasis No does not exists."}
		}
		return err
	}
	if car.IsSold {
		return nil
	}
	return tx.Model(&models.Car{}).
		Where("chasis_no = ?", chasisNo).
		Update("is_sold", true).Error
}
