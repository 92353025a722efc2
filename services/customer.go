package services

import (
	"errors"
	"regexp"

	"carmart/models"

	"gorm.io/gorm"
)

var numericPattern = regexp.MustCompile(`^\d+$`)

var customerSortFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func preloadHistory(db *gorm.DB) *gorm.DB {
	return db.Preload("PurchaseHistory", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("purchase_entries.id")
	})
}

// ListCustomers returns one page of customers. The search term filters by
// exact CNIC match and only when it is all digits; anything else is ignored
// and the list comes back unfiltered.
func ListCustomers(db *gorm.DB, q ListQuery) (*Page[models.Customer], error) {
	page, limit := q.floor()

	query := db.Model(&models.Customer{})

	if q.Search != "" && numericPattern.MatchString(q.Search) {
		query = query.Where("cnic = ?", q.Search)
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		return nil, err
	}

	if clause := sortClause(q.SortBy, q.SortOrder, customerSortFields); clause != "" {
		query = query.Order(clause)
	}

	var customers []models.Customer
	if err := preloadHistory(query).
		Offset((page - 1) * limit).Limit(limit).
		Find(&customers).Error; err != nil {
		return nil, err
	}

	if len(customers) == 0 {
		return nil, &NotFoundError{Message: "Customers not found"}
	}

	return &Page[models.Customer]{
		Items:      customers,
		Page:       page,
		Limit:      limit,
		TotalPages: int((totalItems + int64(limit) - 1) / int64(limit)),
		TotalItems: totalItems,
	}, nil
}

// GetCustomerByID fetches a single customer with purchase history.
func GetCustomerByID(db *gorm.DB, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := preloadHistory(db).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Customer not Found"}
		}
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer inserts a customer and claims every car referenced in the
// purchase history. The customer is created first and the availability checks
// run afterwards inside the same transaction, so nothing is visible outside
// the transaction boundary until every referenced car is resolved and marked
// sold. Any missing or already-sold car aborts the whole operation.
func CreateCustomer(db *gorm.DB, customer *models.Customer) error {
	if msgs := customer.Validate(); len(msgs) > 0 {
		return &ValidationError{Messages: msgs}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.Customer
		err := tx.Where("cnic = ?", customer.Cnic).First(&existing).Error
		if err == nil {
			return &ConflictError{Message: "Customer with cnic already exists."}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(customer).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &ConflictError{Message: "Customer with cnic already exists."}
			}
			return err
		}

		for _, entry := range customer.PurchaseHistory {
			if err := claimCar(tx, entry.ChasisNo); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateCustomer replaces a customer record. A CNIC change is checked for
// global uniqueness excluding this record. Every purchase-history entry in
// the new payload must reference an existing car; unsold cars are marked
// sold, already-sold ones are left as they are.
func UpdateCustomer(db *gorm.DB, id uint, customer *models.Customer) (*models.Customer, error) {
	if msgs := customer.Validate(); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	var updated *models.Customer
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.Customer
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "Customer not found"}
			}
			return err
		}

		if customer.Cnic != existing.Cnic {
			var taken models.Customer
			err := tx.Where("cnic = ? AND id <> ?", customer.Cnic, id).First(&taken).Error
			if err == nil {
				return &ConflictError{Message: "Cnic already exists"}
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		for _, entry := range customer.PurchaseHistory {
			if err := markCarSold(tx, entry.ChasisNo); err != nil {
				return err
			}
		}

		// Full-document replace: scalar fields plus the whole history list.
		existing.Name = customer.Name
		existing.Cnic = customer.Cnic
		existing.Address = customer.Address
		existing.Contact = customer.Contact
		if err := tx.Omit("PurchaseHistory").Save(&existing).Error; err != nil {
			return err
		}

		if err := tx.Where("customer_id = ?", id).Delete(&models.PurchaseEntry{}).Error; err != nil {
			return err
		}
		entries := make([]models.PurchaseEntry, 0, len(customer.PurchaseHistory))
		for _, entry := range customer.PurchaseHistory {
			entries = append(entries, models.PurchaseEntry{
				CustomerID:   id,
				ChasisNo:     entry.ChasisNo,
				PurchaseDate: entry.PurchaseDate,
			})
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}

		existing.PurchaseHistory = entries
		updated = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCustomer removes the customer and every car referenced in its
// purchase history. The cars are deleted from inventory entirely, not
// returned to the available pool.
func DeleteCustomer(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.Customer
		if err := preloadHistory(tx).First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "Customer does not exist"}
			}
			return err
		}

		for _, entry := range existing.PurchaseHistory {
			if err := tx.Where("chasis_no = ?", entry.ChasisNo).
				Delete(&models.Car{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("customer_id = ?", id).
			Delete(&models.PurchaseEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&existing).Error
	})
}
