package models

import (
	"regexp"
	"time"
)

var (
	cnicPattern    = regexp.MustCompile(`^\d{13}$`)
	contactPattern = regexp.MustCompile(`^\d{11}$`)
)

// PurchaseEntry records one car bought by a customer. Chassis numbers are
// unique within a single customer's history.
type PurchaseEntry struct {
	ID           uint      `gorm:"primarykey" json:"-"`
	CustomerID   uint      `gorm:"uniqueIndex:idx_customer_chasis" json:"-"`
	ChasisNo     string    `gorm:"size:20;uniqueIndex:idx_customer_chasis" json:"chasisNo"`
	PurchaseDate time.Time `json:"purchaseDate"`
}

func (PurchaseEntry) TableName() string {
	return "purchase_entries"
}

// Customer is a ledger record. CNIC identifies the customer globally.
type Customer struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	Name            string          `gorm:"size:20;not null" json:"name"`
	Cnic            string          `gorm:"size:13;uniqueIndex;not null" json:"cnic"`
	Address         string          `gorm:"not null" json:"address"`
	Contact         string          `gorm:"size:11;not null" json:"contact"`
	PurchaseHistory []PurchaseEntry `gorm:"foreignKey:CustomerID" json:"purchaseHistory"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (Customer) TableName() string {
	return "customers"
}

// Validate runs the schema-level checks on a customer record and returns all
// failures in field order.
func (customer *Customer) Validate() []string {
	var errs []string

	if customer.Name == "" {
		errs = append(errs, "Name is required")
	} else if len(customer.Name) < 2 || len(customer.Name) > 20 {
		errs = append(errs, "Name can be between 2 and 20 characters")
	}

	if customer.Cnic == "" {
		errs = append(errs, "CNIC is required")
	} else if !cnicPattern.MatchString(customer.Cnic) {
		errs = append(errs, "CNIC must be 13 digits")
	}

	if customer.Address == "" {
		errs = append(errs, "Address is required")
	}

	if customer.Contact == "" {
		errs = append(errs, "Contact is required")
	} else if !contactPattern.MatchString(customer.Contact) {
		errs = append(errs, "Contact must be 11 digits")
	}

	seen := make(map[string]bool, len(customer.PurchaseHistory))
	for _, entry := range customer.PurchaseHistory {
		if entry.ChasisNo == "" || len(entry.ChasisNo) < 2 || len(entry.ChasisNo) > 20 {
			errs = append(errs, "Chasis No can be between 2 and 20 characters")
			continue
		}
		if seen[entry.ChasisNo] {
			errs = append(errs, "Each Chasis No must be unique within the purchase history")
			break
		}
		seen[entry.ChasisNo] = true
	}

	return errs
}
