package domain

import (
	"errors"
	"strings"
)

const DateLayout = "2006-01-02"

const (
	TransactionIncome  = "INCOME"
	TransactionExpense = "EXPENSE"
)

const (
	CategoryMaintenance  = "Maintenance"
	CategoryWorkshopSale = "Workshop Sale"
)

// CategoryBrother marks units owned by the fleet itself. Servicing an owned
// unit is booked as an expense; everything else is workshop income.
const CategoryBrother = "BROTHER"

const StatusPaid = "PAID"

// DefaultSaleDescription is the fallback line item text for a workshop sale
// without a custom action.
const DefaultSaleDescription = "Servis"

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Unit is a vehicle tracked by the fleet. The plate is the natural key; it is
// stored in canonical form (uppercase, trimmed) but matched case-insensitively
// to tolerate older records.
type Unit struct {
	Plate    string `json:"plate"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category"`
	Year     int    `json:"year,omitempty"`
}

// ServiceRecord is one workshop visit for a unit. PlateNumber is a soft
// reference: it is not validated against the units collection.
type ServiceRecord struct {
	ID           int64  `json:"id"`
	PlateNumber  string `json:"plateNumber"`
	Mileage      int64  `json:"mileage"`
	ServiceDate  string `json:"serviceDate"`
	WorkshopName string `json:"workshopName"`
	Cost         int64  `json:"cost"`
	Description  string `json:"description"`
}

// Transaction is a financial ledger entry. RelatedID links service-derived
// transactions back to their ServiceRecord and is zero otherwise.
type Transaction struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	PlateNumber string `json:"plateNumber,omitempty"`
	Status      string `json:"status"`
	RelatedID   int64  `json:"relatedId,omitempty"`
	Date        string `json:"date"`
}

// Part is a spare-parts inventory line. Stock is the only field this system
// mutates; no floor is enforced, so oversold parts go negative.
type Part struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int64  `json:"stock"`
}

// UnitDetail bundles a unit with every service and transaction that
// references its plate, in collection order.
type UnitDetail struct {
	Unit         Unit            `json:"unit"`
	Services     []ServiceRecord `json:"services"`
	Transactions []Transaction   `json:"transactions"`
}

// Dataset is a whole-database snapshot of all four collections.
type Dataset struct {
	Units        []Unit          `json:"units"`
	Services     []ServiceRecord `json:"services"`
	Transactions []Transaction   `json:"transactions"`
	Parts        []Part          `json:"parts"`
}

// NormalizePlate returns the canonical stored form of a plate: leading and
// trailing whitespace removed, letters uppercased. Normalizing is idempotent.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// IsExpenseFor reports whether servicing the given unit is booked as an
// expense. A nil unit means the plate did not resolve; that defaults to
// income.
func IsExpenseFor(unit *Unit) bool {
	return unit != nil && unit.Category == CategoryBrother
}
