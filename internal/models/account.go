package models

import (
	"time"
)

// Account balance is stored in minor currency units (cents).
// Conversion to decimal dollars happens at the service boundary only.
type Account struct {
	ID         int64
	CustomerID int64
	Balance    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
