package models

import (
	"time"
)

// Transfer is an immutable record of one completed funds movement.
// Amount is stored in minor currency units.
type Transfer struct {
	ID            int64
	FromAccountID int64
	ToAccountID   int64
	Amount        int64
	TransferDate  time.Time
}
