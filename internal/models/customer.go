package models

import (
	"time"
)

type Customer struct {
	ID         int64
	CreatedAt  time.Time
	FirstName  string
	MiddleName string
	LastName   string
}
