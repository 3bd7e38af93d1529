// Seed inserts the pre-populated demo customers. Safe to run repeatedly:
// existing rows are updated in place.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nvoronina/bankledger/internal/db"
)

type seedCustomer struct {
	ID         int64
	FirstName  string
	MiddleName string
	LastName   string
}

var customers = []seedCustomer{
	{ID: 1, FirstName: "Grace", MiddleName: "A", LastName: "Okoro"},
	{ID: 2, FirstName: "Tomas", LastName: "Berg"},
	{ID: 3, FirstName: "Maria", MiddleName: "Lucia", LastName: "Santos"},
	{ID: 4, FirstName: "Pavel", LastName: "Novak"},
	{ID: 5, FirstName: "Linda", LastName: "Osei"},
}

const upsertCustomer = `
INSERT INTO customers (id, first_name, middle_name, last_name)
OVERRIDING SYSTEM VALUE
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET first_name = EXCLUDED.first_name,
    middle_name = EXCLUDED.middle_name,
    last_name = EXCLUDED.last_name
`

// Keep the id sequence ahead of the explicitly inserted rows
const bumpSequence = `
SELECT setval(pg_get_serial_sequence('customers', 'id'), (SELECT max(id) FROM customers))
`

func main() {
	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URI")
	if dsn == "" {
		slog.Error("DATABASE_URI is required")
		os.Exit(1)
	}

	pool, err := db.ConnectAndMigrate(ctx, dsn)
	if err != nil {
		slog.Error("can't connect to db", "error", err.Error())
		os.Exit(1)
	}
	defer pool.Close()

	for _, c := range customers {
		if _, err := pool.Exec(ctx, upsertCustomer, c.ID, c.FirstName, c.MiddleName, c.LastName); err != nil {
			slog.Error("can't seed customer", "id", c.ID, "error", err.Error())
			os.Exit(1)
		}
	}

	if _, err := pool.Exec(ctx, bumpSequence); err != nil {
		slog.Error("can't update customers id sequence", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("seeded customers", "count", len(customers))
}
