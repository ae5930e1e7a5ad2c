package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgres returns a connected GORM DB instance. SSL is required unless the
// connection string already pins an sslmode.
func NewPostgres(databaseURL string) (*gorm.DB, error) {
	dsn := databaseURL
	if !strings.Contains(dsn, "sslmode=") {
		if strings.Contains(dsn, "?") {
			dsn += "&sslmode=require"
		} else {
			dsn += "?sslmode=require"
		}
	}

	// recipient=0 is an "unassigned" sentinel, not a row reference, so
	// relation constraints are not created at migration time.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}
