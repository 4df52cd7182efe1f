// Package db opens the MySQL connection the rest of the application shares.
package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL opens a GORM connection to MySQL. The DSN must include
// parseTime=True: wedding dates and RSVP timestamps scan into time.Time.
// Statements are prepared and cached since the CRUD surface is small and
// repetitive.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}
