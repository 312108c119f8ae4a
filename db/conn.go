// Package db opens the database connections used by the visitor store
package db

import (
	"bitwise74/visitor-api/internal/model"
	"bitwise74/visitor-api/pkg/util"
	"errors"
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMongo    = "mongo"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var ValidDrivers = []string{DriverMongo, DriverSQLite, DriverPostgres}

// NewSQL opens a gorm connection for the sqlite and postgres drivers and
// migrates the visitor table.
func NewSQL(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch driver {
	case DriverSQLite:
		if dsn == "" {
			dsn = "database.db"
		}

		// If running in a docker container don't allow the sqlite file to be created.
		// The host should instead mount it using volumes
		if util.IsRunningInDocker() && dsn == "database.db" {
			if _, err := os.Stat(dsn); errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("SQLite database file not mounted, please use docker volumes to mount it to /app/database.db")
			}
		}

		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		if dsn == "" {
			return nil, errors.New("postgres requires a connection string")
		}

		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s database, %w", driver, err)
	}

	err = db.AutoMigrate(model.Visitor{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
