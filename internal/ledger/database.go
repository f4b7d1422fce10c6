package ledger

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open creates the session ledger in an in-memory SQLite database and applies
// the schema. The database lives only as long as the returned handle.
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger connection: %w", err)
	}
	// every new connection to :memory: is a fresh, empty database
	sqlDB.SetMaxOpenConns(1)

	if err := NewMigrator(db, Migrations()...).Up(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// Close releases the ledger database, discarding its contents
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
