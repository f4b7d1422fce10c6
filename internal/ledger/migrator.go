package ledger

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Migration is one versioned step of the ledger schema
type Migration struct {
	Version string
	Name    string
	Up      func(*gorm.DB) error
	Down    func(*gorm.DB) error
}

// MigrationRecord tracks an applied migration
type MigrationRecord struct {
	Version   string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (MigrationRecord) TableName() string {
	return "schema_migrations"
}

// Migrator handles the execution of migrations
type Migrator struct {
	db         *gorm.DB
	migrations []*Migration
}

// NewMigrator creates a new Migrator instance
func NewMigrator(db *gorm.DB, migrations ...*Migration) *Migrator {
	m := &Migrator{
		db:         db,
		migrations: make([]*Migration, 0, len(migrations)),
	}
	for _, mr := range migrations {
		m.Register(mr)
	}
	return m
}

// Register adds a migration to the migrator
func (m *Migrator) Register(migration *Migration) {
	m.migrations = append(m.migrations, migration)
}

// ensureVersionTable creates the version tracking table if it doesn't exist
func (m *Migrator) ensureVersionTable() error {
	return m.db.AutoMigrate(&MigrationRecord{})
}

// GetAppliedVersions returns a map of applied migration versions
func (m *Migrator) GetAppliedVersions() (map[string]bool, error) {
	if err := m.ensureVersionTable(); err != nil {
		return nil, err
	}

	var records []MigrationRecord
	if err := m.db.Find(&records).Error; err != nil {
		return nil, err
	}

	versions := make(map[string]bool)
	for _, record := range records {
		versions[record.Version] = true
	}
	return versions, nil
}

// Up applies all pending migrations in registration order
func (m *Migrator) Up() error {
	applied, err := m.GetAppliedVersions()
	if err != nil {
		return err
	}

	for _, mr := range m.migrations {
		if applied[mr.Version] {
			continue
		}

		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := mr.Up(tx); err != nil {
				return err
			}
			return tx.Create(&MigrationRecord{
				Version:   mr.Version,
				Name:      mr.Name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", mr.Name, err)
		}
	}
	return nil
}

// Down rolls back the most recent applied migration
func (m *Migrator) Down() error {
	var lastRecord MigrationRecord
	if err := m.db.Order("version DESC").First(&lastRecord).Error; err != nil {
		return fmt.Errorf("no migrations to revert: %w", err)
	}

	var targetMigration *Migration
	for _, mr := range m.migrations {
		if mr.Version == lastRecord.Version {
			targetMigration = mr
			break
		}
	}

	if targetMigration == nil {
		return fmt.Errorf("migration for version %s not registered", lastRecord.Version)
	}

	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := targetMigration.Down(tx); err != nil {
			return fmt.Errorf("failed to revert migration %s: %w", targetMigration.Name, err)
		}
		return tx.Delete(&lastRecord).Error
	})
}

// Migrations returns the ledger schema in the order it must be applied
func Migrations() []*Migration {
	return []*Migration{
		{
			Version: "20261016000001",
			Name:    "create_payments",
			Up: func(db *gorm.DB) error {
				return db.AutoMigrate(&Payment{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&Payment{})
			},
		},
		{
			Version: "20261016000002",
			Name:    "create_lease_events",
			Up: func(db *gorm.DB) error {
				return db.AutoMigrate(&LeaseEvent{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&LeaseEvent{})
			},
		},
	}
}
