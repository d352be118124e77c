package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tableBlob is the single relational table behind the GormBackend: one row
// per logical table, the whole document in a jsonb column. The store
// contract is read/replace-wholesale, so rows are only ever upserted.
type tableBlob struct {
	Name string `gorm:"primaryKey;type:varchar(64)"`
	Data []byte `gorm:"type:jsonb;not null"`
}

func (tableBlob) TableName() string { return "table_blobs" }

type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

// Migrate creates the blob table. Called once at startup, not per backend,
// so tests can wire a mocked connection without migration traffic.
func (g *GormBackend) Migrate() error {
	return g.db.AutoMigrate(&tableBlob{})
}

func (g *GormBackend) ReadTable(ctx context.Context, name string) ([]byte, error) {
	var blob tableBlob
	err := g.db.WithContext(ctx).First(&blob, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTableMissing
	}
	if err != nil {
		return nil, err
	}
	return blob.Data, nil
}

func (g *GormBackend) WriteTable(ctx context.Context, name string, data []byte) error {
	blob := tableBlob{Name: name, Data: data}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data"}),
		}).
		Create(&blob).Error
}

func ConnectGORMWithRetry(dsn string, maxRetries int) (*gorm.DB, error) {
	var lastErr error

	for i := 1; i <= maxRetries; i++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			lastErr = err
			time.Sleep(2 * time.Second)
			continue
		}

		sqlDB, err := db.DB()
		if err != nil {
			lastErr = err
			time.Sleep(2 * time.Second)
			continue
		}

		if err := sqlDB.Ping(); err != nil {
			lastErr = err
			time.Sleep(2 * time.Second)
			continue
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)

		return db, nil
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, lastErr)
}
