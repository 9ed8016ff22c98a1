package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tableBlob is one row per table: the same JSON array the other adapters
// store, kept as a blob so every medium shares the identical contract.
type tableBlob struct {
	Name      string `gorm:"primaryKey;size:64"`
	Data      []byte
	UpdatedAt time.Time
}

func (tableBlob) TableName() string { return "salon_tables" }

// Gorm persists tables in Postgres.
type Gorm struct {
	db *gorm.DB
}

var _ Adapter = (*Gorm)(nil)

func NewGorm(dsn string) (*Gorm, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(&tableBlob{}); err != nil {
		return nil, err
	}

	return &Gorm{db: db}, nil
}

func (g *Gorm) Get(ctx context.Context, table string) ([]byte, error) {
	var row tableBlob
	err := g.db.WithContext(ctx).First(&row, "name = ?", table).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Data, nil
}

func (g *Gorm) PutAll(ctx context.Context, table string, data []byte) error {
	row := tableBlob{Name: table, Data: data}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}
