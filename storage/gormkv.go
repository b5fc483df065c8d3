package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// collectionRow is one whole collection document. Keeping the JSON array in a
// single row preserves last-write-wins at collection granularity, the same
// contract the other backings expose.
type collectionRow struct {
	Collection string    `gorm:"primaryKey;column:collection;size:64"`
	Value      []byte    `gorm:"column:value;type:longblob"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (collectionRow) TableName() string {
	return "collections"
}

// GormKV backs the store with a MySQL table of collection documents.
type GormKV struct {
	db *gorm.DB
}

func NewGormKV(dsn string) (*GormKV, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("migrate collections table: %w", err)
	}
	return &GormKV{db: db}, nil
}

func (g *GormKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row collectionRow
	err := g.db.WithContext(ctx).First(&row, "collection = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", key, err)
	}
	return row.Value, true, nil
}

func (g *GormKV) Set(ctx context.Context, key string, value []byte) error {
	row := collectionRow{Collection: key, Value: value, UpdatedAt: time.Now()}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}
