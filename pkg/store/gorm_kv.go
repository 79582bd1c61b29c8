package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/altitude-guard/pkg/db"
	"liyu1981.xyz/altitude-guard/pkg/models"
)

type GormKV struct {
	Db *db.DB
}

func NewGormKV(database *db.DB) *GormKV {
	return &GormKV{Db: database}
}

func (g *GormKV) Get(ctx context.Context, key string) ([]byte, error) {
	var record models.KVRecord
	err := g.Db.Conn.WithContext(ctx).First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record.Value, nil
}

func (g *GormKV) Set(ctx context.Context, key string, value []byte) error {
	record := models.KVRecord{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return g.Db.Conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&record).Error
}
