package store

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry merepresentasikan tabel 'kv_store' di database
type KVEntry struct {
	Key   string          `gorm:"primaryKey;size:255;column:key"`
	Value json.RawMessage `gorm:"type:json;column:value"`
}

func (KVEntry) TableName() string {
	return "kv_store"
}

// GormStore menyimpan dokumen di satu tabel key-value MySQL.
// Prefix scan diterjemahkan jadi LIKE 'prefix%'.
type GormStore struct {
	db *gorm.DB
}

// NewGorm membuka koneksi MySQL dan memastikan tabelnya ada
func NewGorm(dsn string) (*GormStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}

	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).First(&entry, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	entry := KVEntry{Key: key, Value: raw}

	// Upsert: kalau key sudah ada, timpa value-nya
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&KVEntry{}, "`key` = ?", key).Error
}

func (s *GormStore) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	var entries []KVEntry
	err := s.db.WithContext(ctx).
		Where("`key` LIKE ?", prefix+"%").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	values := make([]json.RawMessage, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Value)
	}
	return values, nil
}
