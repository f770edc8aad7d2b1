package storage

import (
	"context"
	"errors"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// record is a single keyed value row.
type record struct {
	Key   string         `gorm:"column:key;primaryKey"`
	Value datatypes.JSON `gorm:"column:value"`
}

func (record) TableName() string {
	return "records"
}

// OpenSQLite opens the embedded SQLite database at path (":memory:" allowed).
func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// OpenPostgres opens a Postgres DB from DSN. PreferSimpleProtocol disables
// prepared statement caching to avoid 42P05 when behind a connection pooler.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// GormStore implements Store on a single-table GORM database.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore migrates the records table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, err
	}
	return &GormStore{DB: db}, nil
}

func (s *GormStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	var r record
	err := s.DB.WithContext(ctx).Where("key = ?", key).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(r.Value), true, nil
}

func (s *GormStore) Write(ctx context.Context, key string, value []byte) error {
	r := record{Key: key, Value: datatypes.JSON(value)}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&r).Error
}

func (s *GormStore) Clear(ctx context.Context, key string) error {
	return s.DB.WithContext(ctx).Where("key = ?", key).Delete(&record{}).Error
}
