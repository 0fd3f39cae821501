package storage

import (
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/restaurant-client/utils"
)

// KVEntry is the single table backing the durable store.
type KVEntry struct {
	K string `gorm:"primaryKey;type:varchar(512)"`
	V string `gorm:"type:text"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// GormStore persists keys in a relational database. SQLite is the
// on-device default; venue-managed kiosks can point the same store at a
// shared MySQL or Postgres instance instead.
type GormStore struct {
	db *gorm.DB
}

// OpenGorm opens a store for the given driver. dsn is a file path for
// sqlite and a connection string otherwise.
func OpenGorm(driver, dsn string) (*GormStore, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite", "":
		dialector = sqlite.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return NewGormStore(db)
}

// NewGormStore wraps an existing connection; tests hand in an in-memory
// SQLite database.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(key string) (string, bool) {
	var entry KVEntry
	if err := s.db.First(&entry, "k = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorLogger.Printf("storage: read of %q failed: %v", key, err)
		}
		return "", false
	}
	return entry.V, true
}

func (s *GormStore) Set(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "k"}},
		DoUpdates: clause.AssignmentColumns([]string{"v"}),
	}).Create(&KVEntry{K: key, V: value}).Error
}

func (s *GormStore) Remove(key string) {
	if err := s.db.Delete(&KVEntry{}, "k = ?", key).Error; err != nil {
		utils.ErrorLogger.Printf("storage: remove of %q failed: %v", key, err)
	}
}
