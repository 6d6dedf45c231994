package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record corresponds to the settings table.
type Record struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SettingKey   string    `gorm:"type:varchar(255);not null;unique" json:"setting_key"`
	SettingValue string    `gorm:"type:text;not null" json:"setting_value"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Record model.
func (Record) TableName() string {
	return "settings"
}

// GormStore persists keys as rows in a relational database through GORM.
// It works against SQLite, MySQL and PostgreSQL alike.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore prepares the settings table on db and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate settings table: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Get retrieves a value by its key.
func (s *GormStore) Get(key string) ([]byte, error) {
	var record Record
	err := s.db.Where("setting_key = ?", key).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(record.SettingValue), nil
}

// Set stores a key-value pair, updating the row in place when the key
// already exists.
func (s *GormStore) Set(key string, value []byte) error {
	record := Record{
		SettingKey:   key,
		SettingValue: string(value),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&record).Error
}

// Delete removes a key.
func (s *GormStore) Delete(key string) error {
	return s.db.Where("setting_key = ?", key).Delete(&Record{}).Error
}

// Exists checks if a key exists.
func (s *GormStore) Exists(key string) (bool, error) {
	var count int64
	err := s.db.Model(&Record{}).Where("setting_key = ?", key).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Clear removes all rows from the settings table.
func (s *GormStore) Clear() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Record{}).Error
}

// Sync is a no-op, every write is committed as it happens.
func (s *GormStore) Sync() error {
	return nil
}

// Close closes the underlying database connection.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
