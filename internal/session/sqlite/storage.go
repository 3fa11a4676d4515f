package sqlite

import (
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// credential is one persisted key-value pair. The table holds at most a
// handful of rows per installation.
type credential struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (credential) TableName() string {
	return "credentials"
}

// Storage persists portal credentials in a local sqlite file so a session
// survives process restarts.
type Storage struct {
	db *gorm.DB
}

// Open creates or opens the credentials database at path. ":memory:" works
// for throwaway stores.
func Open(path string) (*Storage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&credential{}); err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Get(key string) (string, bool, error) {
	var row credential
	err := s.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Value, true, nil
}

func (s *Storage) Set(key, value string) error {
	row := credential{Key: key, Value: value}
	return s.db.Save(&row).Error
}

func (s *Storage) Delete(key string) error {
	return s.db.Delete(&credential{}, "key = ?", key).Error
}
