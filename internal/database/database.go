package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// historyLimit caps how many records Recent returns.
const historyLimit = 50

// Database handles database operations
type Database struct {
	db *gorm.DB
}

// NewDatabase creates a new database instance
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	database := &Database{db: db}

	// Auto-migrate the schema
	err = db.AutoMigrate(&CompressionRecord{})
	if err != nil {
		return nil, err
	}

	return database, nil
}

// Record persists one compression attempt.
func (d *Database) Record(rec *CompressionRecord) error {
	return d.db.Create(rec).Error
}

// Recent returns the most recent compression records, newest first.
func (d *Database) Recent() ([]CompressionRecord, error) {
	var records []CompressionRecord
	err := d.db.Order("created_at desc").Limit(historyLimit).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// TotalsSaved sums completed attempts and bytes saved across all history.
func (d *Database) TotalsSaved() (int64, int64, error) {
	var count int64
	err := d.db.Model(&CompressionRecord{}).Where("status = ?", StatusCompleted).Count(&count).Error
	if err != nil {
		return 0, 0, err
	}

	type sums struct {
		Original   int64
		Compressed int64
	}
	var s sums
	err = d.db.Model(&CompressionRecord{}).
		Select("COALESCE(SUM(original_size),0) as original, COALESCE(SUM(compressed_size),0) as compressed").
		Where("status = ?", StatusCompleted).
		Scan(&s).Error
	if err != nil {
		return 0, 0, err
	}

	saved := s.Original - s.Compressed
	if saved < 0 {
		saved = 0
	}
	return count, saved, nil
}
