package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// blobRecord holds one named collection serialized as a single JSON document.
// Writes replace the whole document, so a failed write leaves the previous
// document intact rather than a half-updated one.
type blobRecord struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (blobRecord) TableName() string { return "collections" }

var errBlobMissing = errors.New("collection blob missing")

func readBlob(database *gorm.DB, key string, target any) error {
	var record blobRecord
	if err := database.First(&record, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errBlobMissing
		}
		return fmt.Errorf("read %s collection: %w", key, err)
	}
	if err := json.Unmarshal(record.Value, target); err != nil {
		return fmt.Errorf("decode %s collection: %w", key, err)
	}
	return nil
}

func writeBlob(database *gorm.DB, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s collection: %w", key, err)
	}

	record := blobRecord{Key: key, Value: encoded, UpdatedAt: time.Now()}
	if err := database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error; err != nil {
		return fmt.Errorf("write %s collection: %w", key, err)
	}
	return nil
}
