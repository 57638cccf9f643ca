package models

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/volttrack/mis_backend/config"
	"github.com/volttrack/mis_backend/utils"
)

// SnapshotKey is the single key holding the JSON-serialized record array.
// It matches the original browser app's localStorage key so an exported
// snapshot imports cleanly.
const SnapshotKey = "volttrack_mis_data"

// KeyValue backs the snapshot persistence contract: one key, whole-array
// overwrite on every mutation, no partial updates. The value is derived data
// from the in-memory store and can always be rewritten from it.
type KeyValue struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:longtext" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func MigrateTable() {
	db := config.GetDB()
	utils.ErrorPanic(db.AutoMigrate(&KeyValue{}))
}

// LoadSnapshot reads and decodes the stored record array. A missing key is
// not an error: it returns (nil, nil), meaning a fresh install.
func LoadSnapshot(ctx context.Context) ([]RawRecord, error) {
	db := config.GetDB()

	var kv KeyValue
	err := db.WithContext(ctx).Where("`key` = ?", SnapshotKey).First(&kv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var raw []RawRecord
	dec := json.NewDecoder(strings.NewReader(kv.Value))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// SaveSnapshot overwrites the key with the full current collection.
func SaveSnapshot(ctx context.Context, records []*TransformerRecord) error {
	payload, err := utils.MarshalToJSON(records)
	if err != nil {
		return err
	}

	db := config.GetDB()
	kv := KeyValue{Key: SnapshotKey, Value: payload}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv).Error
}
