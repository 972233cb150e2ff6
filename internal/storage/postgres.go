package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smartlabo/labostock/internal/database"
)

// AppDocument is the single-row-per-key document table backing PostgresStore.
type AppDocument struct {
	Key       string         `gorm:"primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName sets the table name for GORM.
func (AppDocument) TableName() string {
	return "app_documents"
}

// PostgresStore keeps the JSON documents in a Postgres table, connecting
// through the embedded-or-external database layer.
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore migrates the document table and returns the store.
func NewPostgresStore(db *database.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&AppDocument{}); err != nil {
		return nil, fmt.Errorf("migrate document table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Load decodes the document row for key, if any.
func (s *PostgresStore) Load(key string, v any) bool {
	var doc AppDocument
	if err := s.db.First(&doc, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ Storage: cannot read %s: %v", key, err)
		}
		return false
	}
	if err := decodeDocument(doc.Value, v); err != nil {
		log.Printf("⚠️ Storage: corrupt document %s, falling back to defaults: %v", key, err)
		return false
	}
	return true
}

// Save upserts the document row for key.
func (s *PostgresStore) Save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("⚠️ Storage: cannot serialize %s: %v", key, err)
		return
	}
	doc := AppDocument{Key: key, Value: datatypes.JSON(data)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		log.Printf("⚠️ Storage: cannot write %s: %v", key, err)
	}
}
