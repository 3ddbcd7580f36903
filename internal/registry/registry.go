package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Record is one checked template: its content hash at check time and
// the outcome. A template is re-checked only when its hash changes.
type Record struct {
	ID         string `gorm:"primaryKey"`
	Path       string `gorm:"uniqueIndex"`
	Hash       string
	OK         bool
	Diagnostic string // empty when OK
	CheckedAt  time.Time
}

// Registry is a persistent store of parse results, backed by sqlite.
type Registry struct {
	db *gorm.DB
}

// Open opens (or creates) the registry database at path, creating
// parent directories as needed.
func Open(path string) (*Registry, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating registry directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening registry: %w", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrating registry: %w", err)
	}

	return &Registry{db: db}, nil
}

// Hash returns the content hash used to detect template changes.
func Hash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Lookup returns the record for path if it exists and its hash still
// matches, meaning the stored outcome is current.
func (r *Registry) Lookup(path, hash string) (*Record, bool) {
	var rec Record
	if err := r.db.Where("path = ?", path).First(&rec).Error; err != nil {
		return nil, false
	}
	if rec.Hash != hash {
		return nil, false
	}
	return &rec, true
}

// Store records the outcome of checking path, replacing any previous
// record for it.
func (r *Registry) Store(path, hash string, ok bool, diagnostic string) error {
	var rec Record
	err := r.db.Where("path = ?", path).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = Record{ID: uuid.NewString(), Path: path}
	} else if err != nil {
		return err
	}

	rec.Hash = hash
	rec.OK = ok
	rec.Diagnostic = diagnostic
	rec.CheckedAt = time.Now()

	return r.db.Save(&rec).Error
}

// Forget removes the record for path, forcing a re-check next time.
func (r *Registry) Forget(path string) error {
	return r.db.Where("path = ?", path).Delete(&Record{}).Error
}

// All returns every record, most recently checked first.
func (r *Registry) All() ([]Record, error) {
	var recs []Record
	err := r.db.Order("checked_at desc").Find(&recs).Error
	return recs, err
}

// Close closes the underlying database connection.
func (r *Registry) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
