package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// document is the single-table layout for the SQLite engine: one row per
// named document, the JSON payload stored verbatim.
type document struct {
	Name string `gorm:"primaryKey;column:name"`
	Data []byte `gorm:"column:data"`
}

func (document) TableName() string { return "documents" }

// SqliteBackend stores all documents in one embedded SQLite database. Same
// load/save contract as FileBackend; useful once the flat files outgrow
// themselves.
type SqliteBackend struct {
	db *gorm.DB
}

func NewSqliteBackend(dbPath string) (*SqliteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // app logging goes through pkg/logger
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite backend: open: %w", err)
	}

	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("sqlite backend: migrate: %w", err)
	}

	return &SqliteBackend{db: db}, nil
}

func (b *SqliteBackend) Load(name string) ([]byte, bool, error) {
	var doc document
	err := b.db.First(&doc, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc.Data, true, nil
}

func (b *SqliteBackend) Save(name string, data []byte) error {
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&document{Name: name, Data: data}).Error
}

func (b *SqliteBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
