package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"taskboard/internal/model"
)

// Fixed keys the two collections are stored under.
const (
	keyTasks      = "tasks"
	keyCategories = "categories"
)

// Entry is one key/value row. A value holds a whole collection
// serialized as JSON text.
type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "entries"
}

// Store persists the task and category collections in a local SQLite
// file, each collection under its own key.
type Store struct {
	db *gorm.DB
}

// Open opens the SQLite database and runs migrations.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = "taskboard.db"
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// LoadTasks reads the task collection. A missing or unreadable value
// loads as an empty collection.
func (s *Store) LoadTasks() []model.Task {
	raw, ok := s.loadRaw(keyTasks)
	if !ok {
		return nil
	}
	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		log.Printf("[warn] stored %s unreadable, starting empty: %v", keyTasks, err)
		return nil
	}
	return tasks
}

// LoadCategories reads the category collection, falling back to empty
// the same way LoadTasks does.
func (s *Store) LoadCategories() []model.Category {
	raw, ok := s.loadRaw(keyCategories)
	if !ok {
		return nil
	}
	var categories []model.Category
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		log.Printf("[warn] stored %s unreadable, starting empty: %v", keyCategories, err)
		return nil
	}
	return categories
}

func (s *Store) SaveTasks(tasks []model.Task) error {
	return s.save(keyTasks, tasks)
}

func (s *Store) SaveCategories(categories []model.Category) error {
	return s.save(keyCategories, categories)
}

func (s *Store) loadRaw(key string) (string, bool) {
	var entry Entry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		return "", false
	}
	return entry.Value, true
}

func (s *Store) save(key string, collection any) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	entry := Entry{Key: key, Value: string(data), UpdatedAt: time.Now()}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error; err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// ensureDirForSQLite creates the parent dir for the SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	// Ignore DSNs with explicit mode=memory or network.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	// Strip file: prefix if present.
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
