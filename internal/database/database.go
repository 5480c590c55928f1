package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lucasvieira/booklist/internal/entities"
)

// initialBooks are inserted once, when the books table is empty at startup.
var initialBooks = []struct {
	Title         string
	Author        string
	PublishedYear int
}{
	{Title: "O Senhor dos Anéis", Author: "J.R.R. Tolkien", PublishedYear: 1954},
	{Title: "1984", Author: "George Orwell", PublishedYear: 1949},
	{Title: "Dom Casmurro", Author: "Machado de Assis", PublishedYear: 1899},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Book{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	// Seeding failures must not block startup.
	if err := database.seedBooks(); err != nil {
		log.Printf("WARNING: failed to seed initial books: %v", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedBooks inserts the initial records when the table is empty. A failed
// count skips seeding instead of being treated as zero, so a transient count
// error can never insert duplicate seed rows into a populated table.
func (d *Database) seedBooks() error {
	var count int64
	if err := d.DB.Model(&entities.Book{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count books: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	for _, seed := range initialBooks {
		book := entities.Book{
			ID:            uuid.NewString(),
			Title:         seed.Title,
			Author:        seed.Author,
			PublishedYear: seed.PublishedYear,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := d.DB.Create(&book).Error; err != nil {
			return fmt.Errorf("failed to seed book %q: %w", seed.Title, err)
		}
	}

	log.Printf("Seeded %d initial books", len(initialBooks))
	return nil
}
