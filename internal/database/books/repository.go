// Package books provides database operations for the book catalog.
//
// Lookups that find no row return a nil book with a nil error, so callers
// can tell "absent" apart from a storage failure.
package books

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasvieira/booklist/internal/entities"
)

// Patch is a sparse update of a book's business fields. Nil pointers leave
// the corresponding column untouched.
type Patch struct {
	Title         *string
	Author        *string
	PublishedYear *int
}

// IsEmpty reports whether the patch supplies no fields at all.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.PublishedYear == nil
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List retrieves all books, most recently created first. A non-empty
// titleFilter restricts the result to titles containing it as a
// case-insensitive substring.
func (r *Repository) List(titleFilter string) ([]entities.Book, error) {
	books := []entities.Book{}
	query := r.db.Order("createdAt DESC")
	if titleFilter != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+titleFilter+"%")
	}
	err := query.Find(&books).Error
	return books, err
}

// GetByID retrieves a book by its id, or (nil, nil) when no such row exists.
func (r *Repository) GetByID(id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("id = ?", id).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Create inserts a new book with a generated id and returns the row as
// persisted, re-read from storage rather than echoing the input.
func (r *Repository) Create(title, author string, publishedYear int) (*entities.Book, error) {
	now := time.Now()
	book := entities.Book{
		ID:            uuid.NewString(),
		Title:         title,
		Author:        author,
		PublishedYear: publishedYear,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := r.db.Create(&book).Error; err != nil {
		return nil, err
	}
	return r.GetByID(book.ID)
}

// Update applies a sparse patch to an existing book, always refreshing
// updatedAt, and returns the post-update row. Returns (nil, nil) without
// mutating anything when the id is absent.
func (r *Repository) Update(id string, patch Patch) (*entities.Book, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	fields := map[string]any{"updatedAt": time.Now()}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Author != nil {
		fields["author"] = *patch.Author
	}
	if patch.PublishedYear != nil {
		fields["publishedYear"] = *patch.PublishedYear
	}

	if err := r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete removes a book. Returns false without side effects when the id is
// absent.
func (r *Repository) Delete(id string) (bool, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	if err := r.db.Delete(&entities.Book{}, "id = ?", id).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Count returns the total number of books. Errors propagate so the caller
// can tell a failed count from an empty table.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}
