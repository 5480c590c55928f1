package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lucasvieira/booklist/internal/database/books"
	"github.com/lucasvieira/booklist/internal/entities"
)

// BookStore defines database operations for book management.
type BookStore interface {
	List(titleFilter string) ([]entities.Book, error)
	GetByID(id string) (*entities.Book, error)
	Create(title, author string, publishedYear int) (*entities.Book, error)
	Update(id string, patch books.Patch) (*entities.Book, error)
	Delete(id string) (bool, error)
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// BookPayload is the request body for create and update operations. Pointer
// fields distinguish "absent" from zero values, so publishedYear 0 counts as
// supplied.
type BookPayload struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	PublishedYear *int    `json:"publishedYear"`
}

// validateFull checks the payload for create and full-update operations:
// every field must be present, title and author non-blank after trimming,
// publishedYear non-negative. Returns the cleaned values or an error message.
func validateFull(req BookPayload) (title, author string, year int, errMsg string) {
	if req.Title == nil || req.Author == nil || req.PublishedYear == nil {
		return "", "", 0, "title, author and publishedYear are all required"
	}
	title = strings.TrimSpace(*req.Title)
	author = strings.TrimSpace(*req.Author)
	if title == "" || author == "" {
		return "", "", 0, "title, author and publishedYear are all required"
	}
	if *req.PublishedYear < 0 {
		return "", "", 0, "publishedYear must be a non-negative number"
	}
	return title, author, *req.PublishedYear, ""
}

// List returns all books, optionally filtered by title substring.
// GET /books?title=<substring>
func (bc *BooksController) List(c *gin.Context) {
	titleFilter := c.Query("title")

	items, err := bc.store.List(titleFilter)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	respondList(c, items, len(items))
}

// Get returns a single book by id.
// GET /books/:id
func (bc *BooksController) Get(c *gin.Context) {
	book, err := bc.store.GetByID(c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}

	respondOK(c, book)
}

// Create adds a new book.
// POST /books
func (bc *BooksController) Create(c *gin.Context) {
	var req BookPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	title, author, year, errMsg := validateFull(req)
	if errMsg != "" {
		respondBadRequest(c, errMsg)
		return
	}

	book, err := bc.store.Create(title, author, year)
	if err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	respondCreated(c, "book created successfully", book)
}

// Update replaces all business fields of a book.
// PUT /books/:id
func (bc *BooksController) Update(c *gin.Context) {
	var req BookPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	title, author, year, errMsg := validateFull(req)
	if errMsg != "" {
		respondBadRequest(c, errMsg)
		return
	}

	book, err := bc.store.Update(c.Param("id"), books.Patch{
		Title:         &title,
		Author:        &author,
		PublishedYear: &year,
	})
	if err != nil {
		respondInternalError(c, err, "update book")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}

	respondOKWithMessage(c, "book updated successfully", book)
}

// PartialUpdate changes any non-empty subset of a book's business fields.
// Blank-after-trim strings count as not supplied.
// PATCH /books/:id
func (bc *BooksController) PartialUpdate(c *gin.Context) {
	var req BookPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	var patch books.Patch
	if req.Title != nil {
		if title := strings.TrimSpace(*req.Title); title != "" {
			patch.Title = &title
		}
	}
	if req.Author != nil {
		if author := strings.TrimSpace(*req.Author); author != "" {
			patch.Author = &author
		}
	}
	if req.PublishedYear != nil {
		if *req.PublishedYear < 0 {
			respondBadRequest(c, "publishedYear must be a non-negative number")
			return
		}
		patch.PublishedYear = req.PublishedYear
	}

	if patch.IsEmpty() {
		respondBadRequest(c, "at least one of title, author or publishedYear must be provided")
		return
	}

	book, err := bc.store.Update(c.Param("id"), patch)
	if err != nil {
		respondInternalError(c, err, "partially update book")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}

	respondOKWithMessage(c, "book updated successfully", book)
}

// Delete removes a book.
// DELETE /books/:id
func (bc *BooksController) Delete(c *gin.Context) {
	deleted, err := bc.store.Delete(c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	if !deleted {
		respondNotFound(c, "book")
		return
	}

	respondMessage(c, "book deleted successfully")
}
