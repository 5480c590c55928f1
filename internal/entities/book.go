package entities

import "time"

// Book is the catalog's sole entity. Column names keep the camelCase schema
// of the original database file so existing data stays readable.
type Book struct {
	ID            string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Title         string    `gorm:"column:title;not null;size:512" json:"title"`
	Author        string    `gorm:"column:author;not null;size:256" json:"author"`
	PublishedYear int       `gorm:"column:publishedYear;not null" json:"publishedYear"`
	CreatedAt     time.Time `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updatedAt" json:"updatedAt"`
}

func (Book) TableName() string {
	return "books"
}
