package data

import (
	"time"

	"github.com/prathameshlakare/bookreview/internal/validator"
)

// Book defines a book record. PostedBy is a weak reference to the user who
// posted the book; PostedByName is denormalized from the users table at read
// time for display.
type Book struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Name         string    `json:"name"`
	Details      string    `json:"details,omitempty"`
	Author       string    `json:"author"`
	Genre        []string  `json:"genre,omitempty"`
	PostedBy     int64     `json:"posted_by,omitempty"`
	PostedByName string    `json:"posted_by_name,omitempty"`
	Version      int32     `json:"-"`
}

func ValidateBook(v *validator.Validator, book *Book) {
	v.Check(book.Name != "", "name", "must be provided")
	v.Check(len(book.Name) <= 500, "name", "must not be more than 500 bytes long")
	v.Check(len(book.Details) <= 2000, "details", "must not be more than 2000 bytes long")
	v.Check(book.Author != "", "author", "must be provided")
	v.Check(len(book.Author) <= 500, "author", "must not be more than 500 bytes long")
	v.Check(len(book.Genre) <= 10, "genre", "must not contain more than 10 genres")
	v.Check(validator.Unique(book.Genre), "genre", "must not contain duplicate values")
}
