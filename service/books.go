package service

import (
	"errors"
	"strings"

	"github.com/prathameshlakare/bookreview/data"
	"github.com/prathameshlakare/bookreview/internal/validator"
	"github.com/prathameshlakare/bookreview/repository"
)

type books interface {
	CreateBook(userID int64, name, details, author string, genre []string) (*data.Book, error)
	GetBook(bookID int64) (*data.Book, error)
	GetBookWithReviews(bookID int64, filters data.Filters) (*data.Book, data.Rating, []*data.Review, data.Metadata, error)
	ListBooks(author, genre string, filters data.Filters) ([]*data.Book, data.Metadata, error)
	SearchBooks(query string) ([]*data.Book, error)
}

// CreateBook service creates a new book record posted by the given user.
func (s *service) CreateBook(userID int64, name, details, author string, genre []string) (*data.Book, error) {
	book := &data.Book{
		Name:     name,
		Details:  details,
		Author:   author,
		Genre:    genre,
		PostedBy: userID,
	}
	v := validator.New()
	if data.ValidateBook(v, book); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CreateBook(book)
	if err != nil {
		return nil, err
	}
	return book, nil
}

// GetBook service retrieves the details of a book.
func (s *service) GetBook(bookID int64) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// GetBookWithReviews service retrieves a book together with its rating
// summary and one page of its reviews. The rating summary aggregates every
// review for the book regardless of the page window; a book with no reviews
// yields a zero average, a zero total and an empty page.
func (s *service) GetBookWithReviews(bookID int64, filters data.Filters) (*data.Book, data.Rating, []*data.Review, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Rating{}, nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, data.Rating{}, nil, data.Metadata{}, ErrRecordNotFound
		default:
			return nil, data.Rating{}, nil, data.Metadata{}, err
		}
	}
	rating, err := s.repo.GetRatingSummary(bookID)
	if err != nil {
		return nil, data.Rating{}, nil, data.Metadata{}, err
	}
	reviews, metadata, err := s.repo.GetAllReviewsForBook(bookID, filters)
	if err != nil {
		return nil, data.Rating{}, nil, data.Metadata{}, err
	}
	return book, rating, reviews, metadata, nil
}

// ListBooks service retrieves a paginated list of books. The author and genre
// filters are exact-match and only constrain when provided.
func (s *service) ListBooks(author, genre string, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	books, metadata, err := s.repo.GetAllBooks(author, genre, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return books, metadata, nil
}

// SearchBooks service searches books by a case-insensitive substring of name
// or author. An empty query is rejected rather than returning the whole
// catalog.
func (s *service) SearchBooks(query string) ([]*data.Book, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrBadRequest
	}
	books, err := s.repo.SearchBooks(query)
	if err != nil {
		return nil, err
	}
	return books, nil
}
