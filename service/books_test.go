package service_test

import (
	"errors"
	"testing"

	"github.com/prathameshlakare/bookreview/data"
	"github.com/prathameshlakare/bookreview/repository"
	"github.com/prathameshlakare/bookreview/service"
)

func TestCreateBook(t *testing.T) {
	t.Run("succeeds with valid input", func(t *testing.T) {
		m := &repoMock{
			createBookFn: func(book *data.Book) error {
				book.ID = 1
				book.Version = 1
				return nil
			},
		}
		s := newTestService(m)
		book, err := s.CreateBook(2, "Dune", "Desert planet epic", "Frank Herbert", []string{"sci-fi"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if book.ID != 1 || book.PostedBy != 2 {
			t.Errorf("unexpected book: %+v", book)
		}
	})

	t.Run("rejects a book without a name", func(t *testing.T) {
		s := newTestService(&repoMock{})
		_, err := s.CreateBook(2, "", "", "Frank Herbert", nil)
		if !errors.Is(err, service.ErrFailedValidation) {
			t.Errorf("got %v, want ErrFailedValidation", err)
		}
	})
}

func TestGetBookWithReviews(t *testing.T) {
	t.Run("aggregates rating alongside the review page", func(t *testing.T) {
		m := &repoMock{
			getBookFn: func(bookID int64) (*data.Book, error) {
				return &data.Book{ID: bookID, Name: "Dune"}, nil
			},
			getRatingSummaryFn: func(bookID int64) (data.Rating, error) {
				return data.Rating{Average: 4.5, Total: 2, FiveStars: 1, FourStars: 1}, nil
			},
			getAllReviewsForBookFn: func(bookID int64, filters data.Filters) ([]*data.Review, data.Metadata, error) {
				reviews := []*data.Review{{ID: 1, Rating: 5}, {ID: 2, Rating: 4}}
				return reviews, data.CalculateMetadata(2, filters.Page, filters.PageSize), nil
			},
		}
		s := newTestService(m)
		book, rating, reviews, metadata, err := s.GetBookWithReviews(1, testFilters())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if book.Name != "Dune" {
			t.Errorf("book name = %q, want Dune", book.Name)
		}
		if rating.Average != 4.5 || rating.Total != 2 {
			t.Errorf("rating = %+v, want average 4.5 total 2", rating)
		}
		if len(reviews) != 2 || metadata.TotalRecords != 2 {
			t.Errorf("got %d reviews, metadata %+v", len(reviews), metadata)
		}
	})

	t.Run("missing book reports not found", func(t *testing.T) {
		m := &repoMock{
			getBookFn: func(bookID int64) (*data.Book, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		s := newTestService(m)
		_, _, _, _, err := s.GetBookWithReviews(404, testFilters())
		if !errors.Is(err, service.ErrRecordNotFound) {
			t.Errorf("got %v, want ErrRecordNotFound", err)
		}
	})
}

func TestListBooks(t *testing.T) {
	t.Run("passes filters through to the store", func(t *testing.T) {
		m := &repoMock{
			getAllBooksFn: func(author, genre string, filters data.Filters) ([]*data.Book, data.Metadata, error) {
				if author != "Frank Herbert" || genre != "sci-fi" {
					t.Errorf("got author %q genre %q", author, genre)
				}
				books := []*data.Book{{ID: 1}, {ID: 2}}
				return books, data.CalculateMetadata(2, filters.Page, filters.PageSize), nil
			},
		}
		s := newTestService(m)
		books, metadata, err := s.ListBooks("Frank Herbert", "sci-fi", testFilters())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(books) != 2 || metadata.TotalRecords != 2 {
			t.Errorf("got %d books, metadata %+v", len(books), metadata)
		}
	})

	t.Run("rejects a page size above the cap", func(t *testing.T) {
		s := newTestService(&repoMock{})
		filters := testFilters()
		filters.PageSize = 101
		_, _, err := s.ListBooks("", "", filters)
		if !errors.Is(err, service.ErrFailedValidation) {
			t.Errorf("got %v, want ErrFailedValidation", err)
		}
	})
}

func TestSearchBooks(t *testing.T) {
	t.Run("matches on substring", func(t *testing.T) {
		m := &repoMock{
			searchBooksFn: func(query string) ([]*data.Book, error) {
				if query != "dune" {
					t.Errorf("query = %q, want dune", query)
				}
				return []*data.Book{{ID: 1, Name: "Dune"}}, nil
			},
		}
		s := newTestService(m)
		books, err := s.SearchBooks("dune")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(books) != 1 {
			t.Errorf("len(books) = %d, want 1", len(books))
		}
	})

	t.Run("rejects an empty query", func(t *testing.T) {
		s := newTestService(&repoMock{})
		for _, query := range []string{"", "   "} {
			_, err := s.SearchBooks(query)
			if !errors.Is(err, service.ErrBadRequest) {
				t.Errorf("query %q: got %v, want ErrBadRequest", query, err)
			}
		}
	})
}
