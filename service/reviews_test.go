package service_test

import (
	"errors"
	"testing"

	"github.com/prathameshlakare/bookreview/data"
	"github.com/prathameshlakare/bookreview/repository"
	"github.com/prathameshlakare/bookreview/service"
)

func TestCreateReview(t *testing.T) {
	t.Run("succeeds for an existing book", func(t *testing.T) {
		m := &repoMock{
			getBookFn: func(bookID int64) (*data.Book, error) {
				return &data.Book{ID: bookID, Name: "Dune"}, nil
			},
			createReviewFn: func(review *data.Review) error {
				review.ID = 7
				review.Version = 1
				return nil
			},
		}
		s := newTestService(m)
		review, err := s.CreateReview(1, 2, "frank", 5, "a classic")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if review.ID != 7 || review.BookID != 1 || review.UserID != 2 {
			t.Errorf("unexpected review: %+v", review)
		}
	})

	t.Run("returns not found when the book does not exist", func(t *testing.T) {
		m := &repoMock{
			getBookFn: func(bookID int64) (*data.Book, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		s := newTestService(m)
		_, err := s.CreateReview(99, 2, "frank", 5, "")
		if !errors.Is(err, service.ErrRecordNotFound) {
			t.Errorf("got %v, want ErrRecordNotFound", err)
		}
	})

	t.Run("returns duplicate when the user already reviewed the book", func(t *testing.T) {
		m := &repoMock{
			getBookFn: func(bookID int64) (*data.Book, error) {
				return &data.Book{ID: bookID}, nil
			},
			createReviewFn: func(review *data.Review) error {
				return repository.ErrDuplicateRecord
			},
		}
		s := newTestService(m)
		_, err := s.CreateReview(1, 2, "frank", 4, "")
		if !errors.Is(err, service.ErrDuplicateRecord) {
			t.Errorf("got %v, want ErrDuplicateRecord", err)
		}
	})

	t.Run("rejects an out of range rating before hitting the store", func(t *testing.T) {
		created := false
		m := &repoMock{
			getBookFn: func(bookID int64) (*data.Book, error) {
				return &data.Book{ID: bookID}, nil
			},
			createReviewFn: func(review *data.Review) error {
				created = true
				return nil
			},
		}
		s := newTestService(m)
		_, err := s.CreateReview(1, 2, "frank", 6, "")
		if !errors.Is(err, service.ErrFailedValidation) {
			t.Errorf("got %v, want ErrFailedValidation", err)
		}
		if created {
			t.Error("review was created despite failing validation")
		}
	})
}

func TestUpdateReview(t *testing.T) {
	stored := func() *data.Review {
		return &data.Review{ID: 3, BookID: 1, UserID: 2, Rating: 4, Comment: "good", Version: 1}
	}

	t.Run("owner can update", func(t *testing.T) {
		m := &repoMock{
			getReviewFn: func(reviewID int64) (*data.Review, error) { return stored(), nil },
			updateReviewFn: func(review *data.Review, ownerID int64) error {
				if ownerID != 2 {
					t.Errorf("ownerID = %d, want 2", ownerID)
				}
				review.Version++
				return nil
			},
		}
		s := newTestService(m)
		rating := int8(5)
		review, err := s.UpdateReview(3, 2, &rating, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if review.Rating != 5 {
			t.Errorf("rating = %d, want 5", review.Rating)
		}
	})

	t.Run("nil fields leave stored values unchanged", func(t *testing.T) {
		m := &repoMock{
			getReviewFn:    func(reviewID int64) (*data.Review, error) { return stored(), nil },
			updateReviewFn: func(review *data.Review, ownerID int64) error { return nil },
		}
		s := newTestService(m)
		comment := "even better on a reread"
		review, err := s.UpdateReview(3, 2, nil, &comment)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if review.Rating != 4 {
			t.Errorf("rating = %d, want unchanged 4", review.Rating)
		}
		if review.Comment != comment {
			t.Errorf("comment = %q, want %q", review.Comment, comment)
		}
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		m := &repoMock{
			getReviewFn: func(reviewID int64) (*data.Review, error) { return stored(), nil },
			updateReviewFn: func(review *data.Review, ownerID int64) error {
				t.Error("store update reached for a non-owner")
				return nil
			},
		}
		s := newTestService(m)
		rating := int8(1)
		_, err := s.UpdateReview(3, 42, &rating, nil)
		if !errors.Is(err, service.ErrNotPermitted) {
			t.Errorf("got %v, want ErrNotPermitted", err)
		}
	})

	t.Run("missing review reports not found before ownership", func(t *testing.T) {
		m := &repoMock{
			getReviewFn: func(reviewID int64) (*data.Review, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		s := newTestService(m)
		_, err := s.UpdateReview(404, 42, nil, nil)
		if !errors.Is(err, service.ErrRecordNotFound) {
			t.Errorf("got %v, want ErrRecordNotFound", err)
		}
	})

	t.Run("concurrent edit surfaces a conflict", func(t *testing.T) {
		m := &repoMock{
			getReviewFn: func(reviewID int64) (*data.Review, error) { return stored(), nil },
			updateReviewFn: func(review *data.Review, ownerID int64) error {
				return repository.ErrEditConflict
			},
		}
		s := newTestService(m)
		rating := int8(2)
		_, err := s.UpdateReview(3, 2, &rating, nil)
		if !errors.Is(err, service.ErrEditConflict) {
			t.Errorf("got %v, want ErrEditConflict", err)
		}
	})
}

func TestDeleteReview(t *testing.T) {
	stored := func() *data.Review {
		return &data.Review{ID: 3, BookID: 1, UserID: 2, Rating: 4, Version: 1}
	}

	t.Run("owner can delete", func(t *testing.T) {
		deleted := false
		m := &repoMock{
			getReviewFn: func(reviewID int64) (*data.Review, error) { return stored(), nil },
			deleteReviewFn: func(reviewID, ownerID int64) error {
				deleted = true
				return nil
			},
		}
		s := newTestService(m)
		if err := s.DeleteReview(3, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted {
			t.Error("store delete was never reached")
		}
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		m := &repoMock{
			getReviewFn: func(reviewID int64) (*data.Review, error) { return stored(), nil },
			deleteReviewFn: func(reviewID, ownerID int64) error {
				t.Error("store delete reached for a non-owner")
				return nil
			},
		}
		s := newTestService(m)
		err := s.DeleteReview(3, 42)
		if !errors.Is(err, service.ErrNotPermitted) {
			t.Errorf("got %v, want ErrNotPermitted", err)
		}
	})

	t.Run("missing review reports not found", func(t *testing.T) {
		m := &repoMock{
			getReviewFn: func(reviewID int64) (*data.Review, error) {
				return nil, repository.ErrRecordNotFound
			},
		}
		s := newTestService(m)
		err := s.DeleteReview(404, 2)
		if !errors.Is(err, service.ErrRecordNotFound) {
			t.Errorf("got %v, want ErrRecordNotFound", err)
		}
	})
}

func TestListReviews(t *testing.T) {
	t.Run("returns summary and page together", func(t *testing.T) {
		m := &repoMock{
			getRatingSummaryFn: func(bookID int64) (data.Rating, error) {
				return data.Rating{Average: 4, Total: 3, FiveStars: 1, FourStars: 1, ThreeStars: 1}, nil
			},
			getAllReviewsForBookFn: func(bookID int64, filters data.Filters) ([]*data.Review, data.Metadata, error) {
				reviews := []*data.Review{{ID: 1, Rating: 4}, {ID: 2, Rating: 5}, {ID: 3, Rating: 3}}
				return reviews, data.CalculateMetadata(3, filters.Page, filters.PageSize), nil
			},
		}
		s := newTestService(m)
		rating, reviews, metadata, err := s.ListReviews(1, testFilters())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rating.Average != 4 || rating.Total != 3 {
			t.Errorf("rating = %+v, want average 4 total 3", rating)
		}
		if len(reviews) != 3 {
			t.Errorf("len(reviews) = %d, want 3", len(reviews))
		}
		if metadata.TotalRecords != 3 {
			t.Errorf("total records = %d, want 3", metadata.TotalRecords)
		}
	})

	t.Run("book with no reviews yields zero summary and empty page", func(t *testing.T) {
		m := &repoMock{
			getRatingSummaryFn: func(bookID int64) (data.Rating, error) {
				return data.Rating{}, nil
			},
			getAllReviewsForBookFn: func(bookID int64, filters data.Filters) ([]*data.Review, data.Metadata, error) {
				return []*data.Review{}, data.Metadata{}, nil
			},
		}
		s := newTestService(m)
		rating, reviews, metadata, err := s.ListReviews(1, testFilters())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rating.Average != 0 || rating.Total != 0 {
			t.Errorf("rating = %+v, want zero values", rating)
		}
		if len(reviews) != 0 {
			t.Errorf("len(reviews) = %d, want 0", len(reviews))
		}
		if metadata.TotalRecords != 0 {
			t.Errorf("total records = %d, want 0", metadata.TotalRecords)
		}
	})

	t.Run("rejects an oversized page size", func(t *testing.T) {
		s := newTestService(&repoMock{})
		filters := testFilters()
		filters.PageSize = 1000
		_, _, _, err := s.ListReviews(1, filters)
		if !errors.Is(err, service.ErrFailedValidation) {
			t.Errorf("got %v, want ErrFailedValidation", err)
		}
	})
}
