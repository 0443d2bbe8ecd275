package service

import (
	"errors"

	"github.com/prathameshlakare/bookreview/data"
	"github.com/prathameshlakare/bookreview/internal/validator"
	"github.com/prathameshlakare/bookreview/repository"
)

type reviews interface {
	CreateReview(bookID, userID int64, username string, rating int8, comment string) (*data.Review, error)
	GetReview(reviewID int64) (*data.Review, error)
	UpdateReview(reviewID, callerID int64, rating *int8, comment *string) (*data.Review, error)
	DeleteReview(reviewID, callerID int64) error
	ListReviews(bookID int64, filters data.Filters) (data.Rating, []*data.Review, data.Metadata, error)
}

// CreateReview service creates a review for a book. At most one review may
// exist per (book, user) pair; the store's composite unique index enforces
// this atomically, so two concurrent submissions cannot both slip through.
func (s *service) CreateReview(bookID, userID int64, username string, rating int8, comment string) (*data.Review, error) {
	// The book must exist before a review can be attached to it.
	_, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	review := &data.Review{
		BookID:   bookID,
		UserID:   userID,
		UserName: username,
		Rating:   rating,
		Comment:  comment,
	}
	v := validator.New()
	if data.ValidateReview(v, review); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.CreateReview(review)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrDuplicateRecord
		default:
			return nil, err
		}
	}
	return review, nil
}

// GetReview service retrieves the details of a review.
func (s *service) GetReview(reviewID int64) (*data.Review, error) {
	review, err := s.repo.GetReview(reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return review, nil
}

// UpdateReview service applies a partial update to a review on behalf of
// callerID. A nil rating or comment leaves the stored value unchanged; a
// present-but-zero value is applied (and rejected by validation where out of
// range), so "omitted" and "falsy" are never conflated. Only the review's
// creator may update it.
func (s *service) UpdateReview(reviewID, callerID int64, rating *int8, comment *string) (*data.Review, error) {
	review, err := s.repo.GetReview(reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if err := s.authorize(review.UserID, callerID); err != nil {
		return nil, err
	}
	if rating != nil {
		review.Rating = *rating
	}
	if comment != nil {
		review.Comment = *comment
	}
	v := validator.New()
	if data.ValidateReview(v, review); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	// The repository re-checks ownership inside the UPDATE's WHERE clause,
	// closing the window between the comparison above and the write.
	err = s.repo.UpdateReview(review, callerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return review, nil
}

// DeleteReview service deletes a review on behalf of callerID. Only the
// review's creator may delete it.
func (s *service) DeleteReview(reviewID, callerID int64) error {
	review, err := s.repo.GetReview(reviewID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	if err := s.authorize(review.UserID, callerID); err != nil {
		return err
	}
	err = s.repo.DeleteReview(reviewID, callerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// ListReviews service retrieves the rating summary and a paginated list of
// the reviews for a book.
func (s *service) ListReviews(bookID int64, filters data.Filters) (data.Rating, []*data.Review, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return data.Rating{}, nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	rating, err := s.repo.GetRatingSummary(bookID)
	if err != nil {
		return data.Rating{}, nil, data.Metadata{}, err
	}
	reviews, metadata, err := s.repo.GetAllReviewsForBook(bookID, filters)
	if err != nil {
		return data.Rating{}, nil, data.Metadata{}, err
	}
	return rating, reviews, metadata, nil
}
