package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/prathameshlakare/bookreview/data"
)

type reviews interface {
	CreateReview(review *data.Review) error
	GetReview(reviewID int64) (*data.Review, error)
	UpdateReview(review *data.Review, ownerID int64) error
	DeleteReview(reviewID, ownerID int64) error
	GetRatingSummary(bookID int64) (data.Rating, error)
	GetAllReviewsForBook(bookID int64, filters data.Filters) ([]*data.Review, data.Metadata, error)
}

// CreateReview creates a review record for a book. The reviews table carries
// a composite unique index on (book_id, user_id), so a second review from the
// same user for the same book fails here rather than in a racy pre-check.
func (r *repository) CreateReview(review *data.Review) error {
	query := `
		INSERT INTO reviews (book_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version`
	args := []interface{}{review.BookID, review.UserID, review.Rating, review.Comment}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt, &review.Version)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "reviews_book_id_user_id_key"`:
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return nil
}

// GetReview retrieves a review record with the reviewer's username.
func (r *repository) GetReview(reviewID int64) (*data.Review, error) {
	if reviewID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT reviews.id, reviews.book_id, reviews.user_id, users.username, reviews.created_at, reviews.rating, reviews.comment, reviews.version
		FROM reviews
		INNER JOIN users ON reviews.user_id = users.id
		WHERE reviews.id = $1`
	var review data.Review
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, reviewID).Scan(
		&review.ID,
		&review.BookID,
		&review.UserID,
		&review.UserName,
		&review.CreatedAt,
		&review.Rating,
		&review.Comment,
		&review.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &review, nil
}

// UpdateReview updates a review record. Ownership is enforced inside the
// write itself: the WHERE clause requires the stored user_id to match
// ownerID, so the authorization check and the mutation are a single
// conditional statement rather than separate read/compare/write steps.
func (r *repository) UpdateReview(review *data.Review, ownerID int64) error {
	query := `
		UPDATE reviews
		SET rating = $1, comment = $2, version = version + 1
		WHERE id = $3 AND user_id = $4 AND version = $5
		RETURNING version`
	args := []interface{}{review.Rating, review.Comment, review.ID, ownerID, review.Version}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&review.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}
	return nil
}

// DeleteReview deletes a review record, conditioned on ownership the same way
// UpdateReview is.
func (r *repository) DeleteReview(reviewID, ownerID int64) error {
	if reviewID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM reviews
		WHERE id = $1 AND user_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, reviewID, ownerID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// GetRatingSummary aggregates every review for a book in the store: average
// rating, total count and per-star buckets. The aggregate covers the full
// review set regardless of any page window applied to the review listing. A
// book with no reviews yields a zero-valued summary.
func (r *repository) GetRatingSummary(bookID int64) (data.Rating, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*),
			COUNT(*) FILTER (WHERE rating = 5),
			COUNT(*) FILTER (WHERE rating = 4),
			COUNT(*) FILTER (WHERE rating = 3),
			COUNT(*) FILTER (WHERE rating = 2),
			COUNT(*) FILTER (WHERE rating = 1)
		FROM reviews
		WHERE book_id = $1`
	var rating data.Rating
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, bookID).Scan(
		&rating.Average,
		&rating.Total,
		&rating.FiveStars,
		&rating.FourStars,
		&rating.ThreeStars,
		&rating.TwoStars,
		&rating.OneStar,
	)
	if err != nil {
		return data.Rating{}, err
	}
	return rating, nil
}

// GetAllReviewsForBook retrieves a paginated list of the reviews for one
// book, with the reviewer's username denormalized. The window count covers
// every review of the book, not just the page.
func (r *repository) GetAllReviewsForBook(bookID int64, filters data.Filters) ([]*data.Review, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), reviews.id, reviews.book_id, reviews.user_id, users.username, reviews.created_at, reviews.rating, reviews.comment, reviews.version
		FROM reviews
		INNER JOIN users ON reviews.user_id = users.id
		WHERE reviews.book_id = $1
		ORDER BY reviews.%s %s, reviews.id ASC
		LIMIT $2 OFFSET $3`,
		filters.SortColumn(), filters.SortDirection())
	args := []interface{}{bookID, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	reviews := []*data.Review{}
	for rows.Next() {
		var review data.Review
		err := rows.Scan(
			&totalRecords,
			&review.ID,
			&review.BookID,
			&review.UserID,
			&review.UserName,
			&review.CreatedAt,
			&review.Rating,
			&review.Comment,
			&review.Version,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		reviews = append(reviews, &review)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return reviews, metadata, nil
}
