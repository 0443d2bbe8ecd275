package data

import (
	"time"

	"github.com/prathameshlakare/bookreview/internal/validator"
)

// Rating summarizes the full review set of a book, independent of any page
// window. Average and Total default to zero for a book with no reviews.
type Rating struct {
	FiveStars  int64   `json:"fivestars"`
	FourStars  int64   `json:"fourstars"`
	ThreeStars int64   `json:"threestars"`
	TwoStars   int64   `json:"twostars"`
	OneStar    int64   `json:"onestar"`
	Average    float64 `json:"average"`
	Total      int64   `json:"total"`
}

// Review defines a book review. UserName is denormalized from the users table
// at read time.
type Review struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Rating    int8      `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Version   int32     `json:"-"`
}

func ValidateReview(v *validator.Validator, review *Review) {
	v.Check(review.Rating >= 1, "rating", "must be at least one")
	v.Check(review.Rating <= 5, "rating", "must not be greater than five")
	v.Check(len(review.Comment) <= 2000, "comment", "must not be more than 2000 bytes long")
}
