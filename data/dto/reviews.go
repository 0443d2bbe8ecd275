package dto

import "github.com/prathameshlakare/bookreview/data"

// CreateReviewRequestBody defines a request body for the CreateReview
// service.
type CreateReviewRequestBody struct {
	Rating  int8   `json:"rating"`
	Comment string `json:"comment"`
}

// UpdateReviewRequestBody defines a request body for the UpdateReview
// service. The fields are pointers so that a field which is omitted from the
// JSON body (nil) can be told apart from a field set to its zero value.
type UpdateReviewRequestBody struct {
	Rating  *int8   `json:"rating"`
	Comment *string `json:"comment"`
}

// QsListReviews defines the query strings used for listing reviews.
type QsListReviews struct {
	Filters data.Filters
}
