package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prathameshlakare/bookreview/data/dto"
	"github.com/prathameshlakare/bookreview/internal/validator"
	"github.com/prathameshlakare/bookreview/service"
)

// CreateReview godoc
// @Summary Create a new book review
// @Description This endpoint creates a new review for a book. A user may review a book at most once
// @Tags reviews
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param bookId path int true "ID of book to review"
// @Param body body dto.CreateReviewRequestBody true "JSON payload required to create a review"
// @Success 201 {object} data.Review
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /v1/books/{bookId}/reviews [post]
func (h *Handler) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateReviewRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	review, err := h.service.CreateReview(bookID, user.ID, user.Username, requestBody.Rating, requestBody.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrDuplicateRecord):
			h.recordAlreadyExistsResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/reviews/%d", review.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"review": review}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowReview godoc
// @Summary Show details of a book review
// @Description This endpoint shows the details of a specific book review
// @Tags reviews
// @Accept  json
// @Produce json
// @Param reviewId path int true "ID of review to show"
// @Success 200 {object} data.Review
// @Failure 404
// @Failure 500
// @Router /v1/reviews/{reviewId} [get]
func (h *Handler) showReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := h.readIDParam(r, "reviewId")
	if err != nil || reviewID < 1 {
		h.notFoundResponse(w, r)
		return
	}
	review, err := h.service.GetReview(reviewID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"review": review}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateReview godoc
// @Summary Update a book review
// @Description This endpoint partially updates a review. Only the review's owner may update it
// @Tags reviews
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param reviewId path int true "ID of review to update"
// @Param body body dto.UpdateReviewRequestBody true "JSON payload with the fields to update"
// @Success 200 {object} data.Review
// @Failure 400
// @Failure 403
// @Failure 404
// @Failure 409
// @Failure 422
// @Failure 500
// @Router /v1/reviews/{reviewId} [patch]
func (h *Handler) updateReviewHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.UpdateReviewRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	reviewID, err := h.readIDParam(r, "reviewId")
	if err != nil || reviewID < 1 {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	review, err := h.service.UpdateReview(reviewID, user.ID, requestBody.Rating, requestBody.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrNotPermitted):
			h.notPermittedResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"review": review}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// DeleteReview godoc
// @Summary Delete a book review
// @Description This endpoint deletes a review. Only the review's owner may delete it
// @Tags reviews
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param reviewId path int true "ID of review to delete"
// @Success 200
// @Failure 403
// @Failure 404
// @Failure 500
// @Router /v1/reviews/{reviewId} [delete]
func (h *Handler) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := h.readIDParam(r, "reviewId")
	if err != nil || reviewID < 1 {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	err = h.service.DeleteReview(reviewID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrNotPermitted):
			h.notPermittedResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "review successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListReviews godoc
// @Summary List reviews for a book
// @Description This endpoint lists a page of reviews for a book along with the book's rating summary
// @Tags reviews
// @Accept  json
// @Produce json
// @Param bookId path int true "ID of book whose reviews to list"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} data.Review
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /v1/books/{bookId}/reviews [get]
func (h *Handler) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil || bookID < 1 {
		h.notFoundResponse(w, r)
		return
	}
	var qsInput dto.QsListReviews
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "limit", 5, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "-created_at")
	qsInput.Filters.SortSafeList = []string{"id", "rating", "created_at", "-id", "-rating", "-created_at"}
	if !v.Valid() {
		h.failedValidationResponse(w, r, fmt.Errorf("%w: invalid query string", service.ErrFailedValidation))
		return
	}
	rating, reviews, metadata, err := h.service.ListReviews(bookID, qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"rating": rating, "reviews": reviews, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
