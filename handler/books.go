package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prathameshlakare/bookreview/data/dto"
	"github.com/prathameshlakare/bookreview/internal/validator"
	"github.com/prathameshlakare/bookreview/service"
)

// CreateBook godoc
// @Summary Create a new book
// @Description This endpoint adds a new book to the catalog
// @Tags books
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param body body dto.CreateBookRequestBody true "JSON payload required to create a book"
// @Success 201 {object} data.Book
// @Failure 400
// @Failure 401
// @Failure 422
// @Failure 500
// @Router /v1/books [post]
func (h *Handler) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateBookRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user := h.contextGetUser(r)
	book, err := h.service.CreateBook(user.ID, requestBody.Name, requestBody.Details, requestBody.Author, requestBody.Genre)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/books/%d", book.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"book": book}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowBook godoc
// @Summary Show details of a book
// @Description This endpoint shows a book along with its rating summary and a page of its reviews
// @Tags books
// @Accept  json
// @Produce json
// @Param bookId path int true "ID of book to show"
// @Param page query int false "Review page number"
// @Param limit query int false "Review page size"
// @Success 200 {object} data.Book
// @Failure 404
// @Failure 422
// @Failure 500
// @Router /v1/books/{bookId} [get]
func (h *Handler) showBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil || bookID < 1 {
		h.notFoundResponse(w, r)
		return
	}
	var qsInput dto.QsShowBook
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
	book, rating, reviews, metadata, err := h.service.GetBookWithReviews(bookID, qsInput.Filters)
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
	err = h.encodeJSON(w, http.StatusOK, envelope{"book": book, "rating": rating, "reviews": reviews, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListBooks godoc
// @Summary List books
// @Description This endpoint lists books, optionally filtered by author and genre
// @Tags books
// @Accept  json
// @Produce json
// @Param author query string false "Filter by exact author name"
// @Param genre query string false "Filter by genre"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sort query string false "Sort order"
// @Success 200 {object} data.Book
// @Failure 422
// @Failure 500
// @Router /v1/books [get]
func (h *Handler) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListBooks
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Author = h.readString(qs, "author", "")
	qsInput.Genre = h.readString(qs, "genre", "")
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "limit", 10, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "id")
	qsInput.Filters.SortSafeList = []string{"id", "name", "author", "created_at", "-id", "-name", "-author", "-created_at"}
	if !v.Valid() {
		h.failedValidationResponse(w, r, fmt.Errorf("%w: invalid query string", service.ErrFailedValidation))
		return
	}
	books, metadata, err := h.service.ListBooks(qsInput.Author, qsInput.Genre, qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"books": books, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// SearchBooks godoc
// @Summary Search books
// @Description This endpoint searches books by a case-insensitive substring of their name or author
// @Tags books
// @Accept  json
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} data.Book
// @Failure 400
// @Failure 500
// @Router /v1/search [get]
func (h *Handler) searchBooksHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsSearchBooks
	qs := r.URL.Query()
	qsInput.Query = h.readString(qs, "q", "")
	books, err := h.service.SearchBooks(qsInput.Query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadRequest):
			h.badRequestResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"books": books}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
