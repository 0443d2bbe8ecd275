package service_test

import (
	"io"
	"sync"
	"time"

	"github.com/prathameshlakare/bookreview/config"
	"github.com/prathameshlakare/bookreview/data"
	"github.com/prathameshlakare/bookreview/internal/jsonlog"
	"github.com/prathameshlakare/bookreview/service"
)

// repoMock implements repository.Repository with per-method function fields,
// so each test wires up only the calls it expects.
type repoMock struct {
	createBookFn           func(book *data.Book) error
	getBookFn              func(bookID int64) (*data.Book, error)
	getAllBooksFn          func(author, genre string, filters data.Filters) ([]*data.Book, data.Metadata, error)
	searchBooksFn          func(query string) ([]*data.Book, error)
	createReviewFn         func(review *data.Review) error
	getReviewFn            func(reviewID int64) (*data.Review, error)
	updateReviewFn         func(review *data.Review, ownerID int64) error
	deleteReviewFn         func(reviewID, ownerID int64) error
	getRatingSummaryFn     func(bookID int64) (data.Rating, error)
	getAllReviewsForBookFn func(bookID int64, filters data.Filters) ([]*data.Review, data.Metadata, error)
	registerUserFn         func(user *data.User) error
	getUserByIDFn          func(userID int64) (*data.User, error)
	getUserByUsernameFn    func(username string) (*data.User, error)
	getUserForTokenFn      func(tokenScope, tokenPlaintext string) (*data.User, error)
	createNewTokenFn       func(userID int64, ttl time.Duration, scope string) (*data.Token, error)
	deleteAllTokensFn      func(scope string, userID int64) error
}

func (m *repoMock) CreateBook(book *data.Book) error { return m.createBookFn(book) }
func (m *repoMock) GetBook(bookID int64) (*data.Book, error) {
	return m.getBookFn(bookID)
}
func (m *repoMock) GetAllBooks(author, genre string, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	return m.getAllBooksFn(author, genre, filters)
}
func (m *repoMock) SearchBooks(query string) ([]*data.Book, error) {
	return m.searchBooksFn(query)
}
func (m *repoMock) CreateReview(review *data.Review) error { return m.createReviewFn(review) }
func (m *repoMock) GetReview(reviewID int64) (*data.Review, error) {
	return m.getReviewFn(reviewID)
}
func (m *repoMock) UpdateReview(review *data.Review, ownerID int64) error {
	return m.updateReviewFn(review, ownerID)
}
func (m *repoMock) DeleteReview(reviewID, ownerID int64) error {
	return m.deleteReviewFn(reviewID, ownerID)
}
func (m *repoMock) GetRatingSummary(bookID int64) (data.Rating, error) {
	return m.getRatingSummaryFn(bookID)
}
func (m *repoMock) GetAllReviewsForBook(bookID int64, filters data.Filters) ([]*data.Review, data.Metadata, error) {
	return m.getAllReviewsForBookFn(bookID, filters)
}
func (m *repoMock) RegisterUser(user *data.User) error { return m.registerUserFn(user) }
func (m *repoMock) GetUserByID(userID int64) (*data.User, error) {
	return m.getUserByIDFn(userID)
}
func (m *repoMock) GetUserByUsername(username string) (*data.User, error) {
	return m.getUserByUsernameFn(username)
}
func (m *repoMock) GetUserForToken(tokenScope, tokenPlaintext string) (*data.User, error) {
	return m.getUserForTokenFn(tokenScope, tokenPlaintext)
}
func (m *repoMock) CreateNewToken(userID int64, ttl time.Duration, scope string) (*data.Token, error) {
	return m.createNewTokenFn(userID, ttl, scope)
}
func (m *repoMock) DeleteAllTokensForUser(scope string, userID int64) error {
	return m.deleteAllTokensFn(scope, userID)
}

func newTestService(m *repoMock) service.Service {
	var wg sync.WaitGroup
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	return service.New(config.Config{}, &wg, logger, m)
}

// testFilters returns a filter set that passes validation.
func testFilters() data.Filters {
	return data.Filters{
		Page:         1,
		PageSize:     5,
		Sort:         "id",
		SortSafeList: []string{"id", "-id"},
	}
}
