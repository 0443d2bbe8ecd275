package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prathameshlakare/bookreview/config"
	"github.com/prathameshlakare/bookreview/data"
	"github.com/prathameshlakare/bookreview/handler"
	"github.com/prathameshlakare/bookreview/internal/jsonlog"
	"github.com/prathameshlakare/bookreview/service"
)

// svcMock implements service.Service with per-method function fields.
type svcMock struct {
	createBookFn         func(userID int64, name, details, author string, genre []string) (*data.Book, error)
	getBookFn            func(bookID int64) (*data.Book, error)
	getBookWithReviewsFn func(bookID int64, filters data.Filters) (*data.Book, data.Rating, []*data.Review, data.Metadata, error)
	listBooksFn          func(author, genre string, filters data.Filters) ([]*data.Book, data.Metadata, error)
	searchBooksFn        func(query string) ([]*data.Book, error)
	createReviewFn       func(bookID, userID int64, username string, rating int8, comment string) (*data.Review, error)
	getReviewFn          func(reviewID int64) (*data.Review, error)
	updateReviewFn       func(reviewID, callerID int64, rating *int8, comment *string) (*data.Review, error)
	deleteReviewFn       func(reviewID, callerID int64) error
	listReviewsFn        func(bookID int64, filters data.Filters) (data.Rating, []*data.Review, data.Metadata, error)
	registerUserFn       func(username, email, password string) (*data.User, *data.Token, error)
	getUserFn            func(userID int64) (*data.User, error)
	getUserForTokenFn    func(tokenScope, tokenPlaintext string) (*data.User, error)
	createAuthTokenFn    func(username, password string) (*data.Token, error)
	deleteAuthTokensFn   func(userID int64) error
}

func (m *svcMock) CreateBook(userID int64, name, details, author string, genre []string) (*data.Book, error) {
	return m.createBookFn(userID, name, details, author, genre)
}
func (m *svcMock) GetBook(bookID int64) (*data.Book, error) { return m.getBookFn(bookID) }
func (m *svcMock) GetBookWithReviews(bookID int64, filters data.Filters) (*data.Book, data.Rating, []*data.Review, data.Metadata, error) {
	return m.getBookWithReviewsFn(bookID, filters)
}
func (m *svcMock) ListBooks(author, genre string, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	return m.listBooksFn(author, genre, filters)
}
func (m *svcMock) SearchBooks(query string) ([]*data.Book, error) { return m.searchBooksFn(query) }
func (m *svcMock) CreateReview(bookID, userID int64, username string, rating int8, comment string) (*data.Review, error) {
	return m.createReviewFn(bookID, userID, username, rating, comment)
}
func (m *svcMock) GetReview(reviewID int64) (*data.Review, error) { return m.getReviewFn(reviewID) }
func (m *svcMock) UpdateReview(reviewID, callerID int64, rating *int8, comment *string) (*data.Review, error) {
	return m.updateReviewFn(reviewID, callerID, rating, comment)
}
func (m *svcMock) DeleteReview(reviewID, callerID int64) error {
	return m.deleteReviewFn(reviewID, callerID)
}
func (m *svcMock) ListReviews(bookID int64, filters data.Filters) (data.Rating, []*data.Review, data.Metadata, error) {
	return m.listReviewsFn(bookID, filters)
}
func (m *svcMock) RegisterUser(username, email, password string) (*data.User, *data.Token, error) {
	return m.registerUserFn(username, email, password)
}
func (m *svcMock) GetUser(userID int64) (*data.User, error) { return m.getUserFn(userID) }
func (m *svcMock) GetUserForToken(tokenScope, tokenPlaintext string) (*data.User, error) {
	return m.getUserForTokenFn(tokenScope, tokenPlaintext)
}
func (m *svcMock) CreateAuthenticationToken(username, password string) (*data.Token, error) {
	return m.createAuthTokenFn(username, password)
}
func (m *svcMock) DeleteAuthenticationToken(userID int64) error {
	return m.deleteAuthTokensFn(userID)
}

const testToken = "Y3QMGX3PJ3WLRL2YRTQGQ6KRHU"

func newTestServer(t *testing.T, m *svcMock) *httptest.Server {
	t.Helper()
	var cfg config.Config
	cfg.Server.Env = "test"
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	h := handler.New(cfg, logger, m)
	ts := httptest.NewServer(h.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, ts *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func TestHealthcheck(t *testing.T) {
	ts := newTestServer(t, &svcMock{})
	res := do(t, ts, http.MethodGet, "/v1/healthcheck", "", "")
	if res.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", res.StatusCode)
	}
}

func TestShowReviewNotFound(t *testing.T) {
	m := &svcMock{
		getReviewFn: func(reviewID int64) (*data.Review, error) {
			return nil, service.ErrRecordNotFound
		},
	}
	ts := newTestServer(t, m)
	res := do(t, ts, http.MethodGet, "/v1/reviews/404", "", "")
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", res.StatusCode)
	}
}

func TestCreateReviewRequiresAuthentication(t *testing.T) {
	ts := newTestServer(t, &svcMock{})
	res := do(t, ts, http.MethodPost, "/v1/books/1/reviews", "", `{"rating": 5}`)
	if res.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", res.StatusCode)
	}
}

func TestCreateDuplicateReview(t *testing.T) {
	m := &svcMock{
		getUserForTokenFn: func(tokenScope, tokenPlaintext string) (*data.User, error) {
			return &data.User{ID: 2, Username: "frank"}, nil
		},
		createReviewFn: func(bookID, userID int64, username string, rating int8, comment string) (*data.Review, error) {
			return nil, service.ErrDuplicateRecord
		},
	}
	ts := newTestServer(t, m)
	res := do(t, ts, http.MethodPost, "/v1/books/1/reviews", testToken, `{"rating": 5}`)
	if res.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want 409", res.StatusCode)
	}
}

func TestUpdateReviewNotOwner(t *testing.T) {
	m := &svcMock{
		getUserForTokenFn: func(tokenScope, tokenPlaintext string) (*data.User, error) {
			return &data.User{ID: 42, Username: "eve"}, nil
		},
		updateReviewFn: func(reviewID, callerID int64, rating *int8, comment *string) (*data.Review, error) {
			return nil, service.ErrNotPermitted
		},
	}
	ts := newTestServer(t, m)
	res := do(t, ts, http.MethodPatch, "/v1/reviews/3", testToken, `{"rating": 1}`)
	if res.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403", res.StatusCode)
	}
}

func TestShowUser(t *testing.T) {
	m := &svcMock{
		getUserFn: func(userID int64) (*data.User, error) {
			if userID != 7 {
				return nil, service.ErrRecordNotFound
			}
			return &data.User{ID: 7, Username: "frank"}, nil
		},
	}
	ts := newTestServer(t, m)

	res := do(t, ts, http.MethodGet, "/v1/users/7", "", "")
	if res.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", res.StatusCode)
	}

	res = do(t, ts, http.MethodGet, "/v1/users/404", "", "")
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", res.StatusCode)
	}
}

func TestListBooksLimit(t *testing.T) {
	m := &svcMock{
		listBooksFn: func(author, genre string, filters data.Filters) ([]*data.Book, data.Metadata, error) {
			if filters.PageSize != 3 {
				t.Errorf("page size = %d, want 3", filters.PageSize)
			}
			return []*data.Book{}, data.Metadata{}, nil
		},
	}
	ts := newTestServer(t, m)
	res := do(t, ts, http.MethodGet, "/v1/books?limit=3", "", "")
	if res.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", res.StatusCode)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	m := &svcMock{
		searchBooksFn: func(query string) ([]*data.Book, error) {
			return nil, service.ErrBadRequest
		},
	}
	ts := newTestServer(t, m)
	res := do(t, ts, http.MethodGet, "/v1/search", "", "")
	if res.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", res.StatusCode)
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, &svcMock{})
	res := do(t, ts, http.MethodGet, "/v1/nope", "", "")
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", res.StatusCode)
	}
}
