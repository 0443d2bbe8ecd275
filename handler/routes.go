package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodPost, "/v1/users", h.registerUserHandler)
	router.HandlerFunc(http.MethodGet, "/v1/users/:userId", h.showUserHandler)

	router.HandlerFunc(http.MethodPost, "/v1/tokens/authentication", h.createAuthenticationTokenHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/tokens/authentication", h.requireAuthenticatedUser(h.deleteAuthenticationTokenHandler))

	router.HandlerFunc(http.MethodGet, "/v1/books", h.listBooksHandler)
	router.HandlerFunc(http.MethodPost, "/v1/books", h.requireAuthenticatedUser(h.createBookHandler))
	router.HandlerFunc(http.MethodGet, "/v1/books/:bookId", h.showBookHandler)

	router.HandlerFunc(http.MethodGet, "/v1/books/:bookId/reviews", h.listReviewsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/books/:bookId/reviews", h.requireAuthenticatedUser(h.createReviewHandler))
	router.HandlerFunc(http.MethodGet, "/v1/reviews/:reviewId", h.showReviewHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/reviews/:reviewId", h.requireAuthenticatedUser(h.updateReviewHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/reviews/:reviewId", h.requireAuthenticatedUser(h.deleteReviewHandler))

	router.HandlerFunc(http.MethodGet, "/v1/search", h.searchBooksHandler)

	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))
	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	return h.recoverPanic(h.metrics(h.enableCORS(h.rateLimit(h.authenticate(router)))))
}
