package dto

// CreateAuthenticationTokenRequestBody defines a request body for the
// CreateAuthenticationToken (login) service.
type CreateAuthenticationTokenRequestBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
