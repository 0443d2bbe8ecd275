package dto

// RegisterUserRequestBody defines a request body for the RegisterUser
// service. Email is optional and only used for the welcome email.
type RegisterUserRequestBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
