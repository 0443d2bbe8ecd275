package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prathameshlakare/bookreview/data/dto"
	"github.com/prathameshlakare/bookreview/service"
)

// RegisterUser godoc
// @Summary Signup
// @Description This endpoint registers a new user account and logs it in by issuing an authentication token
// @Tags users
// @Accept  json
// @Produce json
// @Param body body dto.RegisterUserRequestBody true "JSON payload required to register a user"
// @Success 201 {object} data.User
// @Failure 400
// @Failure 422
// @Failure 500
// @Router /v1/users [post]
func (h *Handler) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.RegisterUserRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user, token, err := h.service.RegisterUser(requestBody.Username, requestBody.Email, requestBody.Password)
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
	headers.Set("Location", fmt.Sprintf("/v1/users/%d", user.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"user": user, "authentication_token": token}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowUser godoc
// @Summary Get a user
// @Description This endpoint shows a user's public profile
// @Tags users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} data.User
// @Failure 404
// @Failure 500
// @Router /v1/users/{userId} [get]
func (h *Handler) showUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := h.readIDParam(r, "userId")
	if err != nil || userID < 1 {
		h.notFoundResponse(w, r)
		return
	}
	user, err := h.service.GetUser(userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
