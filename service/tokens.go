package service

import (
	"errors"
	"time"

	"github.com/prathameshlakare/bookreview/data"
	"github.com/prathameshlakare/bookreview/internal/validator"
	"github.com/prathameshlakare/bookreview/repository"
)

type tokens interface {
	CreateAuthenticationToken(username, password string) (*data.Token, error)
	DeleteAuthenticationToken(userID int64) error
}

// CreateAuthenticationToken service logs a user in. An unknown username and a
// wrong password produce the same ErrInvalidCredentials, so callers can't
// probe for which usernames exist.
func (s *service) CreateAuthenticationToken(username, password string) (*data.Token, error) {
	v := validator.New()
	data.ValidateUsername(v, username)
	data.ValidatePasswordPlaintext(v, password)
	if !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrInvalidCredentials
		default:
			return nil, err
		}
	}
	match, err := user.Password.Matches(password)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, ErrInvalidCredentials
	}
	token, err := s.repo.CreateNewToken(user.ID, 12*time.Hour, data.ScopeAuthentication)
	if err != nil {
		return nil, err
	}
	return token, nil
}

// DeleteAuthenticationToken service logs a user out by deleting all their
// authentication tokens.
func (s *service) DeleteAuthenticationToken(userID int64) error {
	return s.repo.DeleteAllTokensForUser(data.ScopeAuthentication, userID)
}
