package service

import (
	"errors"
	"time"

	"github.com/prathameshlakare/bookreview/data"
	"github.com/prathameshlakare/bookreview/internal/mailer"
	"github.com/prathameshlakare/bookreview/internal/validator"
	"github.com/prathameshlakare/bookreview/repository"
)

type users interface {
	RegisterUser(username, email, password string) (*data.User, *data.Token, error)
	GetUser(userID int64) (*data.User, error)
	GetUserForToken(tokenScope, tokenPlaintext string) (*data.User, error)
}

// RegisterUser service registers a new user and logs them in by issuing an
// authentication token alongside the new account. When an email address was
// supplied, a welcome email goes out in a background goroutine so the
// response isn't held up by SMTP.
func (s *service) RegisterUser(username, email, password string) (*data.User, *data.Token, error) {
	user := &data.User{
		Username: username,
		Email:    email,
	}
	err := user.Password.Set(password)
	if err != nil {
		return nil, nil, err
	}
	v := validator.New()
	if data.ValidateUser(v, user); !v.Valid() {
		return nil, nil, s.failedValidation(v.Errors)
	}
	err = s.repo.RegisterUser(user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			v.AddError("username", "a user with this username already exists")
			return nil, nil, s.failedValidation(v.Errors)
		default:
			return nil, nil, err
		}
	}
	token, err := s.repo.CreateNewToken(user.ID, 12*time.Hour, data.ScopeAuthentication)
	if err != nil {
		return nil, nil, err
	}
	if user.Email != "" {
		s.background(func() {
			data := map[string]string{
				"userName": user.Username,
			}
			mailer := mailer.New(s.config.SMTP.Host, s.config.SMTP.Port, s.config.SMTP.Username, s.config.SMTP.Password, s.config.SMTP.Sender)
			err := mailer.Send(user.Email, "user_welcome.tmpl", data)
			if err != nil {
				s.logger.PrintError(err, nil)
			}
		})
	}
	return user, token, nil
}

// GetUser retrieves a user's public profile by ID.
func (s *service) GetUser(userID int64) (*data.User, error) {
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return user, nil
}

// GetUserForToken retrieves the user associated with a token. This is the
// identity assertion every authenticated request goes through.
func (s *service) GetUserForToken(tokenScope, tokenPlaintext string) (*data.User, error) {
	v := validator.New()
	user, err := s.repo.GetUserForToken(tokenScope, tokenPlaintext)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			v.AddError("token", "invalid or expired token")
			return nil, s.failedValidation(v.Errors)
		default:
			return nil, err
		}
	}
	return user, nil
}
