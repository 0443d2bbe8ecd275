package service

import (
	"errors"
	"fmt"
)

var (
	ErrFailedValidation   = errors.New("failed validation")
	ErrRecordNotFound     = errors.New("record not found")
	ErrEditConflict       = errors.New("edit conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBadRequest         = errors.New("bad request")
	ErrDuplicateRecord    = errors.New("duplicate record")
	ErrNotPermitted       = errors.New("not permitted")
)

// failedValidation wraps ErrFailedValidation with every field error collected
// by a validator, so handlers can both match on the sentinel and surface the
// full field detail.
func (s *service) failedValidation(errorMap map[string]string) error {
	err := error(ErrFailedValidation)
	for k, v := range errorMap {
		err = fmt.Errorf("%w: %q %s", err, k, v)
	}
	return err
}
