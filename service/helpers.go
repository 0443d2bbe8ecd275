package service

import (
	"fmt"
)

// authorize is the ownership guard for mutable resources: only the identity
// that created a resource may mutate or delete it. Both sides are the int64
// user IDs this layer traffics in, so the comparison needs no further
// normalization.
func (s *service) authorize(resourceOwnerID, callerID int64) error {
	if resourceOwnerID != callerID {
		return ErrNotPermitted
	}
	return nil
}

// background launches fn in a goroutine tracked by the shared WaitGroup and
// recovers from panics inside it, so a failing background task cannot take
// the process down.
func (s *service) background(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if err := recover(); err != nil {
				s.logger.PrintError(fmt.Errorf("%s", err), nil)
			}
		}()
		fn()
	}()
}
