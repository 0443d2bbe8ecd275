package data

import (
	"time"

	"github.com/prathameshlakare/bookreview/internal/validator"
)

// ScopeAuthentication is the scope for login tokens.
const ScopeAuthentication = "authentication"

// Token defines a stateful identity assertion. The plaintext is returned to
// the client exactly once; only its sha256 hash is stored.
type Token struct {
	Plaintext string    `json:"token"`
	Hash      []byte    `json:"-"`
	UserID    int64     `json:"-"`
	Expiry    time.Time `json:"expiry"`
	Scope     string    `json:"-"`
}

func ValidateTokenPlaintext(v *validator.Validator, tokenPlaintext string) {
	v.Check(tokenPlaintext != "", "token", "must be provided")
	v.Check(len(tokenPlaintext) == 26, "token", "must be 26 bytes long")
}
