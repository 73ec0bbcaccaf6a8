package cryptox

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemePlain    = "plain"
	SchemeBcrypt   = "bcrypt"
	SchemeArgon2id = "argon2id"
)

var ErrUnknownScheme = errors.New("unknown password scheme")

// PasswordCodec maps a submitted password to the value kept in storage.
type PasswordCodec interface {
	Encode(password string) (string, error)
	Verify(stored, password string) bool
}

// NewPasswordCodec returns the codec for scheme (case-insensitive) with
// production parameters.
func NewPasswordCodec(scheme string) (PasswordCodec, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case SchemePlain:
		return PlainCodec{}, nil
	case SchemeBcrypt:
		return BcryptCodec{Cost: bcrypt.DefaultCost}, nil
	case SchemeArgon2id:
		return DefaultArgon2idCodec(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
}

// PlainCodec stores passwords verbatim.
type PlainCodec struct{}

func (PlainCodec) Encode(password string) (string, error) { return password, nil }

func (PlainCodec) Verify(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

type BcryptCodec struct {
	Cost int
}

func (c BcryptCodec) Encode(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), c.Cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(h), nil
}

func (c BcryptCodec) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
