// Package encrypter hashes and checks admin passwords.
package encrypter

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrMismatch = errors.New("encrypter: password does not match")

// Encrypter hashes passwords with bcrypt.
type Encrypter interface {
	HashPassword(password string) (string, error)
	CheckPassword(hash, password string) error
}

type implEncrypter struct {
	cost int
}

// New creates an Encrypter. A cost outside bcrypt's range uses bcrypt.DefaultCost.
func New(cost int) Encrypter {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return implEncrypter{cost: cost}
}

func (e implEncrypter) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", fmt.Errorf("encrypter: hash password: %w", err)
	}
	return string(hashed), nil
}

func (e implEncrypter) CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
