package httpx

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCredentials = errors.New("invalid credentials")

// AdminCredentials checks basic-auth credentials against the configured
// admin user and bcrypt password hash.
type AdminCredentials struct {
	Username     string
	PasswordHash []byte
}

func (c AdminCredentials) ValidateUser(username, password string) error {
	if subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) != 1 {
		return ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)); err != nil {
		return ErrBadCredentials
	}
	return nil
}

// HashPassword is used to produce the ADMIN_PASSWORD_HASH setting.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}
