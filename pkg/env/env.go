// Package env centralizes access to the process environment.
//
// A variable that is set to the empty string counts as present: callers get
// the empty string back, not the fallback. Use GetDefault when a fallback
// exists and Get when the variable is required. Nothing is cached; every
// call reads the environment afresh.
package env

import (
	"errors"
	"fmt"
	"os"
)

// ErrMissing is the sentinel wrapped by every MissingError, so callers can
// match with errors.Is without knowing the key.
var ErrMissing = errors.New("required environment variable is not set")

// MissingError reports a required environment variable that is not set and
// for which the caller supplied no fallback.
type MissingError struct {
	Key string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Key)
}

func (e *MissingError) Unwrap() error {
	return ErrMissing
}

// Lookup retrieves the value of the environment variable named by the key
// and reports whether it is present at all.
func Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Get retrieves the value of the environment variable named by the key.
// If the variable is not set, Get returns a *MissingError naming the key.
func Get(key string) (string, error) {
	if value, ok := os.LookupEnv(key); ok {
		return value, nil
	}
	return "", &MissingError{Key: key}
}

// GetDefault retrieves the value of the environment variable named by the
// key. If the variable is not set, GetDefault returns the fallback string.
func GetDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// MustGet is like Get but panics if the variable is not set. Intended for
// process bootstrap paths where a missing value is unrecoverable.
func MustGet(key string) string {
	value, err := Get(key)
	if err != nil {
		panic(err)
	}
	return value
}
