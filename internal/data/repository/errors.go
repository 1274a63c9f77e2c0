package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound means nothing usable is stored under the key.
var ErrNotFound = errors.New("not found")

// ErrMalformedData is returned when a stored value fails to parse. It matches
// ErrNotFound so callers can treat both the same way.
var ErrMalformedData = fmt.Errorf("malformed stored data: %w", ErrNotFound)
