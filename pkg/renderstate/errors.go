package renderstate

import (
	"errors"
	"fmt"
)

var (
	// ErrNotReady is returned by operations on a store that has not been initialized.
	ErrNotReady = errors.New("render state not initialized")
	// ErrIndexOutOfRange is returned when a player id or entity index does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")
)

func indexError(kind string, index int, length int) error {
	return fmt.Errorf("%s index %d (length %d): %w", kind, index, length, ErrIndexOutOfRange)
}
