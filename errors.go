package u8scan

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a character index does not exist.
	ErrOutOfRange = errors.New("u8scan: index out of range")

	// ErrEmpty is returned by Front and Back when there is no character
	// after the BOM. It wraps ErrOutOfRange.
	ErrEmpty = fmt.Errorf("u8scan: string is empty: %w", ErrOutOfRange)
)

// IndexError reports a character index past the end of the input.
type IndexError struct {
	Index  int // requested character index
	Length int // characters available
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("u8scan: index %d out of range [0:%d]", e.Index, e.Length)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

// ErrBufferFull is returned by a Decoder whose read buffer would have to
// grow past its limit.
var ErrBufferFull = errors.New("u8scan: read buffer full")
