package genome

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSymbol   = errors.New("invalid symbol")
	ErrTruncatedInput  = errors.New("truncated input")
	ErrSequenceTooLong = errors.New("sequence longer than 2^32-1 symbols")
)

// InvalidSymbolError reports the first byte of a sequence outside {A,C,T,G}.
type InvalidSymbolError struct {
	Char byte
	Pos  int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d", e.Char, e.Pos)
}

func (e *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}
