package scorex

import (
	"errors"
)

var (
	// ErrStructure reports a document lacking required top level
	// structure. Nothing is mutated when it is returned.
	ErrStructure = errors.New("structural error")
	ErrNotFound  = errors.New("not found")
	ErrInvalid   = errors.New("invalid argument")
)
