package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/scorex/ir"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = ir.ErrParse
	ErrEmpty    = fmt.Errorf("%w: no root element", ErrParse)
)
