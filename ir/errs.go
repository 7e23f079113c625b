package ir

import (
	"errors"
)

var (
	ErrParse  = errors.New("parse error")
	ErrEncode = errors.New("encode error")
)
