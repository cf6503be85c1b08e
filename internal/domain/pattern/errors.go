package pattern

import "errors"

var (
	ErrPatternNotFound = errors.New("shift pattern not found")
	ErrInvalidPattern  = errors.New("invalid shift pattern definition")
)
