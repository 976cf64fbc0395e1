package attrpath

import "errors"

var (
	ErrEmptyPath   = errors.New("empty attribute path")
	ErrInvalidPath = errors.New("invalid attribute path")
)
