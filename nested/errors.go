package nested

import "errors"

var (
	ErrNotAnArray = errors.New("not an array")
	ErrPatch      = errors.New("invalid json patch")
)
