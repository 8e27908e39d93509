package custody

import "errors"

var (
	ErrCustodyItemNotFound = errors.New("custody item not found")
)
