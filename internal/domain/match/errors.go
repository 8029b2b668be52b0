package match

import "errors"

var ErrNotFound = errors.New("match not found")
