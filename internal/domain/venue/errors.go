package venue

import "errors"

var ErrNotFound = errors.New("venue not found")
