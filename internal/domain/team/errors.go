package team

import "errors"

var ErrNotFound = errors.New("team not found")
