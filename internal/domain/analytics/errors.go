package analytics

import "errors"

var (
	ErrUnknownQuery = errors.New("unknown analytics query")

	// ErrUnsupported marks stores that cannot execute catalog SQL, such as
	// the in-memory dev store.
	ErrUnsupported = errors.New("analytics queries require a sql store")
)
