package graph

import "errors"

var (
	// ErrMissingURI, ErrMissingUsername and ErrMissingPassword report the
	// absent required connection value.
	ErrMissingURI      = errors.New("neo4j URI is required")
	ErrMissingUsername = errors.New("neo4j username is required")
	ErrMissingPassword = errors.New("neo4j password is required")

	// ErrClosed is returned when an operation is attempted on a closed
	// client.
	ErrClosed = errors.New("graph client is closed")
)
