package models

import "errors"

// Sentinel errors for graph queries. The API layer maps these to HTTP
// status codes via errors.Is.
var (
	// ErrPersonNotFound indicates a query referenced a person absent from
	// the loaded graph scope (maps to HTTP 404).
	ErrPersonNotFound = errors.New("person not found")

	// ErrMalformedEdge indicates a stored relationship row carries a kind
	// outside the closed set. This is upstream data corruption and fatal
	// for the whole edge set (maps to HTTP 500).
	ErrMalformedEdge = errors.New("malformed relationship edge")

	// ErrInvalidDepthMode indicates a depth mode outside {up_to, only_at}.
	ErrInvalidDepthMode = errors.New("invalid depth mode")

	// ErrInvalidFilter indicates an unparsable discovery filter value.
	ErrInvalidFilter = errors.New("invalid filter")
)

// ErrAddressNotFound indicates a person has no resolvable address record.
// Enrichment treats this as a soft miss, never a query failure.
var ErrAddressNotFound = errors.New("address not found")
