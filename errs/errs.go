// Package errs defines the sentinel errors returned by flatgeom packages.
//
// Callers match them with errors.Is; functions that add context wrap the
// sentinel instead of replacing it.
package errs

import "github.com/pkg/errors"

// Builder errors.
var (
	// ErrNoGeometry is returned when an event stream finished without producing any geometry.
	ErrNoGeometry = errors.New("missing geometry")
	// ErrBuilderFinished is returned when a builder is used after its geometry was taken.
	ErrBuilderFinished = errors.New("builder already finished")
)

// Reader errors.
var (
	// ErrUnknownGeometry is returned when a Geometry value is not one of the known kinds.
	ErrUnknownGeometry = errors.New("unknown geometry kind")
)

// Blob errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid blob header size")
	ErrInvalidMagicNumber = errors.New("invalid blob magic number")
	ErrInvalidHeaderFlags = errors.New("invalid blob header flags")
	ErrInvalidDimension   = errors.New("invalid coordinate dimension")
	ErrChecksumMismatch   = errors.New("blob payload checksum mismatch")
	ErrMalformedPayload   = errors.New("malformed blob payload")
	ErrEncoderFinished    = errors.New("encoder already finished")
)

// Interop errors.
var (
	// ErrUnsupportedGeometry is returned when a foreign geometry type has no flat equivalent.
	ErrUnsupportedGeometry = errors.New("unsupported geometry type")
	// ErrUnbalancedStream is returned by writers when end events do not match begin events.
	ErrUnbalancedStream = errors.New("unbalanced geometry stream")
)
