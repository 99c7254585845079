// Package errs defines the sentinel errors shared across rowpack packages.
//
// All errors are plain sentinels suitable for errors.Is checks. Call sites
// wrap them with fmt.Errorf("%w: ...") to add context.
package errs

import "errors"

// Configuration errors, raised while resolving parser parameters.
var (
	// ErrFormatMismatch indicates the "format" option does not name the
	// CSV parser.
	ErrFormatMismatch = errors.New("rowpack: format option does not match parser")
	// ErrWeightLabelCollision indicates the weight column index is also a
	// resolved label column index.
	ErrWeightLabelCollision = errors.New("rowpack: weight column collides with a label column")
	// ErrEmptyDelimiter indicates an empty delimiter option string.
	ErrEmptyDelimiter = errors.New("rowpack: delimiter must not be empty")
	// ErrUnsupportedValueType indicates a value type outside the supported
	// float32/int32/int64 set.
	ErrUnsupportedValueType = errors.New("rowpack: unsupported value type")
)

// Parse-time errors.
var (
	// ErrDelimiterNotFound indicates a line reached its end without the
	// configured delimiter while no feature field had been consumed yet,
	// which usually means the delimiter option does not match the data.
	ErrDelimiterNotFound = errors.New("rowpack: delimiter not found in line")
	// ErrBlockCorrupted indicates the cross-array invariants of a row
	// block do not hold. This is a defensive check for implementation
	// bugs, not a user input error.
	ErrBlockCorrupted = errors.New("rowpack: row block arrays are inconsistent")
)

// Page codec errors.
var (
	ErrInvalidHeaderSize  = errors.New("rowpack: invalid page header size")
	ErrInvalidMagicNumber = errors.New("rowpack: invalid page magic number")
	ErrInvalidHeaderFlags = errors.New("rowpack: invalid page header flags")
	ErrInvalidPayloadSize = errors.New("rowpack: page payload sizes exceed page data")
	ErrChecksumMismatch   = errors.New("rowpack: page checksum mismatch")
	ErrValueTypeMismatch  = errors.New("rowpack: page value type does not match decoder type")
)
