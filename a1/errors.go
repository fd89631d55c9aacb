package a1

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrMalformedAddress is matched by errors returned for addresses without a parseable
	// leading column.
	ErrMalformedAddress = errors.New("malformed cell address")

	// ErrInvalidCoordinate is matched by errors returned for row or column numbers below 1
	// or past the grid.
	ErrInvalidCoordinate = errors.New("invalid cell coordinate")
)

// MalformedAddressError is returned when an address or range cannot be parsed.
// It maps to gRPC status code [codes.InvalidArgument].
type MalformedAddressError struct {
	// Address is the text that failed to parse.
	Address string
	// Reason describes what was missing.
	Reason string
}

// Error returns a human-readable description including the offending address.
func (e *MalformedAddressError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrMalformedAddress, e.Address, e.Reason)
}

// Is reports whether target is ErrMalformedAddress.
func (e *MalformedAddressError) Is(target error) bool {
	return target == ErrMalformedAddress
}

// GRPCStatus returns the gRPC status representation of the error with [codes.InvalidArgument].
func (e *MalformedAddressError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// InvalidCoordinateError is returned when a 1-based row or column is below 1 or past the
// last row or column of the grid.
// It maps to gRPC status code [codes.InvalidArgument].
type InvalidCoordinateError struct {
	// Row is the 1-based row that was given.
	Row int64
	// Column is the 1-based column that was given.
	Column int64
	// Reason describes the violated bound. Empty means a value below 1.
	Reason string
}

// Error returns a human-readable description including the offending coordinate.
func (e *InvalidCoordinateError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "both must be at least 1"
	}
	return fmt.Sprintf("%v (row %d, column %d): %s", ErrInvalidCoordinate, e.Row, e.Column, reason)
}

// Is reports whether target is ErrInvalidCoordinate.
func (e *InvalidCoordinateError) Is(target error) bool {
	return target == ErrInvalidCoordinate
}

// GRPCStatus returns the gRPC status representation of the error with [codes.InvalidArgument].
func (e *InvalidCoordinateError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}
