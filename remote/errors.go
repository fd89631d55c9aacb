package remote

import (
	"fmt"

	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CallError is returned when a call to the remote service fails.
//
// The underlying transport error is not interpreted. It is available through errors.As or
// errors.Unwrap, for example as a *googleapi.Error.
type CallError struct {
	// Method is the remote method that failed, for example MethodBatchUpdate.
	Method string
	// Err is the error returned by the transport.
	Err error
}

// Error returns the method name followed by the transport error.
func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Method, e.Err)
}

// Unwrap returns the transport error.
func (e *CallError) Unwrap() error {
	return e.Err
}

// HTTPCode returns the HTTP status code reported by the service, or -1 when the failure did
// not carry one.
func (e *CallError) HTTPCode() int {
	if apiErr, ok := apierror.FromError(e.Err); ok {
		return apiErr.HTTPCode()
	}
	return -1
}

// GRPCStatus returns the gRPC status carried by the transport error, or [codes.Unknown] when
// there is none.
func (e *CallError) GRPCStatus() *status.Status {
	if apiErr, ok := apierror.FromError(e.Err); ok {
		if s := apiErr.GRPCStatus(); s != nil {
			return s
		}
	}
	return status.New(codes.Unknown, e.Error())
}
