package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"bank-console/internal/models"
	"bank-console/internal/repositories"
	"bank-console/internal/services"
)

// ErrorResponse represents the standardized error structure shown at the console
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
// Optional details can be added using functional options
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationErrorFromList creates a validation error from a list of detail messages
func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(ValidationGeneral),
			Message: GetErrorMessage(ValidationGeneral),
			Details: details,
			TraceID: traceID,
		},
	}
}

// codeMappings is checked in order with errors.Is
var codeMappings = []struct {
	target error
	code   ErrorCode
}{
	{models.ErrInvalidAmount, TransactionInvalidAmount},
	{models.ErrInsufficientFunds, TransactionInsufficientFunds},
	{models.ErrInsufficientPayment, TransactionInsufficientPayment},
	{models.ErrLoanPaidOff, TransactionLoanPaidOff},
	{models.ErrNameRequired, ValidationRequiredField},
	{repositories.ErrCustomerNotFound, CustomerNotFound},
	{services.ErrInvalidName, ValidationInvalidName},
	{services.ErrUnknownAccount, AccountInvalidType},
	{services.ErrAlreadyProcessed, AccountAlreadyProcessed},
	{services.ErrTellerLocked, AuthAccountLocked},
	{services.ErrTellerPINMismatch, AuthInvalidCredentials},
	{repositories.ErrAuditWrite, SystemDatabaseError},
}

// CodeFor returns the error code for a domain error. Bare validation
// failures map to ValidationGeneral and anything else to SystemInternalError.
func CodeFor(err error) ErrorCode {
	for _, m := range codeMappings {
		if stderrors.Is(err, m.target) {
			return m.code
		}
	}

	var detailed interface{ Details() []string }
	if stderrors.As(err, &detailed) {
		return ValidationGeneral
	}
	return SystemInternalError
}

// FromError converts a domain error into a response. Unrecognised errors
// get a generic message so internal details are not shown to the teller.
func FromError(err error, traceID string) *ErrorResponse {
	code := CodeFor(err)
	response := NewErrorResponse(code, traceID)

	var detailed interface{ Details() []string }
	if stderrors.As(err, &detailed) {
		response.Error.Details = detailed.Details()
	}
	return response
}

// WrapSystemError wraps an internal error with a generic system error message
// The internal error is returned separately for logging
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapDatabaseError wraps a database error with a generic system error message
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDatabaseError, traceID), err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// IsSystemCode reports whether the code describes a failure the user cannot fix
func IsSystemCode(code ErrorCode) bool {
	return strings.HasPrefix(string(code), "SYSTEM_")
}

// IsUserError returns true if re-entering input can resolve the error
func (er *ErrorResponse) IsUserError() bool {
	return !IsSystemCode(ErrorCode(er.Error.Code))
}

// IsSystemError returns true if the error is an internal failure
func (er *ErrorResponse) IsSystemError() bool {
	return IsSystemCode(ErrorCode(er.Error.Code))
}

// Line renders the response the way the console prints problems
func (er *ErrorResponse) Line() string {
	var b strings.Builder
	b.WriteString("** ")
	b.WriteString(er.Error.Message)
	for _, d := range er.Error.Details {
		b.WriteString("\n   - ")
		b.WriteString(d)
	}
	if er.IsSystemError() && er.Error.TraceID != "" {
		fmt.Fprintf(&b, " (session %s)", er.Error.TraceID)
	}
	return b.String()
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
