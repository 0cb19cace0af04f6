package errors

import (
	"errors"
	"fmt"
	"strings"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Detail  string // optional diagnostic payload (raw model output, validation detail)
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, preserving an existing code
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Detail:  appErr.Detail,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// GetDetail returns the diagnostic detail if present
func GetDetail(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Detail
	}
	return ""
}

// Failure taxonomy codes. Every failure is terminal for the current
// attempt; none triggers an automatic retry.
const (
	CodeUnknownDomain    = "UNKNOWN_DOMAIN"
	CodeQuotaExhausted   = "QUOTA_EXHAUSTED"
	CodeEmptyInput       = "EMPTY_INPUT"
	CodeTransportError   = "TRANSPORT_ERROR"
	CodeJSONDecode       = "JSON_DECODE_ERROR"
	CodeSchemaValidation = "SCHEMA_VALIDATION_ERROR"

	CodeConfigInvalid = "CONFIG_INVALID"
	CodeDatabaseError = "DATABASE_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternalError = "INTERNAL_ERROR"
)

func UnknownDomain(domain string) *AppError {
	return New(CodeUnknownDomain, fmt.Sprintf("domain %q is not registered", domain))
}

func QuotaExhausted() *AppError {
	return New(CodeQuotaExhausted, "session credits exhausted; start a new session")
}

func EmptyInput() *AppError {
	return New(CodeEmptyInput, "input text is empty")
}

// TransportError wraps a failed external model call. The cause is kept
// verbatim so credential-looking failures can be distinguished downstream.
func TransportError(cause error) *AppError {
	return &AppError{
		Code:    CodeTransportError,
		Message: "model call failed",
		Cause:   cause,
	}
}

// JSONDecodeError carries the raw model output for diagnosis.
func JSONDecodeError(cause error, raw string) *AppError {
	return &AppError{
		Code:    CodeJSONDecode,
		Message: "model returned malformed JSON",
		Detail:  raw,
		Cause:   cause,
	}
}

// SchemaValidationError carries the validation detail.
func SchemaValidationError(detail string) *AppError {
	return &AppError{
		Code:    CodeSchemaValidation,
		Message: "model output did not match the domain schema",
		Detail:  detail,
	}
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func DatabaseError(cause error) *AppError {
	return &AppError{Code: CodeDatabaseError, Message: "database error", Cause: cause}
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func IsCode(err error, code string) bool {
	return GetCode(err) == code
}

func IsQuotaExhausted(err error) bool { return IsCode(err, CodeQuotaExhausted) }
func IsEmptyInput(err error) bool     { return IsCode(err, CodeEmptyInput) }
func IsUnknownDomain(err error) bool  { return IsCode(err, CodeUnknownDomain) }
func IsNotFound(err error) bool       { return IsCode(err, CodeNotFound) }

// CredentialSuspected reports whether a transport failure looks like an
// invalid credential, so the caller can show the distinguished message.
func CredentialSuspected(err error) bool {
	if err == nil || GetCode(err) != CodeTransportError {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"api_key_invalid", "invalid api key", "invalid_api_key", "unauthorized", "http 401", "http 403", "status 401", "status 403"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
