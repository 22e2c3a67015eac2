package apierror

import (
	"fmt"
	"net/http"
)

// Machine error codes returned by the backend API. The vocabulary is
// closed: anything outside this list is treated as CodeUnknown by callers.
const (
	CodeNotFound            = "not_found"
	CodeValidation          = "validation_error"
	CodeUnauthorized        = "unauthorized"
	CodeNetwork             = "network_error"
	CodeUnknown             = "unknown_error"
	CodeDuplicateSlug       = "duplicate_slug"
	CodeDuplicateCode       = "duplicate_code"
	CodeInvalidCredentials  = "invalid_credentials"
	CodeUserNotFound        = "user_not_found"
	CodeInvalidPassword     = "invalid_password"
	CodeEmailExists         = "email_exists"
	CodeHasDependencies     = "has_dependencies"
	CodeCategoryHasServices = "category_has_services"
	CodeCategoryHasWorks    = "category_has_works"
	CodeCategoryHasProducts = "category_has_products"
	CodeHasWorks            = "has_works"
	CodeHasPrices           = "has_prices"
	CodeInvalidCategory     = "invalid_category"
	CodeCategoryNotFound    = "category_not_found"
	CodeInvalidSection      = "invalid_section"
	CodeServiceNotFound     = "service_not_found"
	CodeInvalidService      = "invalid_service"
	CodeFileRequired        = "file_required"
	CodeInvalidFileType     = "invalid_file_type"
)

// FieldError is a single field-level validation failure reported by the API.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a structured failure from the backend API. Status carries the
// HTTP status of the response; Details is present for validation errors.
type Error struct {
	Code    string
	Message string
	Status  int
	Details []FieldError
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %s (%d): %s", e.Code, e.Status, e.Message)
}

// New builds an Error, substituting the unknown-code fallback when the
// backend omits the machine code.
func New(code, message string, status int, details []FieldError) *Error {
	if code == "" {
		code = CodeUnknown
	}
	return &Error{Code: code, Message: message, Status: status, Details: details}
}

// Network is the collapsed transport-failure error: connection refused,
// timeouts and malformed response bodies all surface as this value.
func Network(err error) *Error {
	return &Error{
		Code:    CodeNetwork,
		Message: "connection to the API failed",
		Status:  http.StatusInternalServerError,
	}
}

// Unauthorized is the local short-circuit used when no token is available.
// No round trip happens before it is returned.
func Unauthorized() *Error {
	return &Error{
		Code:    CodeUnauthorized,
		Message: "no token provided",
		Status:  http.StatusUnauthorized,
	}
}

// IsCode reports whether err is an *Error carrying the given code.
func IsCode(err error, code string) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Code == code
}

// IsNotFound reports whether err is the API's not_found error.
func IsNotFound(err error) bool {
	return IsCode(err, CodeNotFound)
}
