package domain

// APIError is an RFC 7807 style problem response
type APIError struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

// validationMessages maps validator tags without a parameter to a message
var validationMessages = map[string]string{
	"required": "This field is required",
	"email":    "Must be a valid email address",
	"numeric":  "Must be a numeric value",
	"alphanum": "Must contain only alphanumeric characters",
	"dive":     "One or more items are invalid",
}

// GetValidationMessage returns a human-readable message for a validation tag
func GetValidationMessage(tag string) string {
	if msg, ok := validationMessages[tag]; ok {
		return msg
	}
	return "Validation failed: " + tag
}

// Problem types used in APIError.Type
const (
	ErrorTypeValidation  = "validation_error"
	ErrorTypeNotFound    = "not_found"
	ErrorTypeBadRequest  = "bad_request"
	ErrorTypeConflict    = "conflict"
	ErrorTypeRateLimited = "rate_limited"
	ErrorTypeInternal    = "internal_error"
)
