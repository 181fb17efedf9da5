package apperror

// Code represents a unique error code for the application
type Code string

// General error codes
const (
	// General validation
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeValidationError Code = "VALIDATION_ERROR"

	// Configuration
	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	// External service errors
	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"
	CodeServiceTimeout       Code = "SERVICE_TIMEOUT"
	CodeServiceUnavailable   Code = "SERVICE_UNAVAILABLE"
	CodeRateLimitExceeded    Code = "RATE_LIMIT_EXCEEDED"

	// System errors
	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// Humanizer-specific error codes
const (
	// Dictionary / pattern errors
	CodeDictionaryEmpty   Code = "DICTIONARY_EMPTY"
	CodePatternNotMatched Code = "PATTERN_NOT_MATCHED"

	// AI backend errors
	CodeAIRequestFailed  Code = "AI_REQUEST_FAILED"
	CodeAIRateLimited    Code = "AI_RATE_LIMITED"
	CodeAIEmptyResponse  Code = "AI_EMPTY_RESPONSE"
	CodeAIUnauthorized   Code = "AI_UNAUTHORIZED"
	CodeAIInvalidRequest Code = "AI_INVALID_REQUEST"
)
