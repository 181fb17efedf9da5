package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	// General validation
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeInvalidFormat:   "Invalid data format",
	CodeNotFound:        "Resource not found",
	CodeValidationError: "Validation error",

	// Configuration
	CodeConfigurationError: "Configuration error",

	// External service errors
	CodeExternalServiceError: "External service error",
	CodeServiceTimeout:       "Service request timeout",
	CodeServiceUnavailable:   "Service temporarily unavailable",
	CodeRateLimitExceeded:    "Rate limit exceeded",

	// System errors
	CodeInternalError: "Internal server error",
	CodeUnknownError:  "An unknown error occurred",

	// Dictionary / pattern errors
	CodeDictionaryEmpty:   "Pattern dictionary is empty",
	CodePatternNotMatched: "No pattern matched the error message",

	// AI backend errors
	CodeAIRequestFailed:  "AI completion request failed",
	CodeAIRateLimited:    "AI provider rate limit exceeded",
	CodeAIEmptyResponse:  "AI provider returned an empty completion",
	CodeAIUnauthorized:   "AI provider rejected the API key",
	CodeAIInvalidRequest: "AI provider rejected the request",
}
