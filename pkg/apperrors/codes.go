package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Input
	CodeMissingField     ErrorCode = "MISSING_FIELD"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Resources
	CodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	CodeProfileNotFound  ErrorCode = "PROFILE_NOT_FOUND"
	CodeNoPlansAvailable ErrorCode = "NO_PLANS_AVAILABLE"

	// Business logic
	CodeDuplicateEmail ErrorCode = "DUPLICATE_EMAIL"

	// System
	CodeInternalError      ErrorCode = "INTERNAL_ERROR"
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)
