package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound        ErrorCode = "TRANSACTION_001"
	TransactionInvalidCategory ErrorCode = "TRANSACTION_002"
	TransactionInvalidAmount   ErrorCode = "TRANSACTION_003"
	TransactionEmptyBatch      ErrorCode = "TRANSACTION_004"
)

// User error codes (USER_*)
const (
	UserNotFound  ErrorCode = "USER_001"
	UserInvalidID ErrorCode = "USER_002"
	UserNoResults ErrorCode = "USER_003"
)

// Classification error codes (CLASSIFICATION_*)
const (
	ClassificationEmptyDescription ErrorCode = "CLASSIFICATION_001"
	ClassificationBatchTooLarge    ErrorCode = "CLASSIFICATION_002"
)

// Score error codes (SCORE_*)
const (
	ScoreOutOfRange ErrorCode = "SCORE_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Transaction errors
	TransactionNotFound:        "Transaction not found",
	TransactionInvalidCategory: "Invalid transaction category",
	TransactionInvalidAmount:   "Invalid transaction amount",
	TransactionEmptyBatch:      "Transaction batch is empty",

	// User errors
	UserNotFound:  "User not found",
	UserInvalidID: "Invalid user ID format",
	UserNoResults: "User search returned no results",

	// Classification errors
	ClassificationEmptyDescription: "Transaction description is required for classification",
	ClassificationBatchTooLarge:    "Classification batch exceeds the allowed size",

	// Score errors
	ScoreOutOfRange: "Score must be between 0 and 100",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
