package errors

// ErrorCode represents a standardized error code shown to the teller and written to logs
type ErrorCode string

// Teller authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthAccountLocked      ErrorCode = "AUTH_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidName   ErrorCode = "VALIDATION_005"
	ValidationMenuSelection ErrorCode = "VALIDATION_006"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound  ErrorCode = "CUSTOMER_001"
	CustomerNoResults ErrorCode = "CUSTOMER_002"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound            ErrorCode = "ACCOUNT_001"
	AccountAlreadyProcessed    ErrorCode = "ACCOUNT_002"
	AccountInsufficientBalance ErrorCode = "ACCOUNT_003"
	AccountInvalidType         ErrorCode = "ACCOUNT_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount       ErrorCode = "TRANSACTION_002"
	TransactionInsufficientFunds   ErrorCode = "TRANSACTION_003"
	TransactionInsufficientPayment ErrorCode = "TRANSACTION_004"
	TransactionLoanPaidOff         ErrorCode = "TRANSACTION_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemInputClosed        ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Incorrect teller PIN",
	AuthAccountLocked:      "Too many failed attempts. Teller access is locked, please wait",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Please enter a number",
	ValidationOutOfRange:    "Value is out of allowed range",
	ValidationInvalidName:   "Names may contain letters, spaces, apostrophes, periods and hyphens",
	ValidationMenuSelection: "Oops, please choose one of the listed options",

	// Customer errors
	CustomerNotFound:  "Customer not found",
	CustomerNoResults: "There are no customers yet",

	// Account errors
	AccountNotFound:            "Account not found",
	AccountAlreadyProcessed:    "End of month has already been processed for this month",
	AccountInsufficientBalance: "Insufficient account balance",
	AccountInvalidType:         "Invalid account type",

	// Transaction errors
	TransactionInvalidAmount:       "Amount must be greater than zero",
	TransactionInsufficientFunds:   "Insufficient funds for this withdrawal",
	TransactionInsufficientPayment: "Payment does not cover this month's interest",
	TransactionLoanPaidOff:         "The loan is already paid off",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please report the session ID",
	SystemDatabaseError:      "Audit database error",
	SystemInputClosed:        "Input closed",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
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
