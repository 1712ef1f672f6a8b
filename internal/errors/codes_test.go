package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Invalid Credentials",
			code:     AuthInvalidCredentials,
			expected: "Incorrect teller PIN",
		},
		{
			name:     "Validation Invalid Format",
			code:     ValidationInvalidFormat,
			expected: "Please enter a number",
		},
		{
			name:     "Customer Not Found",
			code:     CustomerNotFound,
			expected: "Customer not found",
		},
		{
			name:     "Account Insufficient Balance",
			code:     AccountInsufficientBalance,
			expected: "Insufficient account balance",
		},
		{
			name:     "Transaction Invalid Amount",
			code:     TransactionInvalidAmount,
			expected: "Amount must be greater than zero",
		},
		{
			name:     "Transaction Insufficient Payment",
			code:     TransactionInsufficientPayment,
			expected: "Payment does not cover this month's interest",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("UNKNOWN_999")))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(SystemInputClosed))
	s.True(IsValidErrorCode(ValidationMenuSelection))
	s.False(IsValidErrorCode(ErrorCode("AUTH_999")))
	s.False(IsValidErrorCode(ErrorCode("")))
}

// TestAllCodesHaveMessages verifies every registered code follows PREFIX_NNN
func (s *CodesTestSuite) TestAllCodesHaveMessages() {
	prefixes := []string{"AUTH_", "VALIDATION_", "CUSTOMER_", "ACCOUNT_", "TRANSACTION_", "SYSTEM_"}

	for code, message := range errorMessages {
		s.NotEmpty(message, "code %s has no message", code)

		known := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				known = true
				s.Len(strings.TrimPrefix(string(code), prefix), 3, "code %s", code)
			}
		}
		s.True(known, "code %s has an unknown category", code)
	}
}
