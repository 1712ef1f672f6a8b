package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"bank-console/internal/models"
)

type ValidatorTestSuite struct {
	suite.Suite
	v *Validator
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.v = NewValidator()
}

func (s *ValidatorTestSuite) TestValidateName() {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "simple", input: "Luis", valid: true},
		{name: "apostrophe", input: "O'Brien", valid: true},
		{name: "hyphenated", input: "Mary-Jane", valid: true},
		{name: "accented", input: "José", valid: true},
		{name: "suffix", input: "Griffey Jr.", valid: true},
		{name: "surrounding spaces trimmed", input: "  Curt  ", valid: true},
		{name: "empty", input: "", valid: false},
		{name: "blank", input: "   ", valid: false},
		{name: "digits", input: "R2D2", valid: false},
		{name: "leading punctuation", input: "-Tony", valid: false},
		{name: "too long", input: "Abcdefghijabcdefghijabcdefghijabcdefghijabcdefghijk", valid: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.v.ValidateName("first name", tc.input)
			if tc.valid {
				s.NoError(err)
				return
			}
			s.Error(err)
			var verr *ValidationError
			s.True(errors.As(err, &verr))
			s.NotEmpty(verr.Details())
			s.Contains(verr.Details()[0], "first name")
		})
	}
}

type amountRequest struct {
	Amount decimal.Decimal           `json:"amount" validate:"positive_amount,lte=1000"`
	Floor  decimal.Decimal           `json:"floor" validate:"non_negative_amount"`
	Policy models.LoanInterestPolicy `json:"policy" validate:"loan_policy"`
	Months int                       `json:"months" validate:"positive_amount"`
}

func (s *ValidatorTestSuite) TestStruct_Valid() {
	req := amountRequest{
		Amount: decimal.NewFromFloat(12.5),
		Floor:  decimal.Zero,
		Policy: models.AccrueOnPayment,
		Months: 12,
	}

	s.NoError(s.v.Struct(req))
}

func (s *ValidatorTestSuite) TestStruct_Invalid() {
	req := amountRequest{
		Amount: decimal.NewFromInt(5000),
		Floor:  decimal.NewFromInt(-1),
		Policy: "monthly",
		Months: 0,
	}

	err := s.v.Struct(req)

	var verr *ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Len(verr.Details(), 4)
	s.Contains(verr.Details(), "amount must be 1000 or less")
	s.Contains(verr.Details(), "floor cannot be negative")
	s.Contains(verr.Details(), "months must be greater than zero")
	s.Contains(err.Error(), "validation failed")
}

func (s *ValidatorTestSuite) TestStruct_NonPositiveDecimal() {
	req := amountRequest{Amount: decimal.Zero, Policy: models.AccrueSeparately, Months: 1}

	err := s.v.Struct(req)

	var verr *ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Equal([]string{"amount must be greater than zero"}, verr.Details())
}

func (s *ValidatorTestSuite) TestGetValidator_Singleton() {
	s.Same(GetValidator(), GetValidator())
	s.NotNil(GetValidator().GetValidate())
}
