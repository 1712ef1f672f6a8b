package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"bank-console/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// letters in any script, plus inner spaces, apostrophes, periods and hyphens
var personNamePattern = regexp.MustCompile(`^\p{L}[\p{L}\p{M}' .\-]*$`)

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("person_name", validatePersonName)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)
	_ = v.RegisterValidation("loan_policy", validateLoanPolicy)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "env"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// decimalValue lets numeric tags such as gte and lte compare decimal fields
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// ValidationError carries one readable message per failed field
type ValidationError struct {
	details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.details, "; ")
}

// Details returns the per-field messages
func (e *ValidationError) Details() []string {
	return e.details
}

// Struct validates a struct and converts failures into a ValidationError
func (v *Validator) Struct(s interface{}) error {
	return v.convert(v.validate.Struct(s))
}

// Var validates a single value against a tag list. name labels the messages.
func (v *Validator) Var(name string, value interface{}, tag string) error {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s %s", name, message(fe)))
	}
	return &ValidationError{details: details}
}

// ValidateName checks a customer first or last name
func (v *Validator) ValidateName(field, name string) error {
	return v.Var(field, strings.TrimSpace(name), "required,max=50,person_name")
}

func (v *Validator) convert(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s %s", fe.Field(), message(fe)))
	}
	return &ValidationError{details: details}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	case "gtfield":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "person_name":
		return "may only contain letters, spaces, apostrophes, periods and hyphens"
	case "positive_amount":
		return "must be greater than zero"
	case "non_negative_amount":
		return "cannot be negative"
	case "loan_policy":
		return fmt.Sprintf("must be %s or %s", models.AccrueSeparately, models.AccrueOnPayment)
	default:
		return fmt.Sprintf("failed the %s check", fe.Tag())
	}
}

// validatePersonName validates letters with inner spaces, apostrophes, periods and hyphens
func validatePersonName(fl validator.FieldLevel) bool {
	return personNamePattern.MatchString(fl.Field().String())
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	if d, ok := fl.Field().Interface().(decimal.Decimal); ok {
		return d.IsPositive()
	}
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	if d, ok := fl.Field().Interface().(decimal.Decimal); ok {
		return !d.IsNegative()
	}
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() >= 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() >= 0
	default:
		return false
	}
}

func validateLoanPolicy(fl validator.FieldLevel) bool {
	return models.IsValidLoanPolicy(models.LoanInterestPolicy(fl.Field().String()))
}
