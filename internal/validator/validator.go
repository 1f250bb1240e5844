package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"unicode"

	"github.com/cinebook/booking-api/api"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	ErrRequired        = "is required"
	ErrInvalidEmail    = "must be a valid email address"
	ErrInvalidURL      = "must be a valid URL"
	ErrMinLength       = "must be at least %s characters long"
	ErrMaxLength       = "must be at most %s characters long"
	ErrMinValue        = "must be greater than or equal to %s"
	ErrMaxValue        = "must be less than or equal to %s"
	ErrGreaterThan     = "must be greater than %s"
	ErrOneOf           = "must be one of: %s"
	ErrInvalidRole     = "must be one of: USER ADMIN"
	ErrInvalidStatus   = "must be one of: PENDING COMPLETED FAILED REFUNDED"
	ErrInvalidPassword = "must be at least 8 characters long and include at least one uppercase letter, " +
		"one lowercase letter, one number, and one special character (!@#$%^&*)."
	ErrDefaultInvalid = "is invalid"
)

var (
	hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("role", validateRole)
	validator.RegisterValidation("payment_status", validatePaymentStatus)

	return validator
}

// decimalValue lets numeric tags such as gt and gte compare decimal amounts.
func decimalValue(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	f, _ := d.Float64()
	return f
}

func validateRole(fl validator.FieldLevel) bool {
	role := api.Role(fl.Field().String())

	return role == api.USER || role == api.ADMIN
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	switch api.PaymentStatus(fl.Field().String()) {
	case api.PENDING, api.COMPLETED, api.FAILED, api.REFUNDED:
		return true
	default:
		return false
	}
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 72 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrInvalidEmail
	case "url":
		return ErrInvalidURL
	case "min":
		if isNumber(err.Kind()) {
			return fmt.Sprintf(ErrMinValue, err.Param())
		}
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		if isNumber(err.Kind()) {
			return fmt.Sprintf(ErrMaxValue, err.Param())
		}
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "gte":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "gt":
		return fmt.Sprintf(ErrGreaterThan, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "role":
		return ErrInvalidRole
	case "payment_status":
		return ErrInvalidStatus
	case "password":
		return ErrInvalidPassword
	default:
		return ErrDefaultInvalid
	}
}

func isNumber(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
