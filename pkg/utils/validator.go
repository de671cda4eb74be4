package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// A failed registration would leave the tags silently unenforced,
	// so it is fatal.
	if err := validate.RegisterValidation("contact_status", validateContactStatus); err != nil {
		panic(fmt.Sprintf("register contact_status validation: %v", err))
	}
	if err := validate.RegisterValidation("phone", validatePhone); err != nil {
		panic(fmt.Sprintf("register phone validation: %v", err))
	}
}

// ValidateStruct validates all tagged fields and reports every violation,
// not just the first one.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	violations := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		violations = append(violations, describeViolation(fieldErr))
	}

	return fmt.Errorf("validation failed: %s", strings.Join(violations, "; "))
}

func describeViolation(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	case "contact_status":
		return fmt.Sprintf("%s must be one of: new, read, replied, archived", field)
	case "phone":
		return fmt.Sprintf("%s must be a valid phone number", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func validateContactStatus(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	validStatuses := []string{"new", "read", "replied", "archived"}

	for _, validStatus := range validStatuses {
		if status == validStatus {
			return true
		}
	}
	return false
}

func validatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	re := regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{4,19}$`)
	return re.MatchString(phone)
}

func IsValidEmail(email string) bool {
	email = strings.TrimSpace(strings.ToLower(email))
	re := regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	return re.MatchString(email)
}
