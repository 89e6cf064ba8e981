package validator

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var basicEmailPattern = regexp.MustCompile(`.+@.+\..+`)

type CustomValidator struct {
	validator *validator.Validate
	messages  map[string]string
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON name so error keys match request bodies
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterValidation("basicemail", validateBasicEmail)
	v.RegisterValidation("phone10", validatePhone10)

	return &CustomValidator{
		validator: v,
		messages:  make(map[string]string),
	}
}

// validateBasicEmail accepts anything shaped like local@domain.tld
func validateBasicEmail(fl validator.FieldLevel) bool {
	return basicEmailPattern.MatchString(fl.Field().String())
}

// validatePhone10 accepts numbers with exactly ten digits once formatting is stripped
func validatePhone10(fl validator.FieldLevel) bool {
	return len(DigitsOnly(fl.Field().String())) == 10
}

// DigitsOnly strips every non-digit character
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r <= unicode.MaxASCII {
			return r
		}
		return -1
	}, s)
}

// RegisterMessages overrides the message of a field/tag pair.
// Keys have the form "field.tag", e.g. "email.basicemail".
func (cv *CustomValidator) RegisterMessages(messages map[string]string) {
	for k, v := range messages {
		cv.messages[k] = v
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			if msg, ok := cv.messages[field+"."+e.Tag()]; ok {
				errors[field] = msg
				continue
			}
			switch e.Tag() {
			case "required", "notblank":
				errors[field] = field + " is required"
			case "email", "basicemail":
				errors[field] = field + " must be a valid email address"
			case "phone10":
				errors[field] = field + " must contain exactly 10 digits"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "datetime":
				errors[field] = field + " must match the format " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
