package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	gpvalidator "github.com/go-playground/validator/v10"
	cerr "github.com/muhammadheryan/vastu-shakti/utils/errors"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// mobileRegex accepts a bare 10-digit number or a +91/91 prefixed one with optional separators.
var mobileRegex = regexp.MustCompile(`^\+?91[-\s]?\d{5}[-\s]?\d{5}$|^\d{10}$`)

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Sanitizer is implemented by requests that normalize their input before validation.
type Sanitizer interface {
	Sanitize()
}

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("mobile_in", func(fl gpvalidator.FieldLevel) bool {
		return IsMobile(fl.Field().String())
	})
	_ = v.RegisterValidation("iso8601", func(fl gpvalidator.FieldLevel) bool {
		_, err := ParseISO8601(fl.Field().String())
		return err == nil
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// ValidateRequest sanitizes and validates s, returning a validation error that
// lists every violated field.
func ValidateRequest(s interface{}) error {
	if sn, ok := s.(Sanitizer); ok {
		sn.Sanitize()
	}
	err := ValidateStruct(s)
	if err == nil {
		return nil
	}

	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return cerr.SetValidationError(nil)
	}

	fields := make([]cerr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, cerr.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return cerr.SetValidationError(fields)
}

func IsMobile(s string) bool {
	return mobileRegex.MatchString(s)
}

// ParseISO8601 parses a calendar date or a date-time in ISO-8601 form.
func ParseISO8601(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", s)
}

func message(fe gpvalidator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "please provide a valid email"
	case "mobile_in":
		return "please provide a valid mobile number"
	case "iso8601":
		return "please provide a valid date"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
