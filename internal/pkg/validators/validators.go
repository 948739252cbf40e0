// Package validators holds the custom go-playground validations shared by
// request payloads and domain commands.
package validators

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Patterns for corporate emails and salary periods (mm-yyyy).
const (
	EmailPattern  = `(?i)^\w+(\.\w+){0,2}@acme\.com$`
	PeriodPattern = `^(0[1-9]|1[0-2])-\d{4}$`

	RoleOperationPattern   = `(?i)^(grant|remove)$`
	AccessOperationPattern = `(?i)^(un)?lock$`
)

// Custom validation tags
const (
	CorporateEmailTag  = "corporate_email"
	PeriodTag          = "period"
	RoleOperationTag   = "role_operation"
	AccessOperationTag = "access_operation"
)

var (
	emailRegex  = regexp.MustCompile(EmailPattern)
	periodRegex = regexp.MustCompile(PeriodPattern)

	roleOperationRegex   = regexp.MustCompile(RoleOperationPattern)
	accessOperationRegex = regexp.MustCompile(AccessOperationPattern)

	instance     *validator.Validate
	instanceOnce sync.Once
)

// IsCorporateEmail reports whether email belongs to the corporate domain.
func IsCorporateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsPeriod reports whether period has the mm-yyyy format.
func IsPeriod(period string) bool {
	return periodRegex.MatchString(period)
}

// CorporateEmailValidation validates a string field against EmailPattern.
func CorporateEmailValidation(fl validator.FieldLevel) bool {
	return IsCorporateEmail(fl.Field().String())
}

// PeriodValidation validates a string field against PeriodPattern.
func PeriodValidation(fl validator.FieldLevel) bool {
	return IsPeriod(fl.Field().String())
}

func patternValidation(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Get returns the shared validator with all custom validations registered.
// Field names in errors are taken from the json tag.
func Get() *validator.Validate {
	instanceOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation(CorporateEmailTag, CorporateEmailValidation)
		_ = v.RegisterValidation(PeriodTag, PeriodValidation)
		_ = v.RegisterValidation(RoleOperationTag, patternValidation(roleOperationRegex))
		_ = v.RegisterValidation(AccessOperationTag, patternValidation(accessOperationRegex))
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		instance = v
	})
	return instance
}

// Messages validates s and translates every failing "field.tag" pair to its
// message. Pairs without a message fall back to "<field> is invalid". The
// result follows the field order of s and is empty when s is valid.
func Messages(s interface{}, messages map[string]string) ([]string, error) {
	err := Get().Struct(s)
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err
	}

	result := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		if msg, ok := messages[fieldErr.Field()+"."+fieldErr.Tag()]; ok {
			result = append(result, msg)
			continue
		}
		result = append(result, fieldErr.Field()+" is invalid")
	}
	return result, nil
}
