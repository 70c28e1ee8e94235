package validation

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"gtm-crm-backend/internal/database/models"

	"github.com/go-playground/validator/v10"
)

// Record holds form values keyed by field name
type Record map[string]string

// FieldErrors maps a field name to a human-readable message. Empty means valid.
type FieldErrors map[string]string

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern    = regexp.MustCompile(`^\+?\d{7,15}$`)
	phoneSeparators = strings.NewReplacer(" ", "", "\t", "", "-", "")
	websitePattern  = regexp.MustCompile(`^https?://[^\s$.?#].[^\s]*$`)
)

const linkedinPrefix = "https://www.linkedin.com/"

// Validator checks CRM records against per-kind schemas
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the CRM rule tags registered
func New() *Validator {
	v := validator.New()
	if err := RegisterTags(v); err != nil {
		// tag names are constants, registration only fails on programmer error
		panic(err)
	}
	return &Validator{validate: v}
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
)

// Default returns a process-wide Validator
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// Validate checks rec against the schema for kind using the default Validator
func Validate(kind models.EntityKind, rec Record) FieldErrors {
	return Default().Validate(kind, rec)
}

// Engine exposes the underlying validator for request struct validation
func (v *Validator) Engine() *validator.Validate {
	return v.validate
}

// Validate runs every rule of the kind's schema in order and collects one message per failing field
func (v *Validator) Validate(kind models.EntityKind, rec Record) FieldErrors {
	errs := FieldErrors{}
	schema, ok := SchemaFor(kind)
	if !ok {
		errs["kind"] = "Unsupported record type"
		return errs
	}

	for _, rule := range schema {
		if _, failed := errs[rule.Field]; failed {
			continue
		}
		value := strings.TrimSpace(rec[rule.Field])
		if err := v.validate.Var(value, rule.Tag); err != nil {
			errs[rule.Field] = rule.Message
		}
	}
	return errs
}

// RegisterTags installs the CRM rule tags on v
func RegisterTags(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"required_trim": func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		},
		"crm_email": func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		},
		"crm_phone": func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().String())
		},
		"crm_website": func(fl validator.FieldLevel) bool {
			return websitePattern.MatchString(fl.Field().String())
		},
		"crm_linkedin": func(fl validator.FieldLevel) bool {
			return strings.Contains(fl.Field().String(), linkedinPrefix)
		},
		"crm_float": func(fl validator.FieldLevel) bool {
			f, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
			return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
		},
		"crm_date": func(fl validator.FieldLevel) bool {
			_, err := models.ParseDate(fl.Field().String())
			return err == nil
		},
		"crm_enum": func(fl validator.FieldLevel) bool {
			domain, ok := Domains[fl.Param()]
			return ok && slices.Contains(domain, fl.Field().String())
		},
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// IsPhone accepts an optional leading plus and 7 to 15 digits, ignoring whitespace and hyphens
func IsPhone(value string) bool {
	return phonePattern.MatchString(phoneSeparators.Replace(strings.TrimSpace(value)))
}
