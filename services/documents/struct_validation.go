package documents

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Struct tags registered by RegisterStructValidations
const (
	TagCPF       = "cpf"
	TagCNPJ      = "cnpj"
	TagDocument  = "cpf_cnpj"
	TagBirthDate = "birthdate"
	TagEmail     = "email_strict"
)

var (
	structValidator     *validator.Validate
	structValidatorOnce sync.Once
	structValidatorErr  error
)

func stringRule(fn func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	}
}

// RegisterStructValidations installs the document tags on v so that fields like
//
//	TaxID string `validate:"required,cpf"`
//
// are checked with the same rules as ValidateCPF.
func RegisterStructValidations(v *validator.Validate) error {
	rules := map[string]func(string) bool{
		TagCPF:       ValidateCPF,
		TagCNPJ:      ValidateCNPJ,
		TagDocument:  func(s string) bool { return ValidateCPF(s) || ValidateCNPJ(s) },
		TagBirthDate: ValidateBirthDate,
		TagEmail:     ValidateEmail,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, stringRule(fn)); err != nil {
			return fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
	}
	return nil
}

// StructValidator returns a shared validator with the document tags registered
func StructValidator() (*validator.Validate, error) {
	structValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		if err := RegisterStructValidations(v); err != nil {
			structValidatorErr = err
			return
		}
		structValidator = v
	})
	return structValidator, structValidatorErr
}

// ValidateStruct validates s against its `validate` tags.
// Field failures are returned as validator.ValidationErrors.
func ValidateStruct(s interface{}) error {
	v, err := StructValidator()
	if err != nil {
		return err
	}
	return v.Struct(s)
}
