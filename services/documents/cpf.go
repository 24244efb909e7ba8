package documents

import (
	"fmt"

	"wd_utils_go/models"
)

const (
	cpfLength     = 11
	cpfBodyLength = 9
)

// CPFValidator validates individual taxpayer numbers
type CPFValidator struct{}

func (CPFValidator) Type() models.DocumentType { return models.DocumentTypeCPF }

func (CPFValidator) Validate(raw string) bool { return ValidateCPF(raw) }

// ValidateCPF reports whether raw holds a valid CPF. Punctuation is ignored,
// the number must have 11 digits and sequences of one repeated digit are rejected.
func ValidateCPF(raw string) bool {
	return validate(raw, cpfLength, descendingWeight)
}

// CPFCheckDigits completes a 9 digit CPF body with its two check digits
func CPFCheckDigits(body string) (string, error) {
	digits := Digits(body)
	if len(digits) != cpfBodyLength || len(body) != cpfBodyLength {
		return "", fmt.Errorf("cpf body must have %d digits, got %q", cpfBodyLength, body)
	}
	return digitsString(appendCheckDigits(digits, descendingWeight)), nil
}
