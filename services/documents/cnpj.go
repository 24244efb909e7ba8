package documents

import (
	"fmt"

	"wd_utils_go/models"
)

const (
	cnpjLength     = 14
	cnpjBodyLength = 12
)

// CNPJValidator validates company registry numbers
type CNPJValidator struct{}

func (CNPJValidator) Type() models.DocumentType { return models.DocumentTypeCNPJ }

func (CNPJValidator) Validate(raw string) bool { return ValidateCNPJ(raw) }

// ValidateCNPJ reports whether raw holds a valid CNPJ. Punctuation is ignored,
// the number must have 14 digits and sequences of one repeated digit are rejected.
func ValidateCNPJ(raw string) bool {
	return validate(raw, cnpjLength, cyclicWeight)
}

// CNPJCheckDigits completes a 12 digit CNPJ body with its two check digits
func CNPJCheckDigits(body string) (string, error) {
	digits := Digits(body)
	if len(digits) != cnpjBodyLength || len(body) != cnpjBodyLength {
		return "", fmt.Errorf("cnpj body must have %d digits, got %q", cnpjBodyLength, body)
	}
	return digitsString(appendCheckDigits(digits, cyclicWeight)), nil
}
