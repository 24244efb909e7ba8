package models

import (
	"fmt"
	"strings"
)

// DocumentType identifies a Brazilian taxpayer identifier
type DocumentType string

const (
	// DocumentTypeCPF is the individual taxpayer registry (11 digits)
	DocumentTypeCPF DocumentType = "cpf"
	// DocumentTypeCNPJ is the company registry (14 digits)
	DocumentTypeCNPJ DocumentType = "cnpj"
)

// ParseDocumentType accepts "cpf" or "cnpj" in any case
func ParseDocumentType(value string) (DocumentType, error) {
	switch DocumentType(strings.ToLower(strings.TrimSpace(value))) {
	case DocumentTypeCPF:
		return DocumentTypeCPF, nil
	case DocumentTypeCNPJ:
		return DocumentTypeCNPJ, nil
	default:
		return "", fmt.Errorf("unknown document type: %s", value)
	}
}

// Length returns the digit count of a complete identifier, 0 if unknown
func (d DocumentType) Length() int {
	switch d {
	case DocumentTypeCPF:
		return 11
	case DocumentTypeCNPJ:
		return 14
	default:
		return 0
	}
}

func (d DocumentType) String() string {
	return string(d)
}
