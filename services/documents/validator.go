package documents

import (
	"fmt"
	"sync"

	"wd_utils_go/models"
)

// Validator checks a raw, possibly masked, identifier of one document type
type Validator interface {
	// Type returns the document type handled by this validator
	Type() models.DocumentType

	// Validate reports whether raw carries a well-formed identifier with correct check digits.
	// It never panics and never fails: invalid input is simply false.
	Validate(raw string) bool
}

var (
	registry = map[models.DocumentType]Validator{
		models.DocumentTypeCPF:  CPFValidator{},
		models.DocumentTypeCNPJ: CNPJValidator{},
	}
	registryMu sync.RWMutex
)

// GetValidator returns the validator registered for docType
func GetValidator(docType models.DocumentType) (Validator, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	v, ok := registry[docType]
	if !ok {
		return nil, fmt.Errorf("document validator not implemented for type: %s", docType)
	}
	return v, nil
}

// RegisterValidator installs v for docType, replacing any previous one.
// A nil validator removes the registration.
func RegisterValidator(docType models.DocumentType, v Validator) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if v == nil {
		delete(registry, docType)
		return
	}
	registry[docType] = v
}

// Validate looks up the validator for docType and runs it.
// Unknown document types are never valid.
func Validate(docType models.DocumentType, raw string) bool {
	v, err := GetValidator(docType)
	if err != nil {
		return false
	}
	return v.Validate(raw)
}

// Detect guesses the document type from the digit count of raw
func Detect(raw string) (models.DocumentType, bool) {
	switch len(Digits(raw)) {
	case models.DocumentTypeCPF.Length():
		return models.DocumentTypeCPF, true
	case models.DocumentTypeCNPJ.Length():
		return models.DocumentTypeCNPJ, true
	default:
		return "", false
	}
}
