package documents

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.domain.com.br", true},
		{"o'neil@example.org", true},
		{"user@example", false},
		{"user@", false},
		{"@example.com", false},
		{"user@-example.com", false},
		{"user@example-.com", false},
		{"user name@example.com", false},
		{"user@@example.com", false},
		{"user@" + strings.Repeat("a", 64) + ".com", false},
		{"user@" + strings.Repeat("a", 63) + ".com", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.input))
		})
	}
}

func TestValidateBirthDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"29/02/2000", true},
		{"29/02/2024", true},
		{"1/1/1990", true},
		{"31/12/3000", true},
		{"01/01/1000", true},
		{"29/02/1999", false},
		{"29/02/1900", false},
		{"12/05/0999", false},
		{"01/01/3001", false},
		{"31/04/1990", false},
		{"00/01/1990", false},
		{"10/13/1990", false},
		{"10/00/1990", false},
		{"1990-01-10", false},
		{"10/01/90", false},
		{"010/01/1990", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateBirthDate(tt.input))
		})
	}
}
