package i18n

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	nested := map[string]interface{}{
		"dates": map[string]interface{}{
			"months": map[string]interface{}{
				"1": "Janeiro",
			},
		},
		"count": 123,
	}

	flat := make(map[string]string)
	flatten("", nested, flat)

	assert.Equal(t, "Janeiro", flat["dates.months.1"])
	assert.Equal(t, "123", flat["count"])
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		args     map[string]interface{}
		expected string
	}{
		{
			name:     "No placeholders",
			text:     "CPF válido",
			args:     nil,
			expected: "CPF válido",
		},
		{
			name:     "Single placeholder",
			text:     "{type} inválido",
			args:     map[string]interface{}{"type": "CNPJ"},
			expected: "CNPJ inválido",
		},
		{
			name:     "Missing argument",
			text:     "{type} inválido",
			args:     map[string]interface{}{"other": "val"},
			expected: "{type} inválido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result string
			if tt.args == nil {
				result = format(tt.text)
			} else {
				result = format(tt.text, tt.args)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetLocale(t *testing.T) {
	t.Run("Default locale", func(t *testing.T) {
		assert.Equal(t, DefaultLanguage, GetLocale(context.Background()))
	})

	t.Run("Locale from context", func(t *testing.T) {
		ctx := WithLocale(context.Background(), "en")
		assert.Equal(t, "en", GetLocale(ctx))
	})
}

func TestTranslateLogic(t *testing.T) {
	mutex.Lock()
	oldTrans := translations
	translations = map[string]map[string]string{
		"pt-BR": {
			"test.hello":   "Olá",
			"test.welcome": "Bem-vindo {name}",
		},
		"en": {
			"test.hello": "Hello",
		},
	}
	mutex.Unlock()

	defer func() {
		mutex.Lock()
		translations = oldTrans
		mutex.Unlock()
	}()

	t.Run("Direct lookup", func(t *testing.T) {
		assert.Equal(t, "Hello", Translate("en", "test.hello"))
		assert.Equal(t, "Olá", Translate("pt-BR", "test.hello"))
	})

	t.Run("Fallback to default", func(t *testing.T) {
		assert.Equal(t, "Bem-vindo Ana", Translate("en", "test.welcome", map[string]interface{}{"name": "Ana"}))
	})

	t.Run("Fallback to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", Translate("en", "missing.key"))
	})

	t.Run("T uses context locale", func(t *testing.T) {
		ctx := WithLocale(context.Background(), "en")
		assert.Equal(t, "Hello", T(ctx, "test.hello"))
	})
}

func TestLoadExecution(t *testing.T) {
	err := Load()
	require.NoError(t, err)

	mutex.RLock()
	defer mutex.RUnlock()
	assert.NotEmpty(t, translations["pt-BR"])
	assert.NotEmpty(t, translations["en"])
}

func TestDateNames(t *testing.T) {
	require.NoError(t, Load())

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"month pt", MonthName("pt-BR", time.March), "Março"},
		{"month en", MonthName("en", time.December), "December"},
		{"month short pt", MonthNameShort("pt-BR", time.February), "Fev"},
		{"weekday pt", WeekdayName("pt-BR", time.Saturday), "Sábado"},
		{"weekday short pt", WeekdayNameShort("pt-BR", time.Sunday), "Dom"},
		{"weekday en", WeekdayName("en", time.Wednesday), "Wednesday"},
		{"unknown language falls back", MonthName("es", time.January), "Janeiro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
