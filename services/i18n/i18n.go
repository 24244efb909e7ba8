package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"
)

//go:embed *.json
var fs embed.FS

// translations stores flattened keys: "pt-BR" -> "dates.months.1" -> "Janeiro"
var (
	translations = make(map[string]map[string]string)
	mutex        sync.RWMutex
	loadOnce     sync.Once
	loadErr      error
)

// DefaultLanguage is used when a key is missing in the requested language
const DefaultLanguage = "pt-BR"

// Load reads every embedded locale file into memory.
// It is safe to call more than once; later calls reload the tables.
func Load() error {
	mutex.Lock()
	defer mutex.Unlock()

	entries, err := fs.ReadDir(".")
	if err != nil {
		return fmt.Errorf("failed to read embedded locales: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		lang := strings.TrimSuffix(entry.Name(), ".json")
		content, err := fs.ReadFile(entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", entry.Name(), err)
		}

		var result map[string]interface{}
		if err := json.Unmarshal(content, &result); err != nil {
			return fmt.Errorf("failed to unmarshal locale %s: %w", entry.Name(), err)
		}

		flat := make(map[string]string)
		flatten("", result, flat)
		translations[lang] = flat
		log.Printf("[I18N] Loaded locale: %s (%d keys)", lang, len(flat))
	}

	return nil
}

// ensureLoaded loads the embedded locales the first time a lookup needs them
func ensureLoaded() {
	loadOnce.Do(func() {
		mutex.RLock()
		empty := len(translations) == 0
		mutex.RUnlock()
		if empty {
			loadErr = Load()
			if loadErr != nil {
				log.Printf("[WARNING] i18n: %v", loadErr)
			}
		}
	})
}

// flatten recursively flattens a nested map into dot-notation keys.
func flatten(prefix string, nested map[string]interface{}, result map[string]string) {
	for k, v := range nested {
		newKey := k
		if prefix != "" {
			newKey = prefix + "." + k
		}

		switch child := v.(type) {
		case map[string]interface{}:
			flatten(newKey, child, result)
		case string:
			result[newKey] = child
		default:
			result[newKey] = fmt.Sprintf("%v", child)
		}
	}
}

// T translates key using the language stored in ctx.
func T(ctx context.Context, key string, args ...map[string]interface{}) string {
	return Translate(GetLocale(ctx), key, args...)
}

// Translate retrieves a translation for a specific language code.
// Missing keys fall back to DefaultLanguage and then to the key itself.
func Translate(lang, key string, args ...map[string]interface{}) string {
	ensureLoaded()

	mutex.RLock()
	defer mutex.RUnlock()

	if trans, ok := translations[lang]; ok {
		if val, ok := trans[key]; ok {
			return format(val, args...)
		}
	}

	if lang != DefaultLanguage {
		if trans, ok := translations[DefaultLanguage]; ok {
			if val, ok := trans[key]; ok {
				return format(val, args...)
			}
		}
	}

	return key
}

// format replaces {var} placeholders with values from args if present.
func format(text string, args ...map[string]interface{}) string {
	if len(args) == 0 {
		return text
	}

	vars := args[0]
	for k, v := range vars {
		placeholder := "{" + k + "}"
		text = strings.ReplaceAll(text, placeholder, fmt.Sprintf("%v", v))
	}
	return text
}

// MonthName returns the full name of month (1-12), e.g. "Março"
func MonthName(lang string, month time.Month) string {
	return Translate(lang, "dates.months."+strconv.Itoa(int(month)))
}

// MonthNameShort returns the three letter month abbreviation
func MonthNameShort(lang string, month time.Month) string {
	return Translate(lang, "dates.months_short."+strconv.Itoa(int(month)))
}

// WeekdayName returns the full weekday name, e.g. "Sábado"
func WeekdayName(lang string, day time.Weekday) string {
	return Translate(lang, "dates.weekdays."+strconv.Itoa(int(day)))
}

// WeekdayNameShort returns the three letter weekday abbreviation
func WeekdayNameShort(lang string, day time.Weekday) string {
	return Translate(lang, "dates.weekdays_short."+strconv.Itoa(int(day)))
}

type contextKey string

// LocaleContextKey is the context key holding the caller's language code
const LocaleContextKey contextKey = "locale"

// WithLocale returns a copy of ctx carrying lang
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, LocaleContextKey, lang)
}

// GetLocale extracts the locale from the context, defaulting to DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if val := ctx.Value(LocaleContextKey); val != nil {
		if str, ok := val.(string); ok && str != "" {
			return str
		}
	}
	return DefaultLanguage
}
