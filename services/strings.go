package services

import (
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	upperPT = cases.Upper(language.BrazilianPortuguese)
	lowerPT = cases.Lower(language.BrazilianPortuguese)

	// letters that are not decomposed by NFD but still have a plain ASCII form
	ligatures = strings.NewReplacer("Æ", "A", "æ", "a", "Ø", "O", "ø", "o", "_", "-")

	wordStart    = regexp.MustCompile(`(^|[ -.])[a-záàâãéèêíïóôõöúçñ]`)
	whitespace   = regexp.MustCompile(`\s`)
	repeatedDash = regexp.MustCompile(`-+`)

	stripPolicy = bluemonday.StrictPolicy()
)

// nameParticles are the Portuguese connectives dropped from short names
var nameParticles = map[string]bool{
	"de": true, "da": true, "do": true, "das": true, "dos": true, "e": true,
}

// AccentsRemove strips diacritics ("Câmara" -> "Camara") and turns underscores into dashes
func AccentsRemove(value string) string {
	if value == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, value)
	if err != nil {
		out = value
	}
	return ligatures.Replace(out)
}

// SpecialCharactersConvert decodes HTML entities back to the characters they name
func SpecialCharactersConvert(value string) string {
	return html.UnescapeString(value)
}

// StripHTML removes every tag from value and returns the decoded text content
func StripHTML(value string) string {
	return SpecialCharactersConvert(stripPolicy.Sanitize(value))
}

// UCFirst upper-cases the first letter and lower-cases the rest
func UCFirst(word string) string {
	if word == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(word)
	return upperPT.String(string(r)) + lowerPT.String(word[size:])
}

// UCWords lower-cases text and capitalizes every letter that follows the
// start of the string, a space, a hyphen or a dot. Spacing is preserved.
func UCWords(text string) string {
	return wordStart.ReplaceAllStringFunc(lowerPT.String(text), upperPT.String)
}

// GetInitials returns the upper-cased initials of the first and last names
func GetInitials(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(parts[0])
	initials := string(first)
	if len(parts) > 1 {
		last, _ := utf8.DecodeRuneInString(parts[len(parts)-1])
		initials += string(last)
	}
	return upperPT.String(initials)
}

// ExtractFormattedName shortens a full name for display.
// Connectives (de, da, do, das, dos, e) are dropped, then
// "maria do canto" -> "Maria Canto" and "john doe smith" -> "John D. Smith".
func ExtractFormattedName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}

	parts := make([]string, 0, len(fields))
	parts = append(parts, fields[0])
	for _, p := range fields[1:] {
		if !nameParticles[strings.ToLower(p)] {
			parts = append(parts, p)
		}
	}

	first := UCFirst(parts[0])
	switch len(parts) {
	case 1:
		return first
	case 2:
		return first + " " + UCFirst(parts[1])
	default:
		initial, _ := utf8.DecodeRuneInString(parts[1])
		return first + " " + upperPT.String(string(initial)) + ". " + UCFirst(parts[len(parts)-1])
	}
}

// ConvertString normalizes text for loose comparison: lower case, no
// whitespace, no accents, and runs of dashes collapsed
func ConvertString(value string) string {
	s := whitespace.ReplaceAllString(lowerPT.String(value), "")
	return repeatedDash.ReplaceAllString(AccentsRemove(s), "-")
}

// IsContentMatchingSearch reports whether search occurs in content, ignoring case, accents and spaces
func IsContentMatchingSearch(content, search string) bool {
	return strings.Contains(ConvertString(content), ConvertString(search))
}

// CompareStrings reports whether a and b are equal after ConvertString
func CompareStrings(a, b string) bool {
	return ConvertString(a) == ConvertString(b)
}

// PluralizeWord picks plural when count is greater than one
func PluralizeWord(singular, plural string, count int) string {
	if count > 1 {
		return plural
	}
	return singular
}

// ReplaceBetween replaces the characters in [start, end) with value.
// Indexes count runes; they are clamped to the text and swapped when reversed.
func ReplaceBetween(text string, start, end int, value string) string {
	rs := []rune(text)
	start = clampInt(start, 0, len(rs))
	end = clampInt(end, 0, len(rs))
	if start > end {
		start, end = end, start
	}
	return string(rs[:start]) + value + string(rs[end:])
}

var (
	webLink = regexp.MustCompile(`(?i)^(?:(?:https?|ftp)://)(?:\S+(?::\S*)?@)?(` +
		// public dotted IPv4, excluding network, broadcast and reserved ranges
		`(?:[1-9]\d?|1\d\d|2[01]\d|22[0-3])(?:\.(?:1?\d{1,2}|2[0-4]\d|25[0-5])){2}(?:\.(?:[1-9]\d?|1\d\d|2[0-4]\d|25[0-4]))` +
		`|` +
		// host, domain and TLD
		`(?:(?:[a-z\x{00a1}-\x{ffff}0-9]-*)*[a-z\x{00a1}-\x{ffff}0-9]+)` +
		`(?:\.(?:[a-z\x{00a1}-\x{ffff}0-9]-*)*[a-z\x{00a1}-\x{ffff}0-9]+)*` +
		`(?:\.(?:[a-z\x{00a1}-\x{ffff}]{2,}))\.?` +
		`)(?::\d{2,5})?(?:[/?#]\S*)?$`)

	privateHost = regexp.MustCompile(`^(?:(?:10|127)(?:\.\d{1,3}){3}|(?:169\.254|192\.168)(?:\.\d{1,3}){2}|172\.(?:1[6-9]|2\d|3[0-1])(?:\.\d{1,3}){2})`)
)

// IsStringWebLink reports whether text is an absolute http, https or ftp URL
// pointing at a public host name or IPv4 address
func IsStringWebLink(text string) bool {
	m := webLink.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	return !privateHost.MatchString(m[1])
}

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugSpaces  = regexp.MustCompile(`\s+`)
)

// Slugify builds a URL-friendly identifier: accents removed, lower case,
// spaces turned into hyphens, everything else outside [a-z0-9-] dropped.
// A positive maxLen caps the result.
func Slugify(text string, maxLen int) string {
	slug := strings.ToLower(AccentsRemove(text))
	slug = slugSpaces.ReplaceAllString(slug, "-")
	slug = slugInvalid.ReplaceAllString(slug, "")
	slug = repeatedDash.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if maxLen > 0 && len(slug) > maxLen {
		slug = strings.TrimRight(slug[:maxLen], "-")
	}
	return slug
}
