package services

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"wd_utils_go/models"
)

// Input masks applied while the user types. Each mask strips non-digits,
// caps the length and inserts separators one step at a time, so partial
// input yields a partial mask ("577566160" -> "577.566.160").

var (
	nonDigit = regexp.MustCompile(`\D`)

	threeThenOne  = regexp.MustCompile(`(\d{3})(\d)`)
	twoThenOne    = regexp.MustCompile(`(\d{2})(\d)`)
	fourThenOne   = regexp.MustCompile(`(\d{4})(\d)`)
	cpfSuffix     = regexp.MustCompile(`(\d{3})(\d{1,2})`)
	cnpjSuffix    = regexp.MustCompile(`(\d{4})(\d{1,2})`)
	trailingExtra = regexp.MustCompile(`(-\d{2})\d+?$`)
	cepPrefix     = regexp.MustCompile(`^(\d{5})(\d)`)
	hourMinute    = regexp.MustCompile(`(\d)(\d{2})$`)
	dateTimeClock = regexp.MustCompile(`(\d{4}) (\d{2})(\d)`)
	phoneLine     = regexp.MustCompile(`(\d{4})(\d+)`)
	phoneShift    = regexp.MustCompile(`-(\d)(\d{4})`)
)

// replaceFirst substitutes only the leftmost match of re, expanding ${n} groups in tmpl
func replaceFirst(re *regexp.Regexp, s, tmpl string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	var out []byte
	out = append(out, s[:loc[0]]...)
	out = re.ExpandString(out, tmpl, s, loc)
	out = append(out, s[loc[1]:]...)
	return string(out)
}

// OnlyDigits removes every non-digit character
func OnlyDigits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

func limit(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// FormatCPF masks a CPF as ###.###.###-##
func FormatCPF(value string) string {
	s := OnlyDigits(value)
	s = replaceFirst(threeThenOne, s, "${1}.${2}")
	s = replaceFirst(threeThenOne, s, "${1}.${2}")
	s = replaceFirst(cpfSuffix, s, "${1}-${2}")
	return replaceFirst(trailingExtra, s, "${1}")
}

// FormatCNPJ masks a CNPJ as ##.###.###/####-##
func FormatCNPJ(value string) string {
	s := OnlyDigits(value)
	s = replaceFirst(twoThenOne, s, "${1}.${2}")
	s = replaceFirst(threeThenOne, s, "${1}.${2}")
	s = replaceFirst(threeThenOne, s, "${1}/${2}")
	s = replaceFirst(cnpjSuffix, s, "${1}-${2}")
	return replaceFirst(trailingExtra, s, "${1}")
}

// FormatDocument masks value as a CPF or CNPJ depending on the document type
func FormatDocument(docType models.DocumentType, value string) string {
	if docType == models.DocumentTypeCNPJ {
		return FormatCNPJ(value)
	}
	return FormatCPF(value)
}

// FormatCEP masks a postal code as #####-###
func FormatCEP(value string) string {
	s := limit(OnlyDigits(value), 8)
	return replaceFirst(cepPrefix, s, "${1}-${2}")
}

// FormatDateMask masks typed digits as DD/MM/YYYY
func FormatDateMask(value string) string {
	if value == "" {
		return ""
	}
	s := limit(OnlyDigits(value), 8)
	s = replaceFirst(twoThenOne, s, "${1}/${2}")
	return replaceFirst(twoThenOne, s, "${1}/${2}")
}

// FormatDateValue renders t as DD/MM/YYYY, or "" for the zero time
func FormatDateValue(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return FormatCalendarDate(models.CalendarDateOf(t), models.DateFormatBR)
}

// FormatHourMinute masks typed digits as H:MM or HH:MM
func FormatHourMinute(value string) string {
	if value == "" {
		return ""
	}
	s := limit(OnlyDigits(value), 4)
	return replaceFirst(hourMinute, s, "${1}:${2}")
}

// FormatDateTimeMask masks typed digits as DD/MM/YYYY HH:MM
func FormatDateTimeMask(value string) string {
	if value == "" {
		return ""
	}
	s := limit(OnlyDigits(value), 12)
	s = replaceFirst(twoThenOne, s, "${1}/${2}")
	s = replaceFirst(twoThenOne, s, "${1}/${2}")
	s = replaceFirst(fourThenOne, s, "${1} ${2}")
	return replaceFirst(dateTimeClock, s, "${1} ${2}:${3}")
}

// FormatDateTimeValue renders t as DD/MM/YYYY HH:MM:SS, or "" for the zero time
func FormatDateTimeValue(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return FormatDateValue(t) + " " + DateToTime(t, false)
}

// FormatPhone masks a Brazilian phone number as (##) #####-#### or (##) ####-####.
// A leading trunk zero is dropped.
func FormatPhone(value string) string {
	s := strings.TrimPrefix(OnlyDigits(value), "0")
	s = limit(s, 11)
	s = replaceFirst(twoThenOne, s, "(${1}) ${2}")
	s = replaceFirst(phoneLine, s, "${1}-${2}")
	return replaceFirst(phoneShift, s, "${1}-${2}")
}

// FormatCurrency renders value in Brazilian reais, e.g. "R$ 1.165.800,00".
// Cents are rounded half away from zero.
func FormatCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ""
	}

	d := decimal.NewFromFloat(value).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	return sign + "R$ " + groupThousands(intPart, ".") + "," + frac
}

// groupThousands inserts sep every three digits from the right
func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
