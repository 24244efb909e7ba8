package documents

// Digits returns the ASCII digits of raw as integers, dropping every other
// character ("123.456.789-09" -> [1 2 3 4 5 6 7 8 9 0 9])
func Digits(raw string) []int {
	out := make([]int, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			out = append(out, int(c-'0'))
		}
	}
	return out
}

// allSame reports whether every digit equals the first one
func allSame(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// weightFunc returns the multiplier for the digit at index i of a body of length n
type weightFunc func(i, n int) int

// descendingWeight gives n+1, n, ..., 2 from left to right
func descendingWeight(i, n int) int {
	return n + 1 - i
}

// cyclicWeight gives 2, 3, ..., 9, 2, 3, ... counting from the rightmost digit
func cyclicWeight(i, n int) int {
	return 2 + (n-1-i)%8
}

// checkDigit is the shared modulo-11 rule: r = sum(d*w) % 11, digit is 0 when r < 2, else 11-r
func checkDigit(body []int, weight weightFunc) int {
	sum := 0
	n := len(body)
	for i, d := range body {
		sum += d * weight(i, n)
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

// appendCheckDigits extends body with two check digits computed in sequence
func appendCheckDigits(body []int, weight weightFunc) []int {
	out := make([]int, len(body), len(body)+2)
	copy(out, body)
	out = append(out, checkDigit(out, weight))
	out = append(out, checkDigit(out, weight))
	return out
}

// validate runs the common pipeline: strip, length, degenerate sequence, check digits
func validate(raw string, length int, weight weightFunc) bool {
	digits := Digits(raw)
	if len(digits) != length || allSame(digits) {
		return false
	}
	full := appendCheckDigits(digits[:length-2], weight)
	return full[length-2] == digits[length-2] && full[length-1] == digits[length-1]
}

func digitsString(digits []int) string {
	b := make([]byte, len(digits))
	for i, d := range digits {
		b[i] = byte('0' + d)
	}
	return string(b)
}
