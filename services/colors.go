package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"wd_utils_go/models"
)

const (
	paletteBaseIndex = 600
	paletteSteps     = 20

	// lightLuminance is the threshold above which dark text reads better
	lightLuminance = 0.64
	// minActiveContrast is the smallest luminance gap accepted for an active color
	minActiveContrast = 0.25
)

var (
	hex6Pattern     = regexp.MustCompile(`(?i)^#?([a-f\d]{2})([a-f\d]{2})([a-f\d]{2})$`)
	hexColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	rgbPattern      = regexp.MustCompile(`^rgb\((\d{1,3}),\s*(\d{1,3}),\s*(\d{1,3})\)$`)
	rgbaPattern     = regexp.MustCompile(`^rgba\((\d{1,3}),\s*(\d{1,3}),\s*(\d{1,3}),\s*(1|0?\.\d+)\)$`)
	signedInt       = regexp.MustCompile(`-?\d+`)
)

// roundHalfUp rounds .5 towards positive infinity, as browsers do
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// HexToRGB converts a six digit hex color ("#FF5733" or "FF5733").
// Anything else, including the three digit shorthand, yields black.
func HexToRGB(hex string) models.RGB {
	m := hex6Pattern.FindStringSubmatch(hex)
	if m == nil {
		return models.RGB{0, 0, 0}
	}
	var rgb models.RGB
	for i := 0; i < 3; i++ {
		v, _ := strconv.ParseUint(m[i+1], 16, 8)
		rgb[i] = int(v)
	}
	return rgb
}

// DecColorToHex renders a channel as two upper-case hex digits, clamped to 0-255
func DecColorToHex(component int) string {
	return fmt.Sprintf("%02X", clampInt(component, 0, 255))
}

// ShadeColorComponent scales a channel by (1 + percent/100) and clamps the result
func ShadeColorComponent(component int, percent float64) int {
	v := roundHalfUp(float64(component) * (1 + percent/100))
	return int(NumberClamp(v, 0, 255))
}

// ShadeHexColor lightens (positive percent) or darkens (negative percent) a hex color
func ShadeHexColor(color string, percent float64) string {
	rgb := HexToRGB(color)
	var b strings.Builder
	b.WriteByte('#')
	for _, c := range rgb {
		b.WriteString(DecColorToHex(ShadeColorComponent(c, percent)))
	}
	return b.String()
}

// GeneratePalette derives shades 50, 100 ... 900 from baseColor, which becomes shade 600
func GeneratePalette(baseColor string) models.Palette {
	palette := make(models.Palette, 10)
	for i := 0; i <= 9; i++ {
		index := i * 100
		if i == 0 {
			index = 50
		}
		if index == paletteBaseIndex {
			palette[index] = baseColor
			continue
		}
		percent := float64(paletteBaseIndex-index) / paletteSteps
		palette[index] = ShadeHexColor(baseColor, percent)
	}
	return palette
}

// ParseRGBToArray extracts the first three integers of an rgb()/rgba() string
func ParseRGBToArray(rgb string) (models.RGB, error) {
	found := signedInt.FindAllString(rgb, -1)
	if len(found) < 3 {
		return models.RGB{}, fmt.Errorf("%w: %s", ErrInvalidColor, rgb)
	}

	var out models.RGB
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(found[i])
		if err != nil || v < 0 || v > 255 {
			return models.RGB{}, fmt.Errorf("%w: %s", ErrInvalidColorValues, rgb)
		}
		out[i] = v
	}
	return out, nil
}

// IsHexColor accepts #RGB and #RRGGBB
func IsHexColor(color string) bool {
	return hexColorPattern.MatchString(color)
}

// IsRGBColor accepts rgb(r, g, b) with every channel in 0-255
func IsRGBColor(color string) bool {
	if !rgbPattern.MatchString(color) {
		return false
	}
	_, err := ParseRGBToArray(color)
	return err == nil
}

// IsRGBAColor accepts rgba(r, g, b, a) with channels in 0-255 and alpha in [0, 1]
func IsRGBAColor(color string) bool {
	if !rgbaPattern.MatchString(color) {
		return false
	}
	_, err := ParseRGBToArray(color)
	return err == nil
}

// GetHexColorLuminance parses a HEX, RGB or RGBA color and returns its luminance
func GetHexColorLuminance(color string) (float64, error) {
	var rgb models.RGB
	switch {
	case IsHexColor(color):
		rgb = HexToRGB(color)
	case IsRGBColor(color), IsRGBAColor(color):
		parsed, err := ParseRGBToArray(color)
		if err != nil {
			return 0, err
		}
		rgb = parsed
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidColorFormat, color)
	}
	return GetColorLuminance(rgb.R(), rgb.G(), rgb.B()), nil
}

// GetColorLuminance returns the perceived brightness in [0, 1] (ITU-R BT.601 weights)
func GetColorLuminance(r, g, b int) float64 {
	rr := float64(clampInt(r, 0, 255))
	gg := float64(clampInt(g, 0, 255))
	bb := float64(clampInt(b, 0, 255))
	return (0.299*rr + 0.587*gg + 0.114*bb) / 255
}

// IsLightColor reports whether color is bright enough to need dark text
func IsLightColor(color string) (bool, error) {
	l, err := GetHexColorLuminance(color)
	if err != nil {
		return false, err
	}
	return l > lightLuminance, nil
}

// GetContrastingTextColor returns black for light backgrounds and white otherwise
func GetContrastingTextColor(color string) (string, error) {
	light, err := IsLightColor(color)
	if err != nil {
		return "", err
	}
	if light {
		return "#000000", nil
	}
	return "#FFFFFF", nil
}

// GetBestActiveColor keeps active unless it is too close in luminance to the
// background, in which case the background's contrasting text color is used
func GetBestActiveColor(background, active string) (string, error) {
	la, err := GetHexColorLuminance(active)
	if err != nil {
		return "", err
	}
	lb, err := GetHexColorLuminance(background)
	if err != nil {
		return "", err
	}
	if math.Abs(la-lb) < minActiveContrast {
		return GetContrastingTextColor(background)
	}
	return active, nil
}

// GetColorOpacity appends a two digit hex alpha channel to color
func GetColorOpacity(color string, opacity float64) string {
	alpha := int(roundHalfUp(NumberClamp(opacity, 0, 1) * 255))
	return color + DecColorToHex(alpha)
}
