package services

import "errors"

var (
	// ErrInvalidDate is returned when text or a time value does not denote a real calendar date
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidFormat is returned when an encoded token does not follow its grammar
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidRange is returned when an input range is degenerate
	ErrInvalidRange = errors.New("invalid range")

	ErrInvalidColor       = errors.New("invalid RGB color")
	ErrInvalidColorValues = errors.New("invalid RGB color values")
	ErrInvalidColorFormat = errors.New("invalid color format: expected HEX, RGB or RGBA")
)
