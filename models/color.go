package models

// RGB holds the three 0-255 channels of a color
type RGB [3]int

// R returns the red channel
func (c RGB) R() int { return c[0] }

// G returns the green channel
func (c RGB) G() int { return c[1] }

// B returns the blue channel
func (c RGB) B() int { return c[2] }

// Palette maps shade indexes (50, 100 ... 900) to hex colors
type Palette map[int]string
