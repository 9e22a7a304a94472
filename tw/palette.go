package tw

// Builtin named palette: white, black, the brand 500s, and the gray
// darks used for surfaces. Names not present here resolve to black.
var builtinPalette = map[string]Color{
	"white":      {255, 255, 255},
	"black":      {0, 0, 0},
	"red-500":    {239, 68, 68},
	"orange-500": {249, 115, 22},
	"yellow-500": {234, 179, 8},
	"green-500":  {34, 197, 94},
	"blue-500":   {59, 130, 246},
	"purple-500": {168, 85, 247},
	"pink-500":   {236, 72, 153},
	"gray-500":   {107, 114, 128},
	"gray-800":   {31, 41, 55},
	"gray-900":   {17, 24, 39},
}

// registeredPalette holds consumer overrides. If nil, only the builtin
// palette is consulted.
var registeredPalette map[string]Color

// SetPalette registers named-color overrides on top of the builtin
// palette. Call at startup, before any parsing occurs; typically fed
// from the [theme] table of the runtime config.
func SetPalette(overrides map[string]Color) {
	registeredPalette = overrides
}

// NamedColor resolves a palette name. Unresolved names fall back to
// black; that fallback is part of the grammar, not an error.
func NamedColor(name string) Color {
	if registeredPalette != nil {
		if c, ok := registeredPalette[name]; ok {
			return c
		}
	}
	if c, ok := builtinPalette[name]; ok {
		return c
	}
	return Color{}
}

// ParseHexColor parses a 3- or 6-hex-digit color, with or without a
// leading '#'. Three-digit shorthand expands each digit by 17
// (#abc -> #aabbcc). Anything else yields black.
func ParseHexColor(s string) Color {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 6:
		r, ok1 := hexByte(s[0], s[1])
		g, ok2 := hexByte(s[2], s[3])
		b, ok3 := hexByte(s[4], s[5])
		if ok1 && ok2 && ok3 {
			return Color{r, g, b}
		}
	case 3:
		r, ok1 := hexNibble(s[0])
		g, ok2 := hexNibble(s[1])
		b, ok3 := hexNibble(s[2])
		if ok1 && ok2 && ok3 {
			return Color{r * 17, g * 17, b * 17}
		}
	}
	return Color{}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func hexByte(hi, lo byte) (uint8, bool) {
	h, ok1 := hexNibble(hi)
	l, ok2 := hexNibble(lo)
	return h<<4 | l, ok1 && ok2
}
