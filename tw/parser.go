package tw

import (
	"strconv"
	"strings"
)

// Parse turns a utility-class string into a Styles record.
//
// Tokens are split on whitespace and processed left to right; a later
// token that sets the same field overwrites an earlier one. Unrecognized
// tokens are silently ignored, matching the lenient policy of the class
// language. Parse never fails.
//
// Bare numeric suffixes map to native units on a 4x scale ("w-10" is a
// width of 40). Bracketed arbitrary values accept "px" lengths used
// verbatim, "rem" lengths multiplied by 16, percentages, and hex colors.
func Parse(classStr string) Styles {
	s := defaultStyles()
	for _, tok := range strings.Fields(classStr) {
		parseToken(tok, &s)
	}
	return s
}

func parseToken(tok string, s *Styles) {
	switch {
	// Flex layout
	case tok == "flex":
		s.Flex = true
	case tok == "flex-row":
		s.Flex = true
		s.Flow = FlowRow
	case tok == "flex-col":
		s.Flex = true
		s.Flow = FlowColumn
	case tok == "flex-wrap":
		// Upgrades the current direction only, so ordering relative to
		// flex-row/flex-col matters.
		switch s.Flow {
		case FlowRow:
			s.Flow = FlowRowWrap
		case FlowColumn:
			s.Flow = FlowColumnWrap
		}

	// Justify content
	case tok == "justify-start":
		s.Justify = AlignStart
	case tok == "justify-end":
		s.Justify = AlignEnd
	case tok == "justify-center":
		s.Justify = AlignCenter
	case tok == "justify-between":
		s.Justify = AlignSpaceBetween
	case tok == "justify-around":
		s.Justify = AlignSpaceAround
	case tok == "justify-evenly":
		s.Justify = AlignSpaceEvenly

	// Align items
	case tok == "items-start":
		s.Items = AlignStart
	case tok == "items-end":
		s.Items = AlignEnd
	case tok == "items-center":
		s.Items = AlignCenter

	// Sizing
	case tok == "size-full":
		s.Width = Pct(100)
		s.Height = Pct(100)
	case tok == "w-full":
		s.Width = Pct(100)
	case tok == "h-full":
		s.Height = Pct(100)
	case strings.HasPrefix(tok, "w-["):
		if c, ok := arbitraryLength(tok[2:]); ok {
			s.Width = c
		}
	case strings.HasPrefix(tok, "h-["):
		if c, ok := arbitraryLength(tok[2:]); ok {
			s.Height = c
		}
	case strings.HasPrefix(tok, "size-"):
		rest := tok[len("size-"):]
		if strings.HasPrefix(rest, "[") {
			if c, ok := arbitraryLength(rest); ok {
				s.Width = c
				s.Height = c
			}
		} else if n, ok := scaled(rest); ok {
			s.Width = n
			s.Height = n
		}
	case strings.HasPrefix(tok, "w-"):
		if n, ok := scaled(tok[2:]); ok {
			s.Width = n
		}
	case strings.HasPrefix(tok, "h-"):
		if n, ok := scaled(tok[2:]); ok {
			s.Height = n
		}

	// Gap (row and column together)
	case strings.HasPrefix(tok, "gap-"):
		if c, ok := spacing(tok[len("gap-"):]); ok {
			s.PadRow = c
			s.PadColumn = c
		}

	// Padding
	case strings.HasPrefix(tok, "px-"):
		if c, ok := spacing(tok[3:]); ok {
			s.PadLeft = c
			s.PadRight = c
		}
	case strings.HasPrefix(tok, "py-"):
		if c, ok := spacing(tok[3:]); ok {
			s.PadTop = c
			s.PadBottom = c
		}
	case strings.HasPrefix(tok, "pt-"):
		if c, ok := spacing(tok[3:]); ok {
			s.PadTop = c
		}
	case strings.HasPrefix(tok, "pb-"):
		if c, ok := spacing(tok[3:]); ok {
			s.PadBottom = c
		}
	case strings.HasPrefix(tok, "pl-"):
		if c, ok := spacing(tok[3:]); ok {
			s.PadLeft = c
		}
	case strings.HasPrefix(tok, "pr-"):
		if c, ok := spacing(tok[3:]); ok {
			s.PadRight = c
		}
	case strings.HasPrefix(tok, "p-"):
		if c, ok := spacing(tok[2:]); ok {
			s.PadTop = c
			s.PadBottom = c
			s.PadLeft = c
			s.PadRight = c
		}

	// Background color
	case strings.HasPrefix(tok, "bg-["):
		if v, ok := arbitrary(tok[3:]); ok {
			c := ParseHexColor(v)
			s.BgColor = &c
		}
	case strings.HasPrefix(tok, "bg-"):
		c := NamedColor(tok[3:])
		s.BgColor = &c

	// Text color and size
	case strings.HasPrefix(tok, "text-["):
		if v, ok := arbitrary(tok[5:]); ok && strings.HasPrefix(v, "#") {
			c := ParseHexColor(v)
			s.TextColor = &c
		}
	case tok == "text-white":
		c := NamedColor("white")
		s.TextColor = &c
	case tok == "text-black":
		c := NamedColor("black")
		s.TextColor = &c
	case tok == "text-xs":
		s.Font = FontXS
	case tok == "text-sm":
		s.Font = FontSM
	case tok == "text-base":
		s.Font = FontBase
	case tok == "text-lg":
		s.Font = FontLG
	case tok == "text-xl":
		s.Font = FontXL
	case tok == "text-2xl":
		s.Font = Font2XL
	case tok == "text-3xl":
		s.Font = Font3XL
	case tok == "text-4xl":
		s.Font = Font4XL

	// Border
	case tok == "border":
		s.BorderWidth = 1
	case strings.HasPrefix(tok, "border-"):
		rest := tok[len("border-"):]
		switch {
		case rest == "":
		case rest[0] >= '0' && rest[0] <= '9':
			if n, err := strconv.Atoi(rest); err == nil {
				s.BorderWidth = Coord(n)
			}
		case rest[0] == '[':
			if v, ok := arbitrary(rest); ok && strings.HasPrefix(v, "#") {
				c := ParseHexColor(v)
				s.BorderColor = &c
			}
		default:
			c := NamedColor(rest)
			s.BorderColor = &c
		}

	// Border radius
	case tok == "rounded-none":
		s.Radius = 0
	case tok == "rounded-sm":
		s.Radius = 2
	case tok == "rounded":
		s.Radius = 4
	case tok == "rounded-md":
		s.Radius = 6
	case tok == "rounded-lg":
		s.Radius = 8
	case tok == "rounded-xl":
		s.Radius = 12
	case tok == "rounded-2xl":
		s.Radius = 16
	case tok == "rounded-3xl":
		s.Radius = 24
	case tok == "rounded-full":
		s.Radius = RadiusCircle
	}
	// Anything else: unrecognized, ignored.
}

// arbitrary extracts the literal from a bracketed value like "[#505050]".
func arbitrary(v string) (string, bool) {
	if !strings.HasPrefix(v, "[") {
		return "", false
	}
	end := strings.IndexByte(v, ']')
	if end < 0 {
		return "", false
	}
	return v[1:end], true
}

// arbitraryLength extracts and parses a bracketed length literal.
func arbitraryLength(v string) (Coord, bool) {
	lit, ok := arbitrary(v)
	if !ok {
		return 0, false
	}
	return parseLength(lit)
}

// parseLength parses a length literal: "200px" verbatim, "10rem" as
// 160, "50%" as a percentage coordinate, and a bare integer verbatim.
func parseLength(s string) (Coord, bool) {
	switch {
	case strings.HasSuffix(s, "px"):
		if n, err := strconv.Atoi(strings.TrimSuffix(s, "px")); err == nil {
			return Coord(n), true
		}
	case strings.HasSuffix(s, "rem"):
		if n, err := strconv.Atoi(strings.TrimSuffix(s, "rem")); err == nil {
			return Coord(n * 16), true
		}
	case strings.HasSuffix(s, "%"):
		if n, err := strconv.Atoi(strings.TrimSuffix(s, "%")); err == nil {
			return Pct(n), true
		}
	default:
		if n, err := strconv.Atoi(s); err == nil {
			return Coord(n), true
		}
	}
	return 0, false
}

// scaled parses a bare numeric suffix on the 4x spacing scale.
func scaled(s string) (Coord, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return Coord(n * 4), true
}

// spacing parses a spacing suffix: either a bare number on the 4x scale
// or a bracketed arbitrary length.
func spacing(s string) (Coord, bool) {
	if strings.HasPrefix(s, "[") {
		return arbitraryLength(s)
	}
	return scaled(s)
}
