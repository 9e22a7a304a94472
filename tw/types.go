package tw

import "fmt"

// Coord is a native length value. Plain values are absolute units.
// Values with the marker bit set encode the special states: a
// percentage of the parent (Pct) or the content-sized sentinel
// (SizeContent).
type Coord int32

const (
	coordSpec Coord = 1 << 13

	// SizeContent sizes the widget to its content. It is the parser's
	// default for width and height; the applier treats it as "leave the
	// native default alone".
	SizeContent Coord = coordSpec | 2001

	// RadiusCircle is the reserved radius for fully round corners.
	RadiusCircle Coord = 0x7FFF
)

// Pct encodes a percentage coordinate. n is clamped to 0..1000.
func Pct(n int) Coord {
	if n < 0 {
		n = 0
	}
	if n > 1000 {
		n = 1000
	}
	return coordSpec | Coord(n)
}

// IsPct reports whether the coordinate is percentage-encoded.
func (c Coord) IsPct() bool {
	return c&coordSpec != 0 && c != SizeContent
}

// PctValue returns the percentage for a percentage-encoded coordinate.
func (c Coord) PctValue() int {
	return int(c &^ coordSpec)
}

func (c Coord) String() string {
	switch {
	case c == SizeContent:
		return "content"
	case c.IsPct():
		return fmt.Sprintf("%d%%", c.PctValue())
	default:
		return fmt.Sprintf("%d", int32(c))
	}
}

// FlexFlow is the flex direction, with wrap variants.
type FlexFlow uint8

const (
	FlowRow FlexFlow = iota
	FlowColumn
	FlowRowWrap
	FlowColumnWrap
)

func (f FlexFlow) String() string {
	switch f {
	case FlowRow:
		return "row"
	case FlowColumn:
		return "column"
	case FlowRowWrap:
		return "row-wrap"
	case FlowColumnWrap:
		return "column-wrap"
	}
	return "unknown"
}

// FlexAlign is a main- or cross-axis alignment mode.
type FlexAlign uint8

const (
	AlignStart FlexAlign = iota
	AlignEnd
	AlignCenter
	AlignSpaceBetween
	AlignSpaceAround
	AlignSpaceEvenly
)

func (a FlexAlign) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	case AlignSpaceBetween:
		return "between"
	case AlignSpaceAround:
		return "around"
	case AlignSpaceEvenly:
		return "evenly"
	}
	return "unknown"
}

// Font is a fixed ladder of text sizes. FontUnset leaves the native
// default font in place.
type Font uint8

const (
	FontUnset Font = iota
	FontXS
	FontSM
	FontBase
	FontLG
	FontXL
	Font2XL
	Font3XL
	Font4XL
)

// Size returns the font's nominal pixel size.
func (f Font) Size() int {
	switch f {
	case FontXS:
		return 12
	case FontSM:
		return 14
	case FontBase:
		return 16
	case FontLG:
		return 18
	case FontXL:
		return 20
	case Font2XL:
		return 24
	case Font3XL:
		return 28
	case Font4XL:
		return 32
	}
	return 0
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// OpacityOpaque is the default background opacity.
const OpacityOpaque uint8 = 255

// Styles is the structured result of parsing a utility-class string.
// Optional color and font fields use pointers as presence flags;
// absence means the native default is left untouched. A Styles value
// is immutable once parsed and is applied at most once per widget.
type Styles struct {
	// Flex layout. Flow, Justify and Items only take effect when Flex
	// is enabled.
	Flex    bool
	Flow    FlexFlow
	Justify FlexAlign
	Items   FlexAlign

	// Sizing. SizeContent means "untouched".
	Width  Coord
	Height Coord

	// Spacing. Zero means "untouched".
	PadTop    Coord
	PadBottom Coord
	PadLeft   Coord
	PadRight  Coord
	PadRow    Coord
	PadColumn Coord

	// Background. Opacity is only applied together with the color.
	BgColor   *Color
	BgOpacity uint8

	// Border. Zero width and radius mean "untouched".
	BorderWidth Coord
	BorderColor *Color
	Radius      Coord

	// Text.
	TextColor *Color
	Font      Font
}

// defaultStyles is the record before any token is processed.
func defaultStyles() Styles {
	return Styles{
		Width:     SizeContent,
		Height:    SizeContent,
		BgOpacity: OpacityOpaque,
		Flow:      FlowRow,
		Justify:   AlignStart,
		Items:     AlignStart,
	}
}
