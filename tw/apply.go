package tw

// Target is the native style-mutation surface the applier writes to.
// Each method corresponds to one attribute family on the underlying
// toolkit object. Implementations live behind the widget boundary; the
// package only needs the mutations, never the widget itself.
type Target interface {
	// SetFlexLayout switches the widget to flex layout with the given
	// direction and alignment in a single native call.
	SetFlexLayout(flow FlexFlow, justify, items FlexAlign)

	SetWidth(c Coord)
	SetHeight(c Coord)

	SetPadTop(c Coord)
	SetPadBottom(c Coord)
	SetPadLeft(c Coord)
	SetPadRight(c Coord)
	SetPadRow(c Coord)
	SetPadColumn(c Coord)

	// SetBackground sets color and opacity together.
	SetBackground(c Color, opacity uint8)

	SetBorderWidth(c Coord)
	SetBorderColor(c Color)
	SetRadius(c Coord)

	SetTextColor(c Color)
	SetFont(f Font)
}

// Apply issues one native mutation per present field of the record and
// leaves everything else at the native default. It is meant to run at
// most once per widget per build; it does not merge with a previous
// application.
func Apply(t Target, s *Styles) {
	if s.Flex {
		t.SetFlexLayout(s.Flow, s.Justify, s.Items)
	}

	if s.Width != SizeContent {
		t.SetWidth(s.Width)
	}
	if s.Height != SizeContent {
		t.SetHeight(s.Height)
	}

	if s.PadTop != 0 {
		t.SetPadTop(s.PadTop)
	}
	if s.PadBottom != 0 {
		t.SetPadBottom(s.PadBottom)
	}
	if s.PadLeft != 0 {
		t.SetPadLeft(s.PadLeft)
	}
	if s.PadRight != 0 {
		t.SetPadRight(s.PadRight)
	}
	if s.PadRow != 0 {
		t.SetPadRow(s.PadRow)
	}
	if s.PadColumn != 0 {
		t.SetPadColumn(s.PadColumn)
	}

	if s.BgColor != nil {
		t.SetBackground(*s.BgColor, s.BgOpacity)
	}

	if s.BorderWidth != 0 {
		t.SetBorderWidth(s.BorderWidth)
	}
	if s.BorderColor != nil {
		t.SetBorderColor(*s.BorderColor)
	}
	if s.Radius != 0 {
		t.SetRadius(s.Radius)
	}

	if s.TextColor != nil {
		t.SetTextColor(*s.TextColor)
	}
	if s.Font != FontUnset {
		t.SetFont(s.Font)
	}
}
