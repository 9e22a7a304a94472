package tw

import (
	"fmt"
	"testing"
)

// recorder captures native mutations in call order.
type recorder struct {
	calls []string
}

func (r *recorder) hit(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) SetFlexLayout(flow FlexFlow, justify, items FlexAlign) {
	r.hit("flex(%s,%s,%s)", flow, justify, items)
}
func (r *recorder) SetWidth(c Coord)                 { r.hit("width(%s)", c) }
func (r *recorder) SetHeight(c Coord)                { r.hit("height(%s)", c) }
func (r *recorder) SetPadTop(c Coord)                { r.hit("pad-top(%s)", c) }
func (r *recorder) SetPadBottom(c Coord)             { r.hit("pad-bottom(%s)", c) }
func (r *recorder) SetPadLeft(c Coord)               { r.hit("pad-left(%s)", c) }
func (r *recorder) SetPadRight(c Coord)              { r.hit("pad-right(%s)", c) }
func (r *recorder) SetPadRow(c Coord)                { r.hit("pad-row(%s)", c) }
func (r *recorder) SetPadColumn(c Coord)             { r.hit("pad-column(%s)", c) }
func (r *recorder) SetBackground(c Color, opa uint8) { r.hit("bg(%s,%d)", c, opa) }
func (r *recorder) SetBorderWidth(c Coord)           { r.hit("border-width(%s)", c) }
func (r *recorder) SetBorderColor(c Color)           { r.hit("border-color(%s)", c) }
func (r *recorder) SetRadius(c Coord)                { r.hit("radius(%s)", c) }
func (r *recorder) SetTextColor(c Color)             { r.hit("text-color(%s)", c) }
func (r *recorder) SetFont(f Font)                   { r.hit("font(%d)", f.Size()) }

func TestApplyUntouchedDefaults(t *testing.T) {
	var r recorder
	s := Parse("")
	Apply(&r, &s)

	if len(r.calls) != 0 {
		t.Errorf("expected no mutations for empty record, got %v", r.calls)
	}
}

func TestApplyIssuesOneCallPerPresentField(t *testing.T) {
	var r recorder
	s := Parse("flex flex-col items-center w-10 p-1 bg-gray-800 border-2 rounded text-white text-sm")
	Apply(&r, &s)

	want := []string{
		"flex(column,start,center)",
		"width(40)",
		"pad-top(4)",
		"pad-bottom(4)",
		"pad-left(4)",
		"pad-right(4)",
		"bg(#1f2937,255)",
		"border-width(2)",
		"radius(4)",
		"text-color(#ffffff)",
		"font(14)",
	}
	if len(r.calls) != len(want) {
		t.Fatalf("expected %d mutations, got %d: %v", len(want), len(r.calls), r.calls)
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Errorf("call %d: expected %q, got %q", i, want[i], r.calls[i])
		}
	}
}

func TestApplyFlexOnlyWhenEnabled(t *testing.T) {
	var r recorder
	s := Parse("justify-center items-center")
	Apply(&r, &s)

	// Alignment without flex never reaches the widget.
	if len(r.calls) != 0 {
		t.Errorf("expected no mutations, got %v", r.calls)
	}
}

func TestApplyBackgroundCarriesOpacity(t *testing.T) {
	var r recorder
	s := Parse("bg-black")
	Apply(&r, &s)

	if len(r.calls) != 1 || r.calls[0] != "bg(#000000,255)" {
		t.Errorf("expected single opaque background call, got %v", r.calls)
	}
}
