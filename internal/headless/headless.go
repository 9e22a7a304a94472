// Package headless is an in-memory widget backend. It records every
// widget, style mutation and event subscription instead of drawing,
// which makes it the reference target for tests, tooling and examples
// that need the full build pipeline without a display.
package headless

import (
	"fmt"

	"github.com/loomui/loom"
	"github.com/loomui/loom/tw"
)

// Subscription is one recorded event subscription.
type Subscription struct {
	Kind loom.EventKind
	ID   loom.HandlerID
}

// Widget is an in-memory widget. Style mutations append to Calls in
// the order they were issued, one entry per native call.
type Widget struct {
	Kind     loom.NodeKind
	Parent   *Widget
	Children []*Widget

	Text            string
	Min, Max, Value int
	Calls           []string
	Subs            []Subscription
}

var _ loom.Widget = (*Widget)(nil)

func (w *Widget) record(format string, args ...any) {
	w.Calls = append(w.Calls, fmt.Sprintf(format, args...))
}

func (w *Widget) SetFlexLayout(flow tw.FlexFlow, justify, items tw.FlexAlign) {
	w.record("flex %s justify=%s items=%s", flow, justify, items)
}

func (w *Widget) SetWidth(c tw.Coord)  { w.record("width=%s", c) }
func (w *Widget) SetHeight(c tw.Coord) { w.record("height=%s", c) }

func (w *Widget) SetPadTop(c tw.Coord)    { w.record("pad-top=%s", c) }
func (w *Widget) SetPadBottom(c tw.Coord) { w.record("pad-bottom=%s", c) }
func (w *Widget) SetPadLeft(c tw.Coord)   { w.record("pad-left=%s", c) }
func (w *Widget) SetPadRight(c tw.Coord)  { w.record("pad-right=%s", c) }
func (w *Widget) SetPadRow(c tw.Coord)    { w.record("pad-row=%s", c) }
func (w *Widget) SetPadColumn(c tw.Coord) { w.record("pad-column=%s", c) }

func (w *Widget) SetBackground(c tw.Color, opacity uint8) {
	w.record("bg=%s opa=%d", c, opacity)
}

func (w *Widget) SetBorderWidth(c tw.Coord) { w.record("border-width=%s", c) }
func (w *Widget) SetBorderColor(c tw.Color) { w.record("border-color=%s", c) }
func (w *Widget) SetRadius(c tw.Coord)      { w.record("radius=%s", c) }

func (w *Widget) SetTextColor(c tw.Color) { w.record("text-color=%s", c) }
func (w *Widget) SetFont(f tw.Font)       { w.record("font=%d", f.Size()) }

func (w *Widget) SetText(text string) {
	w.Text = text
	w.record("text=%q", text)
}

func (w *Widget) SetRange(min, max int) {
	w.Min, w.Max = min, max
	w.record("range=%d..%d", min, max)
}

func (w *Widget) SetValue(value int) {
	w.Value = value
	w.record("value=%d", value)
}

func (w *Widget) Subscribe(kind loom.EventKind, id loom.HandlerID) {
	w.Subs = append(w.Subs, Subscription{Kind: kind, ID: id})
}

// Event synthesizes the native event a subscription of the given kind
// would deliver. The second return is false if the widget has no such
// subscription.
func (w *Widget) Event(kind loom.EventKind) (loom.Event, bool) {
	for _, sub := range w.Subs {
		if sub.Kind == kind {
			return loom.Event{Kind: kind, Context: sub.ID}, true
		}
	}
	return loom.Event{}, false
}

// Backend implements loom.Backend over in-memory widgets.
type Backend struct {
	// Root anchors widgets created with a nil parent.
	Root *Widget

	// Cleans counts Clean calls, for asserting teardown ordering.
	Cleans int

	// FailKind, when set, makes Create fail for that widget kind.
	FailKind loom.NodeKind
}

var _ loom.Backend = (*Backend)(nil)

// New creates a backend with an empty container root.
func New() *Backend {
	return &Backend{Root: &Widget{Kind: loom.KindContainer}}
}

func (b *Backend) Create(kind loom.NodeKind, parent loom.Widget) (loom.Widget, error) {
	if b.FailKind != loom.KindInvalid && kind == b.FailKind {
		return nil, fmt.Errorf("create %s: simulated toolkit failure", kind)
	}

	p := b.Root
	if parent != nil {
		p = parent.(*Widget)
	}
	w := &Widget{Kind: kind, Parent: p}
	p.Children = append(p.Children, w)
	return w, nil
}

func (b *Backend) Clean(parent loom.Widget) {
	b.Cleans++
	p := b.Root
	if parent != nil {
		p = parent.(*Widget)
	}
	for _, child := range p.Children {
		child.Parent = nil
	}
	p.Children = nil
}
