package loom

// NodeKind identifies the widget a description node renders to. The
// set is closed; kinds decoded from external input that match nothing
// map to KindInvalid and are reported as a recoverable build error.
type NodeKind uint8

const (
	KindInvalid NodeKind = iota
	KindContainer
	KindText
	KindButton
	KindBar
)

var kindNames = map[NodeKind]string{
	KindContainer: "container",
	KindText:      "text",
	KindButton:    "button",
	KindBar:       "bar",
}

func (k NodeKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "invalid"
}

// ParseKind maps an external kind name onto the closed set. Unknown
// names yield KindInvalid.
func ParseKind(s string) NodeKind {
	switch s {
	case "container", "obj", "div":
		return KindContainer
	case "text", "label":
		return KindText
	case "button", "btn":
		return KindButton
	case "bar":
		return KindBar
	}
	return KindInvalid
}

// EventKind is a discrete native event the core can subscribe to.
type EventKind uint8

const (
	EventClick EventKind = iota
	EventLongPress
)

func (e EventKind) String() string {
	switch e {
	case EventClick:
		return "click"
	case EventLongPress:
		return "longPress"
	}
	return "unknown"
}

// ParseEventKind maps an external handler name onto an event kind.
func ParseEventKind(s string) (EventKind, bool) {
	switch s {
	case "click":
		return EventClick, true
	case "longPress", "long_press":
		return EventLongPress, true
	}
	return 0, false
}

// Node is one description node: the declarative, externally produced
// specification of a widget to render. The builder treats nodes as
// read-only input and never mutates them in place.
type Node struct {
	Kind  NodeKind
	Class string

	// Text payload, text kind only.
	Text string

	// Range state, bar kind only. Nil fields take the documented
	// defaults (min 0, max 100, value 0).
	Value *int
	Min   *int
	Max   *int

	// Ordered children, container and button kinds only.
	Children []*Node

	// Callbacks by event kind. Which entries are honored depends on
	// the node kind; the rest are ignored.
	Handlers map[EventKind]Callback
}

// barRange resolves the bar defaults for absent fields.
func (n *Node) barRange() (min, max, value int) {
	min, max, value = 0, 100, 0
	if n.Min != nil {
		min = *n.Min
	}
	if n.Max != nil {
		max = *n.Max
	}
	if n.Value != nil {
		value = *n.Value
	}
	return min, max, value
}
