package loom

import "github.com/loomui/loom/tw"

// HandlerID identifies a registered callback-to-widget binding. IDs
// are positive, unique for the lifetime of the process and never
// reused. It travels through the native toolkit as the opaque context
// of an event subscription.
type HandlerID uint32

// Widget is an opaque native UI object. Widgets are owned by their
// native-tree parent: destroying a parent destroys all descendants.
// The style surface is the tw.Target family of mutations; the rest is
// the content and subscription surface the builder needs.
type Widget interface {
	tw.Target

	// SetText sets the text payload of a text widget.
	SetText(text string)

	// SetRange and SetValue configure a bar widget.
	SetRange(min, max int)
	SetValue(value int)

	// Subscribe registers interest in a discrete event kind. The id is
	// carried as the event's opaque context and handed back verbatim
	// when the native loop delivers the event.
	Subscribe(kind EventKind, id HandlerID)
}

// Backend is the native widget toolkit boundary. Implementations wrap
// a concrete toolkit; the core only creates widgets, destroys subtrees
// and mutates style attributes through it.
type Backend interface {
	// Create constructs a widget of the given kind under parent. A nil
	// parent means the toolkit's root.
	Create(kind NodeKind, parent Widget) (Widget, error)

	// Clean destroys every child of parent, wholesale. Any native-side
	// state held by the subtree is lost.
	Clean(parent Widget)
}

// Event is a native event as delivered to the dispatcher: the kind
// that fired and the opaque subscription context, which carries the
// handler id.
type Event struct {
	Kind    EventKind
	Context HandlerID
}
