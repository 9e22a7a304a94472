package loom

// Callback is an invocable reference into the scripting layer. The
// registry shares ownership of the reference with the scripting layer
// and keeps it alive until Cleanup.
type Callback interface {
	// Invoke runs the callback with no arguments. An error is a
	// callback fault: it is reported at the invocation boundary and
	// never propagates into event processing.
	Invoke() error
}

// Releaser is implemented by callback references whose scripting layer
// needs an explicit ownership release at teardown. References without
// it are simply dropped.
type Releaser interface {
	Release()
}

// CallbackFunc adapts a plain closure to Callback.
type CallbackFunc func() error

func (f CallbackFunc) Invoke() error { return f() }

// Source is the scripting boundary the render controller drives. A
// Source produces description trees on demand and executes its own
// deferred work when asked; everything else about the scripting
// runtime is opaque to the core.
type Source interface {
	// Produce computes a fresh description tree. Called once per
	// render or re-render cycle.
	Produce() (*Node, error)

	// Drain runs pending deferred work (microtask-equivalent jobs) to
	// completion.
	Drain() error
}

// ProducerFunc adapts a tree-producing closure to Source, with a no-op
// Drain. Useful for sources with no deferred-work queue of their own.
type ProducerFunc func() (*Node, error)

func (f ProducerFunc) Produce() (*Node, error) { return f() }

func (f ProducerFunc) Drain() error { return nil }
