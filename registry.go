package loom

import (
	"errors"
	"log/slog"
)

// DefaultHandlerCapacity bounds the handler table when no capacity is
// configured. The bound is deliberate: the table is linear-scanned and
// never compacted, so it stays small.
const DefaultHandlerCapacity = 256

// ErrRegistryFull reports a registration beyond the table's fixed
// capacity. The caller skips the event subscription and continues.
var ErrRegistryFull = errors.New("handler registry full")

type handlerEntry struct {
	id HandlerID
	fn Callback

	// owner is a non-owning back-reference kept for diagnostics only.
	// It may point at a widget destroyed by a later re-render and is
	// never dereferenced after registration.
	owner Widget
}

// Registry is the bounded table of event callbacks. It exclusively
// owns the callback references it holds (keeping them alive for the
// scripting layer) until Cleanup. A Registry is confined to the single
// control-loop thread; it needs no locking.
type Registry struct {
	capacity int
	nextID   HandlerID
	entries  []handlerEntry
	log      *slog.Logger

	// needsRender is set on every invocation and consumed by the
	// render controller. Single writer, single reader.
	needsRender bool
}

// NewRegistry creates a registry with the given capacity. A capacity
// of zero or less takes DefaultHandlerCapacity.
func NewRegistry(capacity int, log *slog.Logger) *Registry {
	if capacity <= 0 {
		capacity = DefaultHandlerCapacity
	}
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		capacity: capacity,
		nextID:   1,
		entries:  make([]handlerEntry, 0, capacity),
		log:      log,
	}
}

// Register stores a callback with its owning widget and returns the
// new handler id. Ids increase monotonically and are never reused,
// even after Cleanup. Registration past capacity fails with
// ErrRegistryFull and no fault.
func (r *Registry) Register(fn Callback, owner Widget) (HandlerID, error) {
	if len(r.entries) >= r.capacity {
		r.log.Error("handler registry full", "capacity", r.capacity)
		return 0, ErrRegistryFull
	}

	id := r.nextID
	r.nextID++
	r.entries = append(r.entries, handlerEntry{id: id, fn: fn, owner: owner})
	return id, nil
}

// Invoke looks up the entry by id and calls its callback with no
// arguments. An unknown id is a no-op. A fault inside the callback is
// caught and reported here; event processing continues. Every
// invocation of a found entry marks a re-render as needed, faulted or
// not, because the callback may have mutated script state before
// failing.
func (r *Registry) Invoke(id HandlerID) {
	for i := range r.entries {
		if r.entries[i].id != id {
			continue
		}
		if err := r.entries[i].fn.Invoke(); err != nil {
			r.log.Error("handler callback failed", "handler", id, "error", err)
		}
		r.needsRender = true
		return
	}
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	return len(r.entries)
}

// ConsumeRenderFlag returns whether a re-render was requested since
// the last call, and clears the flag.
func (r *Registry) ConsumeRenderFlag() bool {
	needed := r.needsRender
	r.needsRender = false
	return needed
}

// Cleanup releases ownership of every callback reference and empties
// the table. Called once at session teardown. The id counter is not
// reset; ids stay unique for the process lifetime.
func (r *Registry) Cleanup() {
	for i := range r.entries {
		if rel, ok := r.entries[i].fn.(Releaser); ok {
			rel.Release()
		}
	}
	r.entries = r.entries[:0]
	r.needsRender = false
}
