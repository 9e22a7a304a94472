package loom

import (
	"fmt"
	"log/slog"
)

// Session orchestrates render and re-render cycles for one UI: it owns
// the handler registry and bridges the scripting boundary (Source) to
// the native toolkit (Backend).
//
// A Session is single-threaded and cooperative. Dispatch, Render,
// Rerender and ProcessEvents all run synchronously inside a control
// loop tick owned by the caller; no operation blocks or suspends.
type Session struct {
	backend  Backend
	source   Source
	registry *Registry
	log      *slog.Logger
}

// New creates a session. cfg may be nil for defaults.
func New(backend Backend, source Source, cfg *Config) (*Session, error) {
	if backend == nil {
		return nil, fmt.Errorf("new session: nil backend")
	}
	if source == nil {
		return nil, fmt.Errorf("new session: nil source")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	log := cfg.logger()

	return &Session{
		backend:  backend,
		source:   source,
		registry: NewRegistry(cfg.Handlers.Capacity, log),
		log:      log,
	}, nil
}

// Registry exposes the session's handler registry.
func (s *Session) Registry() *Registry {
	return s.registry
}

// Render asks the source for a description tree and builds it under
// parent. Build problems inside the tree are recoverable and logged;
// only a failure to produce the tree at all is an error.
func (s *Session) Render(parent Widget) error {
	root, err := s.source.Produce()
	if err != nil {
		return fmt.Errorf("render: produce tree: %w", err)
	}
	if root == nil {
		return nil
	}
	s.build(root, parent)
	return nil
}

// Rerender destroys every existing native child of parent and rebuilds
// from a freshly produced description tree. The teardown is
// irrevocable: native-side widget state in the subtree is lost. There
// is no diffing; every re-render is a full rebuild.
//
// Handler registrations from earlier cycles stay in the registry; see
// Registry for the staleness contract.
func (s *Session) Rerender(parent Widget) error {
	s.backend.Clean(parent)

	root, err := s.source.Produce()
	if err != nil {
		return fmt.Errorf("rerender: produce tree: %w", err)
	}
	if root == nil {
		return nil
	}
	s.build(root, parent)
	return nil
}

// ProcessEvents drains the source's deferred work to completion, then
// reports whether a re-render was requested since the last call and
// clears that flag. It never triggers the re-render itself: the caller
// owns the control loop and invokes Rerender when it sees true. That
// asymmetry is part of the contract.
func (s *Session) ProcessEvents() bool {
	if err := s.source.Drain(); err != nil {
		s.log.Error("deferred work failed", "error", err)
	}
	return s.registry.ConsumeRenderFlag()
}

// Close tears the session down, releasing every callback reference the
// registry owns. Widgets are not touched; they belong to the native
// tree and its owner.
func (s *Session) Close() error {
	s.registry.Cleanup()
	return nil
}
