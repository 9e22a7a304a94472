package loom

// Dispatch is the native-event entry point. The native loop calls it
// when a subscribed event fires, handing back the opaque context the
// builder attached at subscription time. Dispatch resolves that
// context as a handler id and delegates to the registry; it carries no
// other logic.
func (s *Session) Dispatch(ev Event) {
	s.registry.Invoke(ev.Context)
}
