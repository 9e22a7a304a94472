package loom

import (
	"fmt"

	"github.com/loomui/loom/tw"
)

// build recursively turns a description node into a live widget tree
// under parent. It returns nil for nodes that cannot be built; the
// caller skips them and continues with their siblings. Build failures
// are recoverable by design: the worst outcome is a partially built
// tree with a diagnostic emitted.
func (s *Session) build(n *Node, parent Widget) Widget {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case KindContainer:
		return s.buildContainer(n, parent)
	case KindText:
		return s.buildText(n, parent)
	case KindButton:
		return s.buildButton(n, parent)
	case KindBar:
		return s.buildBar(n, parent)
	case KindInvalid:
	}

	s.log.Warn("skipping unknown node kind", "kind", uint8(n.Kind))
	return nil
}

func (s *Session) buildContainer(n *Node, parent Widget) Widget {
	w, err := s.backend.Create(KindContainer, parent)
	if err != nil {
		s.log.Error("container create failed", "error", err)
		return nil
	}

	s.applyClass(w, n.Class)
	s.attachHandlers(w, n, EventClick, EventLongPress)
	s.buildChildren(n, w)
	return w
}

func (s *Session) buildText(n *Node, parent Widget) Widget {
	w, err := s.backend.Create(KindText, parent)
	if err != nil {
		s.log.Error("text create failed", "error", err)
		return nil
	}

	w.SetText(n.Text)
	s.applyClass(w, n.Class)
	return w
}

func (s *Session) buildButton(n *Node, parent Widget) Widget {
	w, err := s.backend.Create(KindButton, parent)
	if err != nil {
		s.log.Error("button create failed", "error", err)
		return nil
	}

	s.applyClass(w, n.Class)
	s.attachHandlers(w, n, EventClick)
	s.buildChildren(n, w)
	return w
}

func (s *Session) buildBar(n *Node, parent Widget) Widget {
	w, err := s.backend.Create(KindBar, parent)
	if err != nil {
		s.log.Error("bar create failed", "error", err)
		return nil
	}

	min, max, value := n.barRange()
	w.SetRange(min, max)
	w.SetValue(value)
	s.applyClass(w, n.Class)
	s.attachHandlers(w, n, EventClick)
	return w
}

// buildChildren builds each child under w in order. A nil child result
// is skipped; its siblings still build.
func (s *Session) buildChildren(n *Node, w Widget) {
	for _, child := range n.Children {
		s.build(child, w)
	}
}

// applyClass parses the utility-class string and applies the record in
// a single pass. Parsing is lenient and never fails; an empty class
// applies nothing.
func (s *Session) applyClass(w Widget, class string) {
	if class == "" {
		return
	}
	styles := tw.Parse(class)
	tw.Apply(w, &styles)
}

// attachHandlers registers each applicable callback of the node and
// subscribes the widget to the matching native event, carrying the
// handler id as the subscription's opaque context. A full registry
// means the subscription is simply omitted.
func (s *Session) attachHandlers(w Widget, n *Node, kinds ...EventKind) {
	if len(n.Handlers) == 0 {
		return
	}
	for _, kind := range kinds {
		fn, ok := n.Handlers[kind]
		if !ok || fn == nil {
			continue
		}
		id, err := s.registry.Register(fn, w)
		if err != nil {
			s.log.Warn("event subscription omitted",
				"event", kind.String(),
				"error", fmt.Errorf("register handler: %w", err))
			continue
		}
		w.Subscribe(kind, id)
	}
}
