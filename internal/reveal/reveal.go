// Package reveal models the one-shot viewport reveal of page sections. A section
// starts hidden and becomes visible the first time it intersects the viewport;
// it never returns to hidden.
package reveal

import "sync"

// State is the reveal state of a single section.
type State uint8

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Markup shared with public/assets/js/reveal.js.
const (
	Attribute    = "data-reveal"
	ModeOnce     = "once"
	HiddenClass  = "reveal--hidden"
	VisibleClass = "reveal--visible"
)

// Tracker holds independent reveal states keyed by section id.
type Tracker struct {
	mu     sync.Mutex
	states map[string]State
}

// NewTracker registers ids as hidden sections. Unregistered ids are registered on
// first observation.
func NewTracker(ids ...string) *Tracker {
	t := &Tracker{states: make(map[string]State, len(ids))}
	for _, id := range ids {
		t.states[id] = Hidden
	}
	return t
}

// Observe records an intersection observation for id and reports whether this
// observation revealed the section. Only the first intersecting observation
// returns true; non-intersecting observations never change state.
func (t *Tracker) Observe(id string, intersecting bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	current := t.states[id]
	if !intersecting || current == Visible {
		if _, ok := t.states[id]; !ok {
			t.states[id] = Hidden
		}
		return false
	}
	t.states[id] = Visible
	return true
}

// State returns the current state of id. Unknown ids are hidden.
func (t *Tracker) State(id string) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[id]
}

// Snapshot copies every known state.
func (t *Tracker) Snapshot() map[string]State {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]State, len(t.states))
	for k, v := range t.states {
		out[k] = v
	}
	return out
}
