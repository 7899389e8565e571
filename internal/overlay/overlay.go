// Package overlay holds the state of hover-triggered panels such as the contact
// enquiry overlay. It has no dependency on a rendering surface: elements are a
// parent chain with bounds, and pointer events are plain values.
package overlay

import "sync"

// Panel names and markup shared with public/assets/js/overlay.js.
const (
	ContactPanel = "contact"
	CountryPanel = "country"

	AttrTrigger = "data-overlay-trigger"
	AttrPanel   = "data-overlay-panel"
	AttrClose   = "data-overlay-close"
	OpenClass   = "overlay--open"
)

// Point is a pointer position in page coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box. Edges are inclusive.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	if r.Width < 0 || r.Height < 0 {
		return false
	}
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Element is a node of the element tree.
type Element struct {
	ID     string
	Parent *Element
	Bounds Rect
}

// NewElement creates an element under parent (which may be nil).
func NewElement(id string, parent *Element, bounds Rect) *Element {
	return &Element{ID: id, Parent: parent, Bounds: bounds}
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	if e == nil {
		return false
	}
	for n := other; n != nil; n = n.Parent {
		if n == e {
			return true
		}
	}
	return false
}

// Region is a compound area made of several elements, e.g. a trigger button and
// the panel it opens.
type Region struct {
	Name  string
	parts []*Element
}

func NewRegion(name string, parts ...*Element) Region {
	kept := make([]*Element, 0, len(parts))
	for _, p := range parts {
		if p != nil {
			kept = append(kept, p)
		}
	}
	return Region{Name: name, parts: kept}
}

// ContainsTarget reports whether target is inside any part of the region.
// A nil target is outside.
func (r Region) ContainsTarget(target *Element) bool {
	if target == nil {
		return false
	}
	for _, p := range r.parts {
		if p.Contains(target) {
			return true
		}
	}
	return false
}

// ContainsPoint reports whether p lies within the current bounds of any part.
func (r Region) ContainsPoint(p Point) bool {
	for _, part := range r.parts {
		if part.Bounds.Contains(p) {
			return true
		}
	}
	return false
}

// LeaveEvent describes the pointer leaving the trigger or the panel. Related is the
// element the pointer moved to, nil when it left the document.
type LeaveEvent struct {
	Related *Element
}

// Group is the single "which panel is open" flag shared by panels that must be
// mutually exclusive, such as the contact overlay and the country picker.
type Group struct {
	mu   sync.Mutex
	open string
}

// Open marks name as the open panel, closing any other.
func (g *Group) Open(name string) {
	g.mu.Lock()
	g.open = name
	g.mu.Unlock()
}

// Close closes name if it is the open panel.
func (g *Group) Close(name string) {
	g.mu.Lock()
	if g.open == name {
		g.open = ""
	}
	g.mu.Unlock()
}

// IsOpen reports whether name is the open panel.
func (g *Group) IsOpen(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return name != "" && g.open == name
}

// Current returns the open panel's name, or "" when none is open.
func (g *Group) Current() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.open
}

// Panel is a hover-triggered panel: entering the trigger or the panel opens it,
// leaving to somewhere outside both closes it.
type Panel struct {
	name   string
	group  *Group
	region Region
}

// NewPanel binds a named panel made of trigger and body to group.
func NewPanel(group *Group, name string, trigger, body *Element) *Panel {
	return &Panel{name: name, group: group, region: NewRegion(name, trigger, body)}
}

func (p *Panel) Name() string   { return p.name }
func (p *Panel) Region() Region { return p.region }
func (p *Panel) IsOpen() bool   { return p.group.IsOpen(p.name) }

// PointerEnter opens the panel and closes its siblings.
func (p *Panel) PointerEnter() {
	p.group.Open(p.name)
}

// PointerLeave closes the panel unless the pointer moved into the trigger or the
// panel. It reports whether the panel was closed by this event.
func (p *Panel) PointerLeave(ev LeaveEvent) bool {
	if !p.IsOpen() {
		return false
	}
	if p.region.ContainsTarget(ev.Related) {
		return false
	}
	p.group.Close(p.name)
	return true
}

// Close closes the panel, as the explicit close control does.
func (p *Panel) Close() {
	p.group.Close(p.name)
}
