package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	group   *Group
	contact *Panel
	flags   *Panel
	page    *Element
	button  *Element
	body    *Element
	field   *Element
	other   *Element
}

func newFixture() fixture {
	page := NewElement("page", nil, Rect{Width: 1440, Height: 900})
	header := NewElement("header", page, Rect{Width: 1440, Height: 56})
	button := NewElement("enquire", header, Rect{X: 1300, Y: 8, Width: 100, Height: 40})
	body := NewElement("contact-panel", page, Rect{X: 908, Y: 48, Width: 500, Height: 560})
	field := NewElement("email", body, Rect{X: 930, Y: 200, Width: 400, Height: 40})
	flagButton := NewElement("flag", header, Rect{X: 1200, Y: 8, Width: 40, Height: 40})
	flagMenu := NewElement("flag-menu", page, Rect{X: 1100, Y: 48, Width: 200, Height: 300})
	other := NewElement("hero", page, Rect{Y: 56, Width: 1440, Height: 600})

	g := &Group{}
	return fixture{
		group:   g,
		contact: NewPanel(g, "contact", button, body),
		flags:   NewPanel(g, "flags", flagButton, flagMenu),
		page:    page,
		button:  button,
		body:    body,
		field:   field,
		other:   other,
	}
}

func TestPointerEnterOpensAndClosesSiblings(t *testing.T) {
	f := newFixture()
	f.flags.PointerEnter()
	require.True(t, f.flags.IsOpen())

	f.contact.PointerEnter()
	require.True(t, f.contact.IsOpen())
	require.False(t, f.flags.IsOpen())
	require.Equal(t, "contact", f.group.Current())
}

func TestPointerLeaveWithinCompoundRegionKeepsOpen(t *testing.T) {
	f := newFixture()
	f.contact.PointerEnter()

	require.False(t, f.contact.PointerLeave(LeaveEvent{Related: f.body}))
	require.False(t, f.contact.PointerLeave(LeaveEvent{Related: f.field}))
	require.False(t, f.contact.PointerLeave(LeaveEvent{Related: f.button}))
	require.True(t, f.contact.IsOpen())
}

func TestPointerLeaveOutsideCloses(t *testing.T) {
	f := newFixture()
	f.contact.PointerEnter()

	require.True(t, f.contact.PointerLeave(LeaveEvent{Related: f.other}))
	require.False(t, f.contact.IsOpen())

	f.contact.PointerEnter()
	require.True(t, f.contact.PointerLeave(LeaveEvent{Related: f.page}), "an ancestor is outside")
}

func TestPointerLeaveToNowhereCloses(t *testing.T) {
	f := newFixture()
	f.contact.PointerEnter()
	require.True(t, f.contact.PointerLeave(LeaveEvent{}))
	require.False(t, f.contact.IsOpen())
}

func TestPointerLeaveWhenClosedIsNoop(t *testing.T) {
	f := newFixture()
	f.flags.PointerEnter()
	require.False(t, f.contact.PointerLeave(LeaveEvent{Related: f.other}))
	require.True(t, f.flags.IsOpen(), "closing contact must not close another panel")
}

func TestCloseButton(t *testing.T) {
	f := newFixture()
	f.contact.PointerEnter()
	f.contact.Close()
	require.False(t, f.contact.IsOpen())
	require.Empty(t, f.group.Current())
}

func TestRegionContainsPoint(t *testing.T) {
	f := newFixture()
	r := f.contact.Region()

	require.True(t, r.ContainsPoint(Point{X: 1350, Y: 20}), "inside trigger")
	require.True(t, r.ContainsPoint(Point{X: 1000, Y: 300}), "inside panel")
	require.True(t, r.ContainsPoint(Point{X: 908, Y: 48}), "edges are inclusive")
	require.False(t, r.ContainsPoint(Point{X: 10, Y: 10}))

	// bounds are read at check time
	f.body.Bounds = Rect{}
	require.False(t, r.ContainsPoint(Point{X: 1000, Y: 300}))
}

func TestRegionIgnoresNilParts(t *testing.T) {
	r := NewRegion("partial", nil, NewElement("only", nil, Rect{Width: 10, Height: 10}))
	require.True(t, r.ContainsPoint(Point{X: 5, Y: 5}))
	require.False(t, r.ContainsTarget(nil))
}

func TestRectRejectsNegativeSize(t *testing.T) {
	require.False(t, Rect{Width: -1, Height: 5}.Contains(Point{}))
}
