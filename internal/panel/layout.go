package panel

import "github.com/modelsweep/modelsweep/internal/session"

// Panel geometry constants. Rows are one terminal cell tall; the header
// occupies two rows and the bottom row carries the decision buttons.
const (
	HeaderRows        = 2
	DefaultMaxVisible = 12

	scrollControlWidth = 3
	buttonWidth        = 10
	buttonGap          = 2
	nameBudget         = 40
)

// Point is a position in panel-local cell coordinates.
type Point struct {
	X int
	Y int
}

// Size is the drawable surface handed to the panel by the host.
type Size struct {
	Width  int
	Height int
}

// Rect is a rectangle in panel-local cell coordinates.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Contains reports whether the point falls inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// RowRegion ties a candidate index to its on-surface rectangle.
type RowRegion struct {
	Index  int
	Bounds Rect
}

// RegionMap is the derived set of interactive rectangles for one frame. It
// is rebuilt whenever the session or surface size changes, never mutated.
type RegionMap struct {
	Rows       []RowRegion
	ScrollUp   *Rect
	ScrollDown *Rect
	Cancel     Rect
	Confirm    Rect
}

// MaxVisible returns how many candidate rows fit on a surface of the given
// height, capped at DefaultMaxVisible. Non-positive heights use the cap,
// which keeps layout deterministic before the host has measured itself.
func MaxVisible(size Size) int {
	if size.Height <= 0 {
		return DefaultMaxVisible
	}
	visible := size.Height - HeaderRows - 2
	if visible < 1 {
		visible = 1
	}
	if visible > DefaultMaxVisible {
		visible = DefaultMaxVisible
	}
	return visible
}

// Layout computes the RegionMap for a session on a surface. Pure function of
// its inputs: rows run top to bottom in candidate order starting at the
// header offset, and only the visible window is emitted. Cancel and Confirm
// are always present so the gate can be resolved even before data arrives.
func Layout(sess *session.Session, size Size) RegionMap {
	width := size.Width
	if width < 1 {
		width = 1
	}
	height := size.Height
	if height < HeaderRows+2 {
		height = HeaderRows + 2
	}

	regions := RegionMap{}
	maxVisible := MaxVisible(size)

	var total, offset int
	if sess != nil {
		total = len(sess.Candidates)
		offset = sess.ScrollOffset
	}

	visible := total - offset
	if visible > maxVisible {
		visible = maxVisible
	}
	if visible < 0 {
		visible = 0
	}
	for i := 0; i < visible; i++ {
		regions.Rows = append(regions.Rows, RowRegion{
			Index:  offset + i,
			Bounds: Rect{X: 0, Y: HeaderRows + i, W: width, H: 1},
		})
	}

	if total > maxVisible {
		if offset > 0 {
			regions.ScrollUp = &Rect{X: width - scrollControlWidth, Y: HeaderRows - 1, W: scrollControlWidth, H: 1}
		}
		if maxScroll := total - maxVisible; offset < maxScroll {
			regions.ScrollDown = &Rect{X: width - scrollControlWidth, Y: HeaderRows + visible, W: scrollControlWidth, H: 1}
		}
	}

	buttonSpan := buttonWidth*2 + buttonGap
	left := (width - buttonSpan) / 2
	if left < 0 {
		left = 0
	}
	buttonRow := height - 1
	regions.Cancel = Rect{X: left, Y: buttonRow, W: buttonWidth, H: 1}
	regions.Confirm = Rect{X: left + buttonWidth + buttonGap, Y: buttonRow, W: buttonWidth, H: 1}

	return regions
}
