package dock

// Point is a position in window space. X grows to the right, Y grows down.
type Point struct {
	X, Y float64
}

// Sub returns the vector p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. X0/Y0 are inclusive, X1/Y1 exclusive.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// RectFromOrigin builds a Rect from its top-left corner and size.
func RectFromOrigin(origin Point, size Size) Rect {
	return Rect{X0: origin.X, Y0: origin.Y, X1: origin.X + size.Width, Y1: origin.Y + size.Height}
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Origin() Point { return Point{X: r.X0, Y: r.Y0} }

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Region is a union of rectangles. A nil Region means "no restriction" where
// a caller accepts one (see WindowControl.SetInputRegion).
type Region []Rect

// Add appends r unless it is empty.
func (g Region) Add(r Rect) Region {
	if r.Empty() {
		return g
	}
	return append(g, r)
}

// Contains reports whether any rectangle of the region contains p.
func (g Region) Contains(p Point) bool {
	for _, r := range g {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// BoundingBox returns the smallest Rect covering every rectangle in g.
func (g Region) BoundingBox() Rect {
	if len(g) == 0 {
		return Rect{}
	}
	bb := g[0]
	for _, r := range g[1:] {
		bb.X0 = min(bb.X0, r.X0)
		bb.Y0 = min(bb.Y0, r.Y0)
		bb.X1 = max(bb.X1, r.X1)
		bb.Y1 = max(bb.Y1, r.Y1)
	}
	return bb
}
