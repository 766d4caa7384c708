package vmath

import "math"

// Rect is an axis-aligned rectangle: top-left origin plus extents
type Rect struct {
	X, Y, W, H float64
}

// Inflate returns the rect grown by pad on all four sides
func (r Rect) Inflate(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + pad*2, H: r.H + pad*2}
}

// Contains reports whether p lies inside r (edges inclusive)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// ClosestPoint returns the point on r nearest to p
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: math.Max(r.X, math.Min(p.X, r.X+r.W)),
		Y: math.Max(r.Y, math.Min(p.Y, r.Y+r.H)),
	}
}

// CircleCircle reports whether two circles overlap
func CircleCircle(p1 Vec2, r1 float64, p2 Vec2, r2 float64) bool {
	return p1.Distance(p2) < r1+r2
}

// CircleRect reports whether a circle overlaps a rectangle
func CircleRect(center Vec2, radius float64, r Rect) bool {
	return center.Distance(r.ClosestPoint(center)) < radius
}

// SegmentsIntersect reports whether segment p1-p2 crosses segment p3-p4.
// Segments that merely touch at an endpoint count as intersecting; the
// orientation products use <= so grazing contact is not silently ignored.
func SegmentsIntersect(p1, p2, p3, p4 Vec2) bool {
	d1 := (p2.X-p1.X)*(p3.Y-p1.Y) - (p2.Y-p1.Y)*(p3.X-p1.X)
	d2 := (p2.X-p1.X)*(p4.Y-p1.Y) - (p2.Y-p1.Y)*(p4.X-p1.X)
	d3 := (p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)
	d4 := (p4.X-p3.X)*(p2.Y-p3.Y) - (p4.Y-p3.Y)*(p2.X-p3.X)
	return d1*d2 <= 0 && d3*d4 <= 0
}

// SegmentRect reports whether segment a-b crosses any edge of r
func SegmentRect(a, b Vec2, r Rect) bool {
	tl := Vec2{r.X, r.Y}
	tr := Vec2{r.X + r.W, r.Y}
	bl := Vec2{r.X, r.Y + r.H}
	br := Vec2{r.X + r.W, r.Y + r.H}

	return SegmentsIntersect(a, b, tl, tr) ||
		SegmentsIntersect(a, b, tr, br) ||
		SegmentsIntersect(a, b, br, bl) ||
		SegmentsIntersect(a, b, bl, tl)
}

// SegmentCircle reports whether segment a-b passes within radius of center
func SegmentCircle(a, b, center Vec2, radius float64) bool {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return a.Distance(center) <= radius
	}
	t := center.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	closest := a.Add(ab.Scale(t))
	return closest.Sub(center).LengthSq() <= radius*radius
}

// LineOfSight reports whether the from-to segment is unobstructed by walls
func LineOfSight(from, to Vec2, walls []Rect) bool {
	for _, w := range walls {
		if SegmentRect(from, to, w) {
			return false
		}
	}
	return true
}

// LineOfSightPadded is LineOfSight against walls inflated by padding.
// Pathing decisions use this so agents do not graze corners the raw
// geometry would let them shave.
func LineOfSightPadded(from, to Vec2, walls []Rect, padding float64) bool {
	for _, w := range walls {
		if SegmentRect(from, to, w.Inflate(padding)) {
			return false
		}
	}
	return true
}
