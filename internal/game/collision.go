package game

import "math"

// CircleRectOverlap reports whether a circle at c with radius r overlaps
// the wall rectangle. The test clamps the circle centre onto the
// rectangle per axis and compares the residual distance to the radius.
func CircleRectOverlap(c Vec2, r float64, w Wall) bool {
	cx := math.Max(w.X, math.Min(c.X, w.Right()))
	cy := math.Max(w.Y, math.Min(c.Y, w.Bottom()))
	dx := c.X - cx
	dy := c.Y - cy
	return dx*dx+dy*dy < r*r
}

// ResolveCircleRect pushes a circle out of a wall along the collision
// normal and returns the corrected centre. When the centre lies exactly
// inside the rectangle there is no normal to use, so the circle is
// pushed toward the nearest edge; ties resolve left, right, top, bottom
// in that fixed order.
func ResolveCircleRect(c Vec2, r float64, w Wall) Vec2 {
	cx := math.Max(w.X, math.Min(c.X, w.Right()))
	cy := math.Max(w.Y, math.Min(c.Y, w.Bottom()))
	dx := c.X - cx
	dy := c.Y - cy
	distSq := dx*dx + dy*dy

	if distSq > 0 {
		dist := math.Sqrt(distSq)
		if dist >= r {
			return c
		}
		overlap := r - dist
		return Vec2{X: c.X + dx/dist*overlap, Y: c.Y + dy/dist*overlap}
	}

	// Centre inside the rectangle: pick the nearest of the four edges.
	dLeft := c.X - w.X
	dRight := w.Right() - c.X
	dTop := c.Y - w.Y
	dBottom := w.Bottom() - c.Y

	min := dLeft
	out := Vec2{X: w.X - r, Y: c.Y}
	if dRight < min {
		min = dRight
		out = Vec2{X: w.Right() + r, Y: c.Y}
	}
	if dTop < min {
		min = dTop
		out = Vec2{X: c.X, Y: w.Y - r}
	}
	if dBottom < min {
		out = Vec2{X: c.X, Y: w.Bottom() + r}
	}
	return out
}

// ResolveUnitWall pushes a unit circle out of a wall along the axis with
// the smaller per-axis overlap. An exact tie favours the vertical axis.
// Used for moving units, where axis push-out behaves better than the
// normal-based resolution when sliding along long walls.
func ResolveUnitWall(u *Unit, w Wall) {
	if !CircleRectOverlap(u.Pos, u.Radius, w) {
		return
	}

	overlapLeft := u.Pos.X + u.Radius - w.X
	overlapRight := w.Right() - (u.Pos.X - u.Radius)
	overlapTop := u.Pos.Y + u.Radius - w.Y
	overlapBottom := w.Bottom() - (u.Pos.Y - u.Radius)

	overlapX := math.Min(overlapLeft, overlapRight)
	overlapY := math.Min(overlapTop, overlapBottom)

	if overlapX < overlapY {
		if overlapLeft < overlapRight {
			u.Pos.X = w.X - u.Radius
		} else {
			u.Pos.X = w.Right() + u.Radius
		}
	} else {
		if overlapTop < overlapBottom {
			u.Pos.Y = w.Y - u.Radius
		} else {
			u.Pos.Y = w.Bottom() + u.Radius
		}
	}
}

// ResolveUnitUnit separates two overlapping unit circles symmetrically,
// each moving half the overlap along the line between their centres.
func ResolveUnitUnit(a, b *Unit) {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Len()
	minDist := a.Radius + b.Radius
	if dist >= minDist {
		return
	}

	var n Vec2
	if dist > 0 {
		n = delta.Scale(1 / dist)
	} else {
		// Coincident centres: pick an arbitrary but fixed axis.
		n = Vec2{X: 1, Y: 0}
	}
	half := (minDist - dist) / 2
	a.Pos = a.Pos.Sub(n.Scale(half))
	b.Pos = b.Pos.Add(n.Scale(half))
}

// orientation returns the sign of the signed area of the triangle
// (a, b, c): >0 counter-clockwise, <0 clockwise, 0 collinear.
func orientation(a, b, c Vec2) int {
	v := (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// onSegment reports whether collinear point p lies on segment ab.
func onSegment(a, b, p Vec2) bool {
	return p.X <= math.Max(a.X, b.X) && p.X >= math.Min(a.X, b.X) &&
		p.Y <= math.Max(a.Y, b.Y) && p.Y >= math.Min(a.Y, b.Y)
}

// SegmentsIntersect reports whether segments p1-p2 and p3-p4 intersect,
// including touching and collinear-overlap cases.
func SegmentsIntersect(p1, p2, p3, p4 Vec2) bool {
	o1 := orientation(p1, p2, p3)
	o2 := orientation(p1, p2, p4)
	o3 := orientation(p3, p4, p1)
	o4 := orientation(p3, p4, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if o2 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	if o3 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if o4 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	return false
}

// SegmentRectIntersect reports whether segment a-b crosses any of the
// four edges of the wall rectangle.
func SegmentRectIntersect(a, b Vec2, w Wall) bool {
	tl := Vec2{X: w.X, Y: w.Y}
	tr := Vec2{X: w.Right(), Y: w.Y}
	bl := Vec2{X: w.X, Y: w.Bottom()}
	br := Vec2{X: w.Right(), Y: w.Bottom()}
	return SegmentsIntersect(a, b, tl, tr) ||
		SegmentsIntersect(a, b, tr, br) ||
		SegmentsIntersect(a, b, br, bl) ||
		SegmentsIntersect(a, b, bl, tl)
}

// HasLineOfSight returns true if the straight segment from a to b
// touches no wall edge.
func HasLineOfSight(a, b Vec2, walls []Wall) bool {
	for _, w := range walls {
		if SegmentRectIntersect(a, b, w) {
			return false
		}
	}
	return true
}

// ClampToBounds clips a unit's centre into the playable rectangle,
// shrunk by the unit's own radius. Applied every tick after movement
// and wall resolution, not only on spawn.
func ClampToBounds(u *Unit, arena *Arena) {
	if u.Pos.X < u.Radius {
		u.Pos.X = u.Radius
	}
	if u.Pos.X > arena.Width-u.Radius {
		u.Pos.X = arena.Width - u.Radius
	}
	if u.Pos.Y < u.Radius {
		u.Pos.Y = u.Radius
	}
	if u.Pos.Y > arena.Height-u.Radius {
		u.Pos.Y = arena.Height - u.Radius
	}
}
