// Package shape builds fish silhouettes in canvas coordinates. The desktop
// renderer fills them as polygons and the terminal renderer rasterizes them
// onto character cells.
package shape

import "math"

// Point is a 2D point in canvas coordinates.
type Point struct {
	X, Y float32
}

// DefaultSegments is the number of line segments per body curve.
const DefaultSegments = 8

// Outline is a posed fish silhouette.
type Outline struct {
	Center Point
	// Body is the closed lens formed by two quadratic curves from the tail
	// joint to the nose and back, wound counter-clockwise on screen.
	Body []Point
	// Tail is the triangle behind the body, wound like Body.
	Tail [3]Point

	Eye         Point
	EyeRadius   float32
	PupilRadius float32
}

// Fish poses a fish of the given size at (x, y) facing heading.
// segments is the number of line segments per body curve (min 2).
func Fish(x, y, size, heading float32, segments int) Outline {
	if segments < 2 {
		segments = 2
	}
	sin, cos := math.Sincos(float64(heading))
	pose := func(lx, ly float32) Point {
		return Point{
			X: x + lx*float32(cos) - ly*float32(sin),
			Y: y + lx*float32(sin) + ly*float32(cos),
		}
	}

	s := size
	body := make([]Point, 0, 2*segments)

	// Upper curve: (-s, 0) -> ctrl (s/2, -s/2) -> (s, 0)
	for i := 0; i < segments; i++ {
		t := float32(i) / float32(segments)
		lx, ly := quadratic(-s, 0, s/2, -s/2, s, 0, t)
		body = append(body, pose(lx, ly))
	}
	// Lower curve: (s, 0) -> ctrl (s/2, s/2) -> (-s, 0)
	for i := 0; i < segments; i++ {
		t := float32(i) / float32(segments)
		lx, ly := quadratic(s, 0, s/2, s/2, -s, 0, t)
		body = append(body, pose(lx, ly))
	}

	o := Outline{
		Center: Point{X: x, Y: y},
		Body:   screenCCW(body),
		Tail: [3]Point{
			pose(-s, 0),
			pose(-s*1.5, -s/2),
			pose(-s*1.5, s/2),
		},
		Eye:         pose(s/2, -s/4),
		EyeRadius:   s / 6,
		PupilRadius: s / 10,
	}
	tail := screenCCW(o.Tail[:])
	copy(o.Tail[:], tail)
	return o
}

// quadratic evaluates a quadratic Bezier curve at t.
func quadratic(x0, y0, cx, cy, x1, y1, t float32) (x, y float32) {
	u := 1 - t
	x = u*u*x0 + 2*u*t*cx + t*t*x1
	y = u*u*y0 + 2*u*t*cy + t*t*y1
	return x, y
}

// signedArea is the shoelace sum. With y pointing down, a negative value
// means the polygon winds counter-clockwise on screen.
func signedArea(pts []Point) float32 {
	var a float32
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

// screenCCW reverses pts in place if needed so they wind counter-clockwise
// on a y-down screen.
func screenCCW(pts []Point) []Point {
	if signedArea(pts) > 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}

// Contains reports whether (px, py) is inside the body or the tail.
func (o Outline) Contains(px, py float32) bool {
	p := Point{X: px, Y: py}
	return inPolygon(o.Body, p) || inPolygon(o.Tail[:], p)
}

// InEye reports whether (px, py) is inside the eye disc.
func (o Outline) InEye(px, py float32) bool {
	dx, dy := px-o.Eye.X, py-o.Eye.Y
	return dx*dx+dy*dy <= o.EyeRadius*o.EyeRadius
}

// Bounds returns the bounding box of body and tail.
func (o Outline) Bounds() (minX, minY, maxX, maxY float32) {
	minX, minY = float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY = float32(math.Inf(-1)), float32(math.Inf(-1))
	extend := func(p Point) {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	for _, p := range o.Body {
		extend(p)
	}
	for _, p := range o.Tail {
		extend(p)
	}
	return minX, minY, maxX, maxY
}

// inPolygon is the even-odd ray casting test.
func inPolygon(poly []Point, p Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
