package api

import (
	"fmt"
	"math"
)

// Point2D is a 2D map position. Tile (x, y) spans [x, x+1) x [y, y+1).
type Point2D struct {
	X float32 `protobuf:"fixed32,1,opt,name=x,proto3"`
	Y float32 `protobuf:"fixed32,2,opt,name=y,proto3"`
}

func (p *Point2D) Reset()      { *p = Point2D{} }
func (*Point2D) ProtoMessage() {}

func (p Point2D) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Vec2D is a 2D displacement between points.
type Vec2D struct {
	X, Y float32
}

// Point2DI is an integer tile coordinate.
type Point2DI struct {
	X int32 `protobuf:"varint,1,opt,name=x,proto3"`
	Y int32 `protobuf:"varint,2,opt,name=y,proto3"`
}

func (p *Point2DI) Reset()      { *p = Point2DI{} }
func (*Point2DI) ProtoMessage() {}

func (p Point2DI) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// ToPoint2D converts a tile coordinate to the point at the tile's lower-left corner.
func (p Point2DI) ToPoint2D() Point2D {
	return Point2D{X: float32(p.X), Y: float32(p.Y)}
}

// Point is a 3D world position.
type Point struct {
	X float32 `protobuf:"fixed32,1,opt,name=x,proto3"`
	Y float32 `protobuf:"fixed32,2,opt,name=y,proto3"`
	Z float32 `protobuf:"fixed32,3,opt,name=z,proto3"`
}

func (p *Point) Reset()      { *p = Point{} }
func (*Point) ProtoMessage() {}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p.X, p.Y, p.Z)
}

// ToPoint2D drops the Z coordinate.
func (p Point) ToPoint2D() Point2D {
	return Point2D{X: p.X, Y: p.Y}
}

// Size2DI is an integer width/height pair.
type Size2DI struct {
	X int32 `protobuf:"varint,1,opt,name=x,proto3"`
	Y int32 `protobuf:"varint,2,opt,name=y,proto3"`
}

func (s *Size2DI) Reset()      { *s = Size2DI{} }
func (*Size2DI) ProtoMessage() {}

func (s Size2DI) String() string {
	return fmt.Sprintf("%vx%v", s.X, s.Y)
}

// RectangleI is a half-open tile rectangle [P0, P1).
type RectangleI struct {
	P0 *Point2DI `protobuf:"bytes,1,opt,name=p0,proto3"`
	P1 *Point2DI `protobuf:"bytes,2,opt,name=p1,proto3"`
}

func (r *RectangleI) Reset()      { *r = RectangleI{} }
func (*RectangleI) ProtoMessage() {}

func (r RectangleI) String() string {
	return fmt.Sprintf("[%v, %v)", r.P0, r.P1)
}

// Contains reports whether the tile (x, y) lies inside the rectangle.
func (r *RectangleI) Contains(x, y int32) bool {
	if r == nil || r.P0 == nil || r.P1 == nil {
		return true
	}
	return r.P0.X <= x && x < r.P1.X && r.P0.Y <= y && y < r.P1.Y
}

// Add offsets the point by v.
func (p Point2D) Add(v Vec2D) Point2D {
	return Point2D{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from p2 to p.
func (p Point2D) Sub(p2 Point2D) Vec2D {
	return Vec2D{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Distance returns the euclidean distance between the points.
func (p Point2D) Distance(p2 Point2D) float32 {
	return float32(math.Sqrt(float64(p.Distance2(p2))))
}

// Distance2 returns the squared distance between the points.
func (p Point2D) Distance2(p2 Point2D) float32 {
	dx, dy := p.X-p2.X, p.Y-p2.Y
	return dx*dx + dy*dy
}

// Towards moves distance units from p in the direction of target.
func (p Point2D) Towards(target Point2D, distance float32) Point2D {
	d := p.Distance(target)
	if d == 0 {
		return p
	}
	return p.Add(target.Sub(p).Mul(distance / d))
}

// Offset moves p by (dx, dy).
func (p Point2D) Offset(dx, dy float32) Point2D {
	return Point2D{X: p.X + dx, Y: p.Y + dy}
}

// Floor returns the tile containing the point.
func (p Point2D) Floor() Point2DI {
	return Point2DI{X: int32(math.Floor(float64(p.X))), Y: int32(math.Floor(float64(p.Y)))}
}

// Rounded returns the nearest tile corner.
func (p Point2D) Rounded() Point2DI {
	return Point2DI{X: int32(math.Round(float64(p.X))), Y: int32(math.Round(float64(p.Y)))}
}

// Less orders points by Y, then X.
func (p Point2D) Less(p2 Point2D) bool {
	if p.Y != p2.Y {
		return p.Y < p2.Y
	}
	return p.X < p2.X
}

// CircleIntersection returns the two intersections of the circles of radius r around p and p2.
// ok is false when the points coincide or are more than 2r apart.
func (p Point2D) CircleIntersection(p2 Point2D, r float64) (Point2D, Point2D, bool) {
	if p == p2 {
		return Point2D{}, Point2D{}, false
	}
	x1, y1, x2, y2 := float64(p.X), float64(p.Y), float64(p2.X), float64(p2.Y)
	half := math.Hypot(x2-x1, y2-y1) / 2
	if r < half {
		return Point2D{}, Point2D{}, false
	}

	// Midpoint, then the half-chord rotated by +-90 degrees
	mx, my := (x1+x2)/2, (y1+y2)/2
	stretch := math.Sqrt(r*r-half*half) / half
	vx, vy := (x2-x1)/2*stretch, (y2-y1)/2*stretch

	a := Point2D{X: float32(mx + vy), Y: float32(my - vx)}
	b := Point2D{X: float32(mx - vy), Y: float32(my + vx)}
	return a, b, true
}

// Mul scales the vector.
func (v Vec2D) Mul(s float32) Vec2D {
	return Vec2D{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector length.
func (v Vec2D) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Centroid returns the mean position of points, which must not be empty.
func Centroid(points []Point2D) Point2D {
	var x, y float64
	for _, p := range points {
		x += float64(p.X)
		y += float64(p.Y)
	}
	n := float64(len(points))
	return Point2D{X: float32(x / n), Y: float32(y / n)}
}
