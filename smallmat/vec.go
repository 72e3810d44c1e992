package smallmat

import "math"

// Vec2 is a 2-element vector.
type Vec2 [2]float32

// Vec3 is a 3-element vector.
type Vec3 [3]float32

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v[0] + w[0], v[1] + w[1]} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v[0] - w[0], v[1] - w[1]} }

// Scale returns s·v.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{s * v[0], s * v[1]} }

// Dot returns the inner product of v and w.
func (v Vec2) Dot(w Vec2) float32 { return v[0]*w[0] + v[1]*w[1] }

// Length returns the Euclidean norm of v.
func (v Vec2) Length() float32 { return Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. A zero vector yields NaNs.
func (v Vec2) Normalize() Vec2 { return v.Scale(1 / v.Length()) }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Scale returns s·v.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{s * v[0], s * v[1], s * v[2]} }

// Dot returns the inner product of v and w.
func (v Vec3) Dot(w Vec3) float32 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float32 { return Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. A zero vector yields NaNs;
// callers guard near-zero inputs themselves.
func (v Vec3) Normalize() Vec3 { return v.Scale(1 / v.Length()) }

// Sqrt returns the float32 square root of x, correctly rounded.
func Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// Abs returns |x|.
func Abs(x float32) float32 { return math.Float32frombits(math.Float32bits(x) &^ (1 << 31)) }
