package core

import (
	"errors"
	"fmt"
	"math"
)

// nearZeroTolerance is the per-component magnitude below which a vector counts as zero
const nearZeroTolerance = 1e-8

// ErrZeroLength is the panic value used when a zero-length vector is normalized
var ErrZeroLength = errors.New("cannot normalize zero-length vector")

// Vec3 represents a 3D vector. It doubles as a point, a direction and an RGB color.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return v.Multiply(1 / scalar)
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// AddAssign adds other to v in place
func (v *Vec3) AddAssign(other Vec3) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// MultiplyAssign scales v in place
func (v *Vec3) MultiplyAssign(scalar float64) {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
}

// DivideAssign divides v in place
func (v *Vec3) DivideAssign(scalar float64) {
	v.MultiplyAssign(1 / scalar)
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Index returns the i-th component (0=X, 1=Y, 2=Z)
func (v Vec3) Index(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("vec3 index out of range: %d", i))
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// NearZero reports whether every component is within 1e-8 of zero
func (v Vec3) NearZero() bool {
	return math.Abs(v.X) < nearZeroTolerance &&
		math.Abs(v.Y) < nearZeroTolerance &&
		math.Abs(v.Z) < nearZeroTolerance
}

// UnitVector returns v scaled to length 1.
// Panics with ErrZeroLength if v has zero length.
func (v Vec3) UnitVector() Vec3 {
	length := v.Length()
	if length == 0 {
		panic(ErrZeroLength)
	}
	return v.Divide(length)
}

// Normalize returns a unit vector in the same direction, or the zero vector if v is zero
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Lerp linearly interpolates from v to other by t
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return v.Multiply(1.0 - t).Add(other.Multiply(t))
}

// String formats the vector as "x y z"
func (v Vec3) String() string {
	return fmt.Sprintf("%g %g %g", v.X, v.Y, v.Z)
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
