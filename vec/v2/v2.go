// Package v2 implements 2D vector operations.
package v2

import "math"

// Vec is a 2D vector/point.
type Vec struct {
	X, Y float64
}

// Add returns a + b.
func (a Vec) Add(b Vec) Vec {
	return Vec{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec) Sub(b Vec) Vec {
	return Vec{a.X - b.X, a.Y - b.Y}
}

// MulScalar returns a * k.
func (a Vec) MulScalar(k float64) Vec {
	return Vec{a.X * k, a.Y * k}
}

// DivScalar returns a / k.
func (a Vec) DivScalar(k float64) Vec {
	return Vec{a.X / k, a.Y / k}
}

// AddScalar returns a + (k,k).
func (a Vec) AddScalar(k float64) Vec {
	return Vec{a.X + k, a.Y + k}
}

// Dot returns the dot product a . b.
func (a Vec) Dot(b Vec) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Length2 returns the squared Euclidean length of a.
func (a Vec) Length2() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Length returns the Euclidean length of a.
func (a Vec) Length() float64 {
	return math.Sqrt(a.Length2())
}

// Dist2 returns the squared Euclidean distance between a and b.
func (a Vec) Dist2(b Vec) float64 {
	return a.Sub(b).Length2()
}

// Dist returns the Euclidean distance between a and b.
func (a Vec) Dist(b Vec) float64 {
	return a.Sub(b).Length()
}

// Min returns the component-wise minimum of a and b.
func (a Vec) Min(b Vec) Vec {
	return Vec{math.Min(a.X, b.X), math.Min(a.Y, b.Y)}
}

// Max returns the component-wise maximum of a and b.
func (a Vec) Max(b Vec) Vec {
	return Vec{math.Max(a.X, b.X), math.Max(a.Y, b.Y)}
}

// Ceil returns a with both components rounded up.
func (a Vec) Ceil() Vec {
	return Vec{math.Ceil(a.X), math.Ceil(a.Y)}
}

// Sum returns the sum of two or more vectors.
func Sum(vs ...Vec) Vec {
	var s Vec
	for _, v := range vs {
		s = s.Add(v)
	}
	return s
}

// Centroid returns the arithmetic mean of vs.
func Centroid(vs ...Vec) Vec {
	return Sum(vs...).DivScalar(float64(len(vs)))
}
