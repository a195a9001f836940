package core

import "math"

// Onb is an orthonormal basis {U, V, W} built around a normal W
type Onb struct {
	U, V, W Vec3
}

// NewOnb builds a right-handed orthonormal basis whose W axis is the given normal
func NewOnb(normal Vec3) Onb {
	w := normal.Normalize()

	// Cross against a helper axis that is not nearly parallel to w
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := w.Cross(a).Normalize()
	u := v.Cross(w)
	return Onb{U: u, V: v, W: w}
}

// Local transforms a vector from the (u, v, w) frame into world space
func (o Onb) Local(a Vec3) Vec3 {
	return o.U.Multiply(a.X).Add(o.V.Multiply(a.Y)).Add(o.W.Multiply(a.Z))
}
