package geom

// Area returns the area of the triangle (p, q, r):
// 0.5 * ‖(q−p) × (r−p)‖.
//
// Degenerate (collinear or coincident) input yields a cross product near
// zero and so an area near zero; no error is signalled (§4.1, §7).
func Area(p, q, r Vec3) float64 {
	e1 := q.Sub(p)
	e2 := r.Sub(p)
	return 0.5 * e1.Cross(e2).Length()
}

// Normal returns the unit normal of the triangle (p, q, r):
// ((q−p) × (r−p)) / ‖·‖, with sign following the input winding order.
//
// A degenerate triangle (zero cross product) yields the zero vector as its
// finite sentinel, per §4.1.
func Normal(p, q, r Vec3) Vec3 {
	e1 := q.Sub(p)
	e2 := r.Sub(p)
	return e1.Cross(e2).Normalize()
}

// Cot returns the cotangent of the angle at corner p in the triangle
// (p, q, r): ((q−p)·(r−p)) / ‖(q−p) × (r−p)‖.
//
// A degenerate triangle (cross-product length below Epsilon) makes Cot
// return the finite sentinel 0 instead of diverging.
func Cot(p, q, r Vec3) float64 {
	e1 := q.Sub(p)
	e2 := r.Sub(p)
	cross := e1.Cross(e2).Length()
	if cross < Epsilon {
		// Finite sentinel: a vanishing cross product means the angle at p
		// is 0 or π, whose cotangent is unbounded. Returning 0 keeps
		// downstream sums finite instead of propagating +Inf/NaN (§4.1,
		// "returns a finite sentinel and sets no error").
		return 0
	}
	return e1.Dot(e2) / cross
}
