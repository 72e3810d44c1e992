package smallmat

// DefaultTolerance is the absolute per-element tolerance used by tests and
// tools when none is given.
const DefaultTolerance = 1e-5

// closeTo reports whether |a-b| <= delta.
func closeTo(a, b, delta float32) bool { return Abs(a-b) <= delta }

// CloseTo reports whether every element of v is within delta of w.
func (v Vec2) CloseTo(w Vec2, delta float32) bool {
	return closeTo(v[0], w[0], delta) && closeTo(v[1], w[1], delta)
}

// CloseTo reports whether every element of v is within delta of w.
func (v Vec3) CloseTo(w Vec3, delta float32) bool {
	return closeTo(v[0], w[0], delta) && closeTo(v[1], w[1], delta) && closeTo(v[2], w[2], delta)
}

// CloseTo reports whether every element of m is within delta of n.
func (m Mat2) CloseTo(n Mat2, delta float32) bool {
	return m[0].CloseTo(n[0], delta) && m[1].CloseTo(n[1], delta)
}

// CloseTo reports whether every element of m is within delta of n.
func (m Mat3) CloseTo(n Mat3, delta float32) bool {
	return m[0].CloseTo(n[0], delta) && m[1].CloseTo(n[1], delta) && m[2].CloseTo(n[2], delta)
}

// MaxAbsDiff returns the largest element-wise |m-n|.
func (m Mat3) MaxAbsDiff(n Mat3) float32 {
	var worst float32
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			if d := Abs(m[c][r] - n[c][r]); d > worst {
				worst = d
			}
		}
	}
	return worst
}

// IsOrthogonal reports whether m·mᵗ is within delta of the identity.
func (m Mat3) IsOrthogonal(delta float32) bool {
	return m.Mul(m.T()).CloseTo(Identity3(), delta)
}

// IsRotation reports whether m is orthogonal within delta and det(m) ≈ +1.
func (m Mat3) IsRotation(delta float32) bool {
	return m.IsOrthogonal(delta) && closeTo(m.Det(), 1, 3*delta)
}
