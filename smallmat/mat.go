package smallmat

// Mat2 is a 2×2 matrix stored as two column vectors.
//
// m[c][r] is the element in the c'th column and r'th row.
type Mat2 [2]Vec2

// Mat3 is a 3×3 matrix stored as three column vectors.
//
// m[c][r] is the element in the c'th column and r'th row.
type Mat3 [3]Vec3

// NewMat2 builds a Mat2 from four values in column-major order.
func NewMat2(x0, y0, x1, y1 float32) Mat2 {
	return Mat2{{x0, y0}, {x1, y1}}
}

// NewMat3 builds a Mat3 from nine values in column-major order.
func NewMat3(x0, y0, z0, x1, y1, z1, x2, y2, z2 float32) Mat3 {
	return Mat3{{x0, y0, z0}, {x1, y1, z1}, {x2, y2, z2}}
}

// Identity2 returns the 2×2 identity.
func Identity2() Mat2 { return Mat2{{1, 0}, {0, 1}} }

// Identity3 returns the 3×3 identity.
func Identity3() Mat3 { return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} }

// Diag2 returns the diagonal matrix with d on its diagonal.
func Diag2(d Vec2) Mat2 { return Mat2{{d[0], 0}, {0, d[1]}} }

// Diag3 returns the diagonal matrix with d on its diagonal.
func Diag3(d Vec3) Mat3 { return Mat3{{d[0], 0, 0}, {0, d[1], 0}, {0, 0, d[2]}} }

// Rotation2 returns the plane rotation [[c, -s], [s, c]] for cs = (c, s).
func Rotation2(cs Vec2) Mat2 { return Mat2{{cs[0], cs[1]}, {-cs[1], cs[0]}} }

// Outer returns the outer product u·vᵗ.
func Outer(u, v Vec3) Mat3 {
	return Mat3{u.Scale(v[0]), u.Scale(v[1]), u.Scale(v[2])}
}

// Diagonal returns the diagonal entries of m.
func (m Mat3) Diagonal() Vec3 { return Vec3{m[0][0], m[1][1], m[2][2]} }

// MulVec returns m·v.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1]))
}

// Mul returns m·n.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{m.MulVec(n[0]), m.MulVec(n[1])}
}

// T returns the transpose of m.
func (m Mat2) T() Mat2 {
	return Mat2{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

// MulVec returns m·v, accumulated column by column.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return m[0].Scale(v[0]).Add(m[1].Scale(v[1])).Add(m[2].Scale(v[2]))
}

// Mul returns m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	return Mat3{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2])}
}

// Add returns m + n.
func (m Mat3) Add(n Mat3) Mat3 {
	return Mat3{m[0].Add(n[0]), m[1].Add(n[1]), m[2].Add(n[2])}
}

// Sub returns m - n.
func (m Mat3) Sub(n Mat3) Mat3 {
	return Mat3{m[0].Sub(n[0]), m[1].Sub(n[1]), m[2].Sub(n[2])}
}

// Scale returns s·m.
func (m Mat3) Scale(s float32) Mat3 {
	return Mat3{m[0].Scale(s), m[1].Scale(s), m[2].Scale(s)}
}

// T returns the transpose of m.
func (m Mat3) T() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Det returns the determinant of m (cofactor expansion along row 0).
func (m Mat3) Det() float32 {
	return m[0][0]*(m[1][1]*m[2][2]-m[2][1]*m[1][2]) -
		m[1][0]*(m[0][1]*m[2][2]-m[2][1]*m[0][2]) +
		m[2][0]*(m[0][1]*m[1][2]-m[1][1]*m[0][2])
}

// Permute returns the matrix whose i'th column is column s[i] of m.
func (m Mat3) Permute(s Perm3) Mat3 {
	return Mat3{m[s[0]], m[s[1]], m[s[2]]}
}

// Load reads a column-major Mat3 from the first nine values of src.
// It panics if len(src) < 9.
func Load(src []float32) Mat3 {
	_ = src[8]
	return Mat3{
		{src[0], src[1], src[2]},
		{src[3], src[4], src[5]},
		{src[6], src[7], src[8]},
	}
}

// Store writes m in column-major order into the first nine values of dst.
// It panics if len(dst) < 9.
func (m Mat3) Store(dst []float32) {
	_ = dst[8]
	copy(dst[0:3], m[0][:])
	copy(dst[3:6], m[1][:])
	copy(dst[6:9], m[2][:])
}
