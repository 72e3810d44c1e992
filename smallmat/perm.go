package smallmat

// Perm3 is an ordering of the indices {0, 1, 2}.
type Perm3 [3]int

// IdentityPerm3 keeps every column in place.
var IdentityPerm3 = Perm3{0, 1, 2}

// Valid reports whether p holds each of 0, 1 and 2 exactly once.
func (p Perm3) Valid() bool {
	var seen [3]bool
	for _, i := range p {
		if i < 0 || i > 2 || seen[i] {
			return false
		}
		seen[i] = true
	}
	return true
}

// Matrix returns the permutation matrix S with m.Mul(S) == m.Permute(p).
func (p Perm3) Matrix() Mat3 {
	var s Mat3
	for c, r := range p {
		s[c][r] = 1
	}
	return s
}
