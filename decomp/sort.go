package decomp

import "github.com/katalvlaran/polar3/smallmat"

// sortNorms orders three norms descending with a three-element insertion
// network. Comparisons are strict, so equal norms keep their original order.
func sortNorms(l0, l1, l2 float32) smallmat.Perm3 {
	// [0, (1), 2]
	if l1 > l0 {
		// [1, 0, (2)]
		if l2 > l0 {
			// [1, (2), 0]
			if l2 > l1 {
				return smallmat.Perm3{2, 1, 0}
			}
			return smallmat.Perm3{1, 2, 0}
		}
		return smallmat.Perm3{1, 0, 2}
	}
	// [0, 1, (2)]
	if l2 > l1 {
		// [0, (2), 1]
		if l2 > l0 {
			return smallmat.Perm3{2, 0, 1}
		}
		return smallmat.Perm3{0, 2, 1}
	}
	return smallmat.IdentityPerm3
}

// SortColumns returns the permutation s ordering the columns of b by
// descending Euclidean norm, and the permuted matrix c = b.Permute(s).
// Ties keep the original column order.
func SortColumns(b smallmat.Mat3) (s smallmat.Perm3, c smallmat.Mat3) {
	s = sortNorms(b[0].Length(), b[1].Length(), b[2].Length())
	return s, b.Permute(s)
}
