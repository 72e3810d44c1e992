package smallmat

import "fmt"

// String formats v as "[x, y]" with five decimals.
func (v Vec2) String() string { return fmt.Sprintf("[%.5f, %.5f]", v[0], v[1]) }

// String formats v as "[x, y, z]" with five decimals.
func (v Vec3) String() string { return fmt.Sprintf("[%.5f, %.5f, %.5f]", v[0], v[1], v[2]) }

// String formats p as "[i, j, k]".
func (p Perm3) String() string { return fmt.Sprintf("[%d, %d, %d]", p[0], p[1], p[2]) }

// String formats m one column per line.
func (m Mat2) String() string { return fmt.Sprintf("[%s,\n %s]", m[0], m[1]) }

// String formats m one column per line.
func (m Mat3) String() string { return fmt.Sprintf("[%s,\n %s,\n %s]", m[0], m[1], m[2]) }
