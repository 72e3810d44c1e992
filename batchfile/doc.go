// Package batchfile stores a batch buffer (a []float32 of column-major 3×3
// blocks) in a small self-describing binary container.
//
// Layout (little-endian):
//
//	off  size  field
//	0    4     magic "P3BF"
//	4    2     version (1)
//	6    1     compression: 0 none, 1 zstd, 2 lz4
//	7    1     reserved, zero
//	8    8     block count
//	16   8     raw payload size in bytes (blocks·36)
//	24   8     stored payload size in bytes
//	32   8     xxh3-64 of the raw payload
//	40   ...   payload, compressed as declared
//
// The raw payload is the float32 values in order, each as its IEEE-754 bits.
// Read verifies every header field and the checksum before returning data.
package batchfile
