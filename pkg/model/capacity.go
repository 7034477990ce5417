package model

// AlignedCapacity returns the storage capacity a growable array should hold
// for count live elements: the smallest multiple of 2^bucketBits that is at
// least count, with a floor of 1. Reallocation only happens when the
// aligned capacity of the new count differs from the current one, which is
// what lets Triangulation.Append and the PSLG's append and shrink helpers
// decide cheaply whether to grow/shrink the backing array.
func AlignedCapacity(count, bucketBits int) int {
	if count <= 0 {
		return 1
	}
	bucket := 1 << uint(bucketBits)
	aligned := ((count + bucket - 1) / bucket) * bucket
	if aligned == 0 {
		aligned = bucket
	}
	return aligned
}
