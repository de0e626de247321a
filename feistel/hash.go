package feistel

// Hash returns the sdbm hash of p, the seed every round key is derived from.
//
//	h = c + (h << 6) + (h << 16) - h  (i.e. h*65599 + c, mod 2^64)
func Hash(p []byte) uint64 {
	var h uint64
	for _, c := range p {
		h = uint64(c) + (h << 6) + (h << 16) - h
	}
	return h
}
