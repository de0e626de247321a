package feistel

import "math/bits"

const roundMul = 0xA3B2C1

// mix is the round function: (value^key)*0xA3B2C1 rotated right by 23 bits.
// It is never inverted, the network structure undoes it.
func mix(value, key uint64) uint64 {
	return bits.RotateLeft64((value^key)*roundMul, -23)
}
