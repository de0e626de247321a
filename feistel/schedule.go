package feistel

// Rounds is the number of Feistel rounds, one round key each.
const Rounds = 10

// lcg multiplier and increment of the key schedule.
const (
	scheduleMul = 1103515245
	scheduleInc = 12345
)

// RoundKeys is an ordered key schedule.
type RoundKeys [Rounds]uint64

// Expand derives the forward key schedule from seed. The first key is the
// seed itself, every following one is k[i-1]*1103515245 + 12345 mod 2^64.
func Expand(seed uint64) RoundKeys {
	var k RoundKeys
	k[0] = seed
	for i := 1; i < Rounds; i++ {
		k[i] = k[i-1]*scheduleMul + scheduleInc
	}
	return k
}

// Reverse returns the schedule in reverse order, used for decryption.
func (k RoundKeys) Reverse() RoundKeys {
	var r RoundKeys
	for i := range k {
		r[i] = k[Rounds-1-i]
	}
	return r
}
