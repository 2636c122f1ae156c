package fixedmath

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/big"

	xrand "golang.org/x/exp/rand"
)

// sampleOffset draws a uniformly random integer in [0, limit) using a
// process-local generator seeded from crypto/rand, then holds it fixed
// for the lifetime of the process (spec §3 "Lifecycle", §5
// "Shared-resource policy"). golang.org/x/exp/rand is used instead of
// math/rand so the draw does not disturb (or depend on) any global RNG
// state a caller may itself be seeding deterministically for its own
// simulation.
func sampleOffset(limit *big.Int) *big.Int {
	var seedBytes [8]byte
	if _, err := crand.Read(seedBytes[:]); err != nil {
		// crypto/rand failing is exceptionally rare (kernel entropy
		// source unavailable); fall back to a fixed seed rather than
		// panicking a pure-computation library.
		seedBytes = [8]byte{0x5, 0x3, 0x1, 0x4, 0x1, 0x5, 0x9, 0x2}
	}
	seed := binary.LittleEndian.Uint64(seedBytes[:])
	rng := xrand.New(xrand.NewSource(seed))
	return randomBigInt(rng, limit)
}

// randomBigInt draws a uniform value in [0, limit) from rng by rejection
// sampling over the smallest power-of-two-aligned byte range covering
// limit.
func randomBigInt(rng *xrand.Rand, limit *big.Int) *big.Int {
	if limit.Sign() <= 0 {
		return big.NewInt(0)
	}
	nBytes := (limit.BitLen() + 7) / 8
	if nBytes == 0 {
		nBytes = 1
	}
	buf := make([]byte, nBytes)
	for {
		for i := range buf {
			buf[i] = byte(rng.Uint32())
		}
		// Clear high bits above limit's bit length to keep the
		// rejection rate low.
		excess := nBytes*8 - limit.BitLen()
		if excess > 0 && excess < 8 {
			buf[0] &= byte(0xff >> excess)
		}
		candidate := new(big.Int).SetBytes(buf)
		if candidate.Cmp(limit) < 0 {
			return candidate
		}
	}
}
