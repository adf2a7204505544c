// Package keccak implements the Keccak sponge construction and the three hash
// families built on it: original Keccak (domain byte 0x01), SHA-3 (0x06) and
// the SHAKE extendable-output functions (0x1F).
//
// All variants share one pure-Go keccak-f[1600] permutation and differ only in
// rate, padding byte and output policy. Instances follow a one-way lifecycle:
// absorb any number of times, Finalize once, then read output. Driving an
// instance out of order returns ErrUsage.
//
// Go's crypto/sha3 and x/crypto/sha3 only expose Keccak at 256 and 512 bits.
// This package covers every level of every variant with the same engine.
package keccak

const (
	// rate256 is the sponge rate for Keccak-256: (1600 - 2*256) / 8 = 136 bytes.
	rate256 = 136
)

// Sum256 computes the Keccak-256 hash of data. Zero heap allocations.
func Sum256(data []byte) [32]byte {
	s := newSponge(rate256, VariantKeccak.PadByte())
	// A fresh sponge accepts one absorb and one finalize.
	_ = s.absorb(data)
	_ = s.finalize()
	return [32]byte(s.buf[:32])
}

// SumKeccak computes the original Keccak hash of data at the given level.
func SumKeccak(level int, data []byte) ([]byte, error) {
	return sum(VariantKeccak, level, data)
}

// SumSHA3 computes the SHA3 hash of data at the given level.
func SumSHA3(level int, data []byte) ([]byte, error) {
	return sum(VariantSHA3, level, data)
}

// SumShake computes n bytes of SHAKE output for data at the given level.
func SumShake(level int, data []byte, n int) ([]byte, error) {
	s, err := NewShake(level, n)
	if err != nil {
		return nil, err
	}
	if err := s.Absorb(data); err != nil {
		return nil, err
	}
	if err := s.Finalize(); err != nil {
		return nil, err
	}
	return s.Digest()
}

func sum(v Variant, level int, data []byte) ([]byte, error) {
	d, err := newDigest(v, level)
	if err != nil {
		return nil, err
	}
	if err := d.Absorb(data); err != nil {
		return nil, err
	}
	if err := d.Finalize(); err != nil {
		return nil, err
	}
	return d.Digest()
}

// Hasher is a streaming Keccak-256 hasher. Designed for stack allocation;
// the zero value is ready to use.
type Hasher struct {
	s sponge
}

func (h *Hasher) init() {
	if h.s.rate == 0 {
		h.s = newSponge(rate256, VariantKeccak.PadByte())
	}
}

// Reset resets the hasher to its initial state.
func (h *Hasher) Reset() {
	h.s = newSponge(rate256, VariantKeccak.PadByte())
}

// Write absorbs data into the hasher. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.init()
	// Hasher never finalizes its own sponge.
	_ = h.s.absorb(p)
	return len(p), nil
}

// Sum256 finalizes and returns the 32-byte Keccak-256 digest.
// Does not modify the hasher state.
func (h *Hasher) Sum256() [32]byte {
	h.init()
	s := h.s
	_ = s.finalize()
	return [32]byte(s.buf[:32])
}
