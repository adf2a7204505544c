package keccak

import (
	"fmt"
	"hash"
)

// Digest is a fixed-output Keccak or SHA-3 instance. The zero value is not
// usable; construct one with NewKeccak or NewSHA3.
//
// A Digest is absorbed into, finalized exactly once, then read with Digest.
type Digest struct {
	sponge  sponge
	variant Variant
	level   int
}

// NewKeccak returns an original-Keccak instance at 224, 256, 384 or 512 bits.
func NewKeccak(level int) (*Digest, error) {
	return newDigest(VariantKeccak, level)
}

// NewSHA3 returns a SHA3 instance at 224, 256, 384 or 512 bits.
func NewSHA3(level int) (*Digest, error) {
	return newDigest(VariantSHA3, level)
}

func newDigest(v Variant, level int) (*Digest, error) {
	s, err := v.newSponge(level)
	if err != nil {
		return nil, err
	}
	return &Digest{sponge: s, variant: v, level: level}, nil
}

// Absorb feeds p into the hash. It fails with ErrUsage after Finalize.
func (d *Digest) Absorb(p []byte) error {
	return d.sponge.absorb(p)
}

// Finalize pads and permutes the state. It must be called exactly once.
func (d *Digest) Finalize() error {
	return d.sponge.finalize()
}

// Digest returns the Size()-byte hash. Repeated calls return the same bytes.
func (d *Digest) Digest() ([]byte, error) {
	out := make([]byte, d.Size())
	if err := d.sponge.peek(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Squeeze is Digest with an explicit length, which must equal Size().
func (d *Digest) Squeeze(n int) ([]byte, error) {
	if n != d.Size() {
		return nil, fmt.Errorf("%w: %s-%d outputs %d bytes, not %d", ErrInvalidParameter, d.variant, d.level, d.Size(), n)
	}
	return d.Digest()
}

// Size returns the output length in bytes.
func (d *Digest) Size() int { return d.level / 8 }

// Rate returns the number of bytes absorbed per permutation.
func (d *Digest) Rate() int { return d.sponge.rate }

// Level returns the security level in bits.
func (d *Digest) Level() int { return d.level }

// Variant reports whether d is Keccak or SHA3.
func (d *Digest) Variant() Variant { return d.variant }

// NewHash returns a hash.Hash for a fixed-output variant. Sum does not
// finalize the underlying state, so writing may continue after it.
func NewHash(v Variant, level int) (hash.Hash, error) {
	if v == VariantSHAKE {
		return nil, fmt.Errorf("%w: %s has no fixed output size, use NewShake", ErrInvalidParameter, v)
	}
	s, err := v.newSponge(level)
	if err != nil {
		return nil, err
	}
	return &hashAdapter{sponge: s, size: level / 8}, nil
}

type hashAdapter struct {
	sponge sponge
	size   int
}

var _ hash.Hash = (*hashAdapter)(nil)

func (h *hashAdapter) Write(p []byte) (int, error) {
	if err := h.sponge.absorb(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (h *hashAdapter) Sum(b []byte) []byte {
	dup := h.sponge
	// dup is always absorbing here, so neither call can fail.
	_ = dup.finalize()
	var out [64]byte
	_ = dup.peek(out[:h.size])
	return append(b, out[:h.size]...)
}

func (h *hashAdapter) Reset()         { h.sponge.reset() }
func (h *hashAdapter) Size() int      { return h.size }
func (h *hashAdapter) BlockSize() int { return h.sponge.rate }
