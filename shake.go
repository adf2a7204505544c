package keccak

import (
	"fmt"
	"io"
)

// Shake is a SHAKE128 or SHAKE256 extendable-output instance. The zero value
// is not usable; construct one with NewShake.
//
// Output is a single stream: Squeeze(n1) followed by Squeeze(n2) yields the
// same bytes as one Squeeze(n1+n2).
type Shake struct {
	sponge      sponge
	level       int
	outputBytes int
}

var _ io.Reader = (*Shake)(nil)

// NewShake returns a SHAKE instance at 128 or 256 bits. outputBytes is the
// length Digest produces; Squeeze may request any positive length.
func NewShake(level, outputBytes int) (*Shake, error) {
	if outputBytes <= 0 {
		return nil, fmt.Errorf("%w: output length %d", ErrInvalidParameter, outputBytes)
	}
	s, err := VariantSHAKE.newSponge(level)
	if err != nil {
		return nil, err
	}
	return &Shake{sponge: s, level: level, outputBytes: outputBytes}, nil
}

// Absorb feeds p into the XOF. It fails with ErrUsage after Finalize.
func (s *Shake) Absorb(p []byte) error {
	return s.sponge.absorb(p)
}

// Finalize pads and permutes the state. It must be called exactly once.
func (s *Shake) Finalize() error {
	return s.sponge.finalize()
}

// Squeeze returns the next n bytes of output.
func (s *Shake) Squeeze(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: output length %d", ErrInvalidParameter, n)
	}
	out := make([]byte, n)
	if err := s.sponge.squeeze(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Digest squeezes the construction-time output length. Like Squeeze it
// advances the stream.
func (s *Shake) Digest() ([]byte, error) {
	return s.Squeeze(s.outputBytes)
}

// Read squeezes len(p) bytes into p. It fails with ErrUsage before Finalize.
func (s *Shake) Read(p []byte) (int, error) {
	if err := s.sponge.squeeze(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Size returns the construction-time output length in bytes.
func (s *Shake) Size() int { return s.outputBytes }

// Rate returns the number of bytes absorbed or squeezed per permutation.
func (s *Shake) Rate() int { return s.sponge.rate }

// Level returns the security level in bits.
func (s *Shake) Level() int { return s.level }
