package keccak

import (
	"encoding/binary"
	"fmt"
)

const (
	// stateSize is the permutation width in bytes (1600 bits).
	stateSize = 200

	// maxRate is the largest rate of any supported variant (SHAKE128).
	maxRate = 168
)

type phase uint8

const (
	absorbing phase = iota
	finalized
	squeezing
)

func (p phase) String() string {
	switch p {
	case absorbing:
		return "absorbing"
	case finalized:
		return "finalized"
	case squeezing:
		return "squeezing"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// sponge drives keccakF1600 over a byte stream. While absorbing, buf holds
// the n pending input bytes. Once finalized, buf holds the current rate-sized
// output block and n is the number of its bytes already handed out.
//
// A sponge is a plain value: copying it yields an independent instance.
type sponge struct {
	a      [25]uint64
	buf    [maxRate]byte
	n      int
	rate   int
	dsbyte byte
	phase  phase
}

func newSponge(rate int, dsbyte byte) sponge {
	return sponge{rate: rate, dsbyte: dsbyte}
}

// errUninitialized is returned for a sponge built without a constructor.
var errUninitialized = fmt.Errorf("%w: uninitialized instance", ErrUsage)

func (s *sponge) reset() {
	*s = newSponge(s.rate, s.dsbyte)
}

// absorb buffers p, permuting the state each time a full block is collected.
func (s *sponge) absorb(p []byte) error {
	if s.rate == 0 {
		return errUninitialized
	}
	if s.phase != absorbing {
		return fmt.Errorf("%w: absorb while %s", ErrUsage, s.phase)
	}

	if s.n > 0 {
		k := copy(s.buf[s.n:s.rate], p)
		s.n += k
		p = p[k:]
		if s.n < s.rate {
			return nil
		}
		s.absorbBlock(s.buf[:s.rate])
		s.n = 0
	}

	// Whole blocks skip the buffer.
	for len(p) >= s.rate {
		s.absorbBlock(p[:s.rate])
		p = p[s.rate:]
	}

	s.n = copy(s.buf[:], p)
	return nil
}

// finalize applies the multi-rate padding with the domain separation byte and
// runs the last absorbing permutation.
func (s *sponge) finalize() error {
	if s.rate == 0 {
		return errUninitialized
	}
	if s.phase != absorbing {
		return fmt.Errorf("%w: finalize while %s", ErrUsage, s.phase)
	}

	clear(s.buf[s.n:s.rate])
	s.buf[s.n] ^= s.dsbyte
	// With n == rate-1 this lands on the same byte as the domain bits.
	s.buf[s.rate-1] |= 0x80
	s.absorbBlock(s.buf[:s.rate])

	s.spill()
	s.phase = finalized
	return nil
}

// squeeze fills out with the next bytes of the output stream.
func (s *sponge) squeeze(out []byte) error {
	if s.rate == 0 {
		return errUninitialized
	}
	if s.phase == absorbing {
		return fmt.Errorf("%w: squeeze before finalize", ErrUsage)
	}
	s.phase = squeezing

	for len(out) > 0 {
		if s.n == s.rate {
			keccakF1600(&s.a)
			s.spill()
		}
		k := copy(out, s.buf[s.n:s.rate])
		s.n += k
		out = out[k:]
	}
	return nil
}

// peek copies the start of the first output block without advancing.
// len(out) must not exceed the rate.
func (s *sponge) peek(out []byte) error {
	if s.rate == 0 {
		return errUninitialized
	}
	if s.phase == absorbing {
		return fmt.Errorf("%w: digest before finalize", ErrUsage)
	}
	copy(out, s.buf[:len(out)])
	return nil
}

// absorbBlock XORs a rate-sized block into the state and permutes.
func (s *sponge) absorbBlock(block []byte) {
	xorIn(&s.a, block)
	keccakF1600(&s.a)
}

// spill writes the first rate bytes of the state into buf and rewinds the
// output cursor.
func (s *sponge) spill() {
	for i := 0; i < s.rate/8; i++ {
		binary.LittleEndian.PutUint64(s.buf[8*i:], s.a[i])
	}
	s.n = 0
}

// xorIn XORs data, whose length is a multiple of 8, into the leading lanes.
func xorIn(a *[25]uint64, data []byte) {
	for i := 0; i < len(data)>>3; i++ {
		a[i] ^= le64(data[8*i:])
	}
}

// le64 reads a little-endian uint64 from at least 8 bytes.
func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}
