package keccak

import (
	"bytes"
	"fmt"
	"hash"
	"testing"

	"golang.org/x/crypto/sha3"
)

type fixedCase struct {
	variant Variant
	level   int
	ref     func() hash.Hash
}

// fixedCases lists the fixed-output parameter sets x/crypto can check.
// Keccak-224 and Keccak-384 are covered by known answers instead.
var fixedCases = []fixedCase{
	{VariantKeccak, 256, sha3.NewLegacyKeccak256},
	{VariantKeccak, 512, sha3.NewLegacyKeccak512},
	{VariantSHA3, 224, sha3.New224},
	{VariantSHA3, 256, sha3.New256},
	{VariantSHA3, 384, sha3.New384},
	{VariantSHA3, 512, sha3.New512},
}

func patterned(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*7 + 3)
	}
	return data
}

// boundaryLengths hits every padding layout around the block edges.
func boundaryLengths(rate int) []int {
	return []int{0, 1, 7, 8, rate - 2, rate - 1, rate, rate + 1, 2*rate - 1, 2 * rate, 3*rate + 5}
}

func TestRates(t *testing.T) {
	for _, tc := range []struct {
		v     Variant
		level int
		rate  int
	}{
		{VariantKeccak, 224, 144},
		{VariantKeccak, 256, 136},
		{VariantKeccak, 384, 104},
		{VariantKeccak, 512, 72},
		{VariantSHA3, 224, 144},
		{VariantSHA3, 512, 72},
		{VariantSHAKE, 128, 168},
		{VariantSHAKE, 256, 136},
	} {
		got, err := tc.v.Rate(tc.level)
		if err != nil {
			t.Fatalf("%s-%d: %v", tc.v, tc.level, err)
		}
		if got != tc.rate {
			t.Errorf("%s-%d rate = %d, want %d", tc.v, tc.level, got, tc.rate)
		}
		if capacity := stateSize - got; capacity != 2*tc.level/8 {
			t.Errorf("%s-%d capacity = %d bytes", tc.v, tc.level, capacity)
		}
	}
}

func TestSpongeMatchesReference(t *testing.T) {
	for _, tc := range fixedCases {
		rate, _ := tc.variant.Rate(tc.level)
		for _, n := range boundaryLengths(rate) {
			t.Run(fmt.Sprintf("%s-%d/len=%d", tc.variant, tc.level, n), func(t *testing.T) {
				data := patterned(n)

				ref := tc.ref()
				ref.Write(data)
				want := ref.Sum(nil)

				got, err := sum(tc.variant, tc.level, data)
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(got, want) {
					t.Fatalf("got  %x\nwant %x", got, want)
				}
			})
		}
	}
}

func TestSpongeIncremental(t *testing.T) {
	data := patterned(1000)
	for _, v := range []Variant{VariantKeccak, VariantSHA3} {
		for _, level := range v.Levels() {
			want, err := sum(v, level, data)
			if err != nil {
				t.Fatal(err)
			}
			for _, chunk := range []int{1, 3, 8, 37, 71, 136, 167, 500} {
				d, err := newDigest(v, level)
				if err != nil {
					t.Fatal(err)
				}
				for i := 0; i < len(data); i += chunk {
					if err := d.Absorb(data[i:min(i+chunk, len(data))]); err != nil {
						t.Fatal(err)
					}
				}
				if err := d.Finalize(); err != nil {
					t.Fatal(err)
				}
				got, err := d.Digest()
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(got, want) {
					t.Errorf("%s-%d chunk=%d: %x, want %x", v, level, chunk, got, want)
				}
			}
		}
	}
}

func TestSpongeEmptyAbsorb(t *testing.T) {
	s := newSponge(rate256, VariantKeccak.PadByte())
	for range 5 {
		if err := s.absorb(nil); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.absorb([]byte{}); err != nil {
		t.Fatal(err)
	}
	if err := s.finalize(); err != nil {
		t.Fatal(err)
	}
	if got, want := [32]byte(s.buf[:32]), Sum256(nil); got != want {
		t.Fatalf("empty absorbs = %x, want %x", got, want)
	}
}

func TestSpongePadding(t *testing.T) {
	// With rate-1 bytes buffered the domain and terminal bits share a byte.
	const rate = 72
	s := newSponge(rate, VariantSHA3.PadByte())
	if err := s.absorb(make([]byte, rate-1)); err != nil {
		t.Fatal(err)
	}

	var want [25]uint64
	want[rate/8-1] = uint64(0x06|0x80) << 56
	keccakF1600(&want)

	if err := s.finalize(); err != nil {
		t.Fatal(err)
	}
	if s.a != want {
		t.Fatal("combined padding byte mismatch")
	}

	// An empty buffer pads a whole block.
	s = newSponge(rate, VariantSHA3.PadByte())
	want = [25]uint64{}
	want[0] = 0x06
	want[rate/8-1] ^= 0x80 << 56
	keccakF1600(&want)

	if err := s.finalize(); err != nil {
		t.Fatal(err)
	}
	if s.a != want {
		t.Fatal("full padding block mismatch")
	}
}

func TestSpongeSqueezeAcrossBlocks(t *testing.T) {
	for _, level := range []int{128, 256} {
		ref := sha3.NewShake128()
		if level == 256 {
			ref = sha3.NewShake256()
		}
		ref.Write([]byte("abc"))
		want := make([]byte, 1000)
		ref.Read(want)

		s, err := VariantSHAKE.newSponge(level)
		if err != nil {
			t.Fatal(err)
		}
		if err := s.absorb([]byte("abc")); err != nil {
			t.Fatal(err)
		}
		if err := s.finalize(); err != nil {
			t.Fatal(err)
		}
		got := make([]byte, 0, len(want))
		for _, n := range []int{1, s.rate - 1, s.rate, 3, 2 * s.rate, 1000} {
			n = min(n, len(want)-len(got))
			out := make([]byte, n)
			if err := s.squeeze(out); err != nil {
				t.Fatal(err)
			}
			got = append(got, out...)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("SHAKE%d squeezed stream mismatch", level)
		}
		if s.phase != squeezing {
			t.Fatalf("phase = %s, want squeezing", s.phase)
		}
	}
}

func TestSpongePhases(t *testing.T) {
	s := newSponge(rate256, VariantKeccak.PadByte())
	if s.phase != absorbing {
		t.Fatalf("new sponge phase = %s", s.phase)
	}
	var out [8]byte
	if err := s.squeeze(out[:]); err == nil {
		t.Fatal("squeeze before finalize succeeded")
	}
	if err := s.peek(out[:]); err == nil {
		t.Fatal("peek before finalize succeeded")
	}
	if err := s.finalize(); err != nil {
		t.Fatal(err)
	}
	if s.phase != finalized {
		t.Fatalf("phase = %s, want finalized", s.phase)
	}
	if err := s.absorb([]byte("x")); err == nil {
		t.Fatal("absorb after finalize succeeded")
	}
	if err := s.finalize(); err == nil {
		t.Fatal("second finalize succeeded")
	}

	s.reset()
	if s.phase != absorbing || s.n != 0 || s.a != [25]uint64{} {
		t.Fatal("reset did not restore a fresh sponge")
	}
	if s.rate != rate256 || s.dsbyte != 0x01 {
		t.Fatal("reset lost the sponge parameters")
	}
}
