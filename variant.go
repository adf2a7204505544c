package keccak

import (
	"fmt"
	"slices"
	"strings"
)

// Variant selects the domain separation and output policy of a sponge.
type Variant uint8

const (
	// VariantKeccak is the original Keccak submission, as used by Ethereum.
	VariantKeccak Variant = iota + 1
	// VariantSHA3 is the FIPS 202 fixed-output hash.
	VariantSHA3
	// VariantSHAKE is the FIPS 202 extendable-output function.
	VariantSHAKE
)

var (
	fixedLevels = []int{224, 256, 384, 512}
	shakeLevels = []int{128, 256}
)

// PadByte returns the domain separation byte appended before the final
// permutation.
func (v Variant) PadByte() byte {
	switch v {
	case VariantKeccak:
		return 0x01
	case VariantSHA3:
		return 0x06
	case VariantSHAKE:
		return 0x1F
	}
	return 0
}

// Levels returns the security levels, in bits, that v accepts.
func (v Variant) Levels() []int {
	switch v {
	case VariantKeccak, VariantSHA3:
		return slices.Clone(fixedLevels)
	case VariantSHAKE:
		return slices.Clone(shakeLevels)
	}
	return nil
}

func (v Variant) String() string {
	switch v {
	case VariantKeccak:
		return "keccak"
	case VariantSHA3:
		return "sha3"
	case VariantSHAKE:
		return "shake"
	}
	return fmt.Sprintf("variant(%d)", uint8(v))
}

// ParseVariant maps "keccak", "sha3" or "shake" (any case) to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "keccak":
		return VariantKeccak, nil
	case "sha3", "sha-3":
		return VariantSHA3, nil
	case "shake":
		return VariantSHAKE, nil
	}
	return 0, fmt.Errorf("%w: unknown variant %q", ErrInvalidParameter, s)
}

// Rate returns the sponge rate in bytes for v at the given security level.
// The capacity is twice the level, so rate = 200 - 2*level/8.
func (v Variant) Rate(level int) (int, error) {
	if !slices.Contains(v.Levels(), level) {
		return 0, fmt.Errorf("%w: %s does not support %d-bit security", ErrInvalidParameter, v, level)
	}
	return stateSize - 2*(level/8), nil
}

func (v Variant) newSponge(level int) (sponge, error) {
	rate, err := v.Rate(level)
	if err != nil {
		return sponge{}, err
	}
	return newSponge(rate, v.PadByte()), nil
}
