package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	keccak "github.com/Giulio2002/keccaksponge"
)

type config struct {
	variant keccak.Variant
	bits    int
	length  int
}

func (c config) String() string {
	if c.variant == keccak.VariantSHAKE {
		return fmt.Sprintf("SHAKE%d/%d", c.bits, c.length)
	}
	return fmt.Sprintf("%s-%d", c.variant, c.bits)
}

// parseConfig validates the flags up front so no input is read for a
// configuration that cannot hash it.
func parseConfig(variant string, bits, length int) (config, error) {
	v, err := keccak.ParseVariant(variant)
	if err != nil {
		return config{}, err
	}
	if _, err := v.Rate(bits); err != nil {
		return config{}, err
	}
	if length < 0 {
		return config{}, fmt.Errorf("%w: output length %d", keccak.ErrInvalidParameter, length)
	}
	if v == keccak.VariantSHAKE && length == 0 {
		length = bits / 4
	}
	if v != keccak.VariantSHAKE && length != 0 && length != bits/8 {
		return config{}, fmt.Errorf("%w: %s-%d outputs %d bytes", keccak.ErrInvalidParameter, v, bits, bits/8)
	}
	return config{variant: v, bits: bits, length: length}, nil
}

// absorber is implemented by both *keccak.Digest and *keccak.Shake.
type absorber interface {
	Absorb([]byte) error
	Finalize() error
	Digest() ([]byte, error)
}

type absorbWriter struct {
	a absorber
}

func (w absorbWriter) Write(p []byte) (int, error) {
	if err := w.a.Absorb(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c config) newAbsorber() (absorber, error) {
	switch c.variant {
	case keccak.VariantKeccak:
		return keccak.NewKeccak(c.bits)
	case keccak.VariantSHA3:
		return keccak.NewSHA3(c.bits)
	case keccak.VariantSHAKE:
		return keccak.NewShake(c.bits, c.length)
	}
	return nil, fmt.Errorf("%w: variant %s", keccak.ErrInvalidParameter, c.variant)
}

// digestReader streams r through a fresh instance and returns its output.
func digestReader(c config, r io.Reader) ([]byte, int64, error) {
	a, err := c.newAbsorber()
	if err != nil {
		return nil, 0, err
	}
	n, err := io.Copy(absorbWriter{a}, r)
	if err != nil {
		return nil, n, err
	}
	if err := a.Finalize(); err != nil {
		return nil, n, err
	}
	out, err := a.Digest()
	return out, n, err
}

// errChecksumFailed summarizes per-file failures, which are logged as they
// happen.
var errChecksumFailed = errors.New("keccaksum: checksum failed")

// sumFiles writes one "hex  name" line per file. A file that fails is logged
// and skipped.
func sumFiles(w io.Writer, log *zap.SugaredLogger, c config, files []string) error {
	failed := 0
	for _, name := range files {
		out, n, err := sumFile(c, name)
		if err != nil {
			log.Errorw("checksum failed", "file", name, "err", err)
			failed++
			continue
		}
		log.Debugw("checksum", "file", name, "hash", c, "bytes", n)
		if _, err := fmt.Fprintf(w, "%x  %s\n", out, name); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", errChecksumFailed, failed, len(files))
	}
	return nil
}

func sumFile(c config, name string) ([]byte, int64, error) {
	if name == "-" {
		return digestReader(c, os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return digestReader(c, f)
}
