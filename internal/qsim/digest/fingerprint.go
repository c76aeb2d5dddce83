// Package digest hashes density matrices so states can be compared, cached
// or logged without shipping 4^n numbers around.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"math"

	"github.com/jaskrrish/Go-QSim/internal/qsim/quantum"
	"golang.org/x/crypto/sha3"
)

// Method defines the hash function used for a fingerprint
type Method string

const (
	// SHA256Method uses SHA-256
	SHA256Method Method = "SHA256"
	// SHA512Method uses SHA-512
	SHA512Method Method = "SHA512"
	// SHA3_256Method uses SHA3-256
	SHA3_256Method Method = "SHA3-256"
	// SHA3_512Method uses SHA3-512
	SHA3_512Method Method = "SHA3-512"
)

// Fingerprinter hashes density matrices with a fixed method
type Fingerprinter struct {
	method Method
	// decimals > 0 rounds every component before hashing
	decimals int
}

// NewFingerprinter creates a fingerprinter hashing the exact IEEE-754 bits
func NewFingerprinter(method Method) *Fingerprinter {
	return &Fingerprinter{
		method: method,
	}
}

// NewRoundingFingerprinter creates a fingerprinter that rounds every real and
// imaginary component to the given number of decimals first, so states that
// agree up to floating noise hash equal
func NewRoundingFingerprinter(method Method, decimals int) *Fingerprinter {
	return &Fingerprinter{
		method:   method,
		decimals: decimals,
	}
}

// Fingerprint returns the hex digest of the register size and every element
// of ρ in row-major order
func (f *Fingerprinter) Fingerprint(rho *quantum.DensityMatrix) (string, error) {
	h, err := f.getHasher()
	if err != nil {
		return "", err
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(rho.NumQubits()))
	h.Write(buf[:])

	re, im := rho.Flatten()
	for i := range re {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(f.round(re[i])))
		h.Write(buf[:])
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(f.round(im[i])))
		h.Write(buf[:])
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func (f *Fingerprinter) round(v float64) float64 {
	if f.decimals <= 0 {
		return v
	}
	scale := math.Pow(10, float64(f.decimals))
	r := math.Round(v*scale) / scale
	// fold -0 into +0 so it hashes like zero
	if r == 0 {
		return 0
	}
	return r
}

// getHasher returns the hash function for the configured method
func (f *Fingerprinter) getHasher() (hash.Hash, error) {
	switch f.method {
	case SHA256Method:
		return sha256.New(), nil
	case SHA512Method:
		return sha512.New(), nil
	case SHA3_256Method:
		return sha3.New256(), nil
	case SHA3_512Method:
		return sha3.New512(), nil
	default:
		return nil, fmt.Errorf("unknown fingerprint method: %s", f.method)
	}
}
