package util

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"github.com/pkg/errors"
)

// NewCSPRNG returns a slice of random bytes
func NewCSPRNG(nbytes int) ([]byte, error) {
	buf := make([]byte, nbytes)

	if _, err := rand.Read(buf); err != nil {
		return nil, errors.Wrap(err, "failed to read random bytes")
	}

	return buf, nil
}

// NewCSPRNGHex is a string wrapper for NewCSPRNG
func NewCSPRNGHex(nbytes int) (string, error) {
	bs, err := NewCSPRNG(nbytes)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(bs), nil
}

// RandomIndex returns a uniformly distributed integer in [0, n)
func RandomIndex(n int) (int, error) {
	if n <= 0 {
		return 0, errors.Errorf("invalid upper bound: %d", n)
	}

	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(err, "failed to generate random index")
	}

	return int(v.Int64()), nil
}
