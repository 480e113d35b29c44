// Package verifycode generates numeric email verification codes.
package verifycode

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"
)

const (
	minCode = 100000
	maxCode = 999999
)

// Generator draws six-digit codes uniformly from [100000, 999999].
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// Generate returns a fresh code, independent of previous calls.
func (g *Generator) Generate() (string, error) {
	n, err := rand.Int(g.rand, big.NewInt(maxCode-minCode+1))
	if err != nil {
		return "", fmt.Errorf("failed to read random code: %w", err)
	}
	return strconv.FormatInt(n.Int64()+minCode, 10), nil
}
