// Package logid generates unique, time-ordered identifiers for action log
// entries. Ids sort in generation order (millisecond timestamp prefix)
// with a short random suffix to break ties.
package logid

import (
	"crypto/rand"
	"fmt"
	"time"
)

// Crockford's base32 alphabet, lowercase.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const suffixLen = 6

// RandSource allows deterministic randomness injection in tests.
type RandSource interface {
	Intn(n int) int
}

// Generator produces log ids with configurable randomness.
type Generator struct {
	randSource RandSource
}

// New returns a generator backed by crypto/rand.
func New() *Generator {
	return &Generator{}
}

// NewWithRandSource returns a generator using the provided source.
func NewWithRandSource(src RandSource) *Generator {
	return &Generator{randSource: src}
}

// Next returns an id for an entry created at the given time, in the form
// "<unix-millis>-<6 base32 chars>".
func (g *Generator) Next(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), g.suffix())
}

func (g *Generator) suffix() string {
	buf := make([]byte, suffixLen)
	if g.randSource != nil {
		for i := range buf {
			buf[i] = alphabet[g.randSource.Intn(len(alphabet))]
		}
		return string(buf)
	}

	if _, err := rand.Read(buf); err != nil {
		panic("logid: failed to read random bytes: " + err.Error())
	}
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return string(buf)
}
