package id

import (
	"io"

	crerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator draws version 4 UUIDs from an entropy stream. With a seeded
// stream the sequence of IDs is reproducible.
type UUIDGenerator struct {
	entropy io.Reader
}

// NewUUIDGenerator reads from entropy; a nil entropy falls back to crypto/rand.
func NewUUIDGenerator(entropy io.Reader) *UUIDGenerator {
	return &UUIDGenerator{entropy: entropy}
}

func (g *UUIDGenerator) NewID() (string, error) {
	if g == nil || g.entropy == nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", crerr.Wrap(err, "generate uuid")
		}
		return id.String(), nil
	}

	id, err := uuid.NewRandomFromReader(g.entropy)
	if err != nil {
		return "", crerr.Wrap(err, "read uuid entropy")
	}
	return id.String(), nil
}

// MustNewID returns a fresh ID, falling back to crypto/rand when the
// configured entropy stream fails.
func (g *UUIDGenerator) MustNewID() string {
	out, err := g.NewID()
	if err != nil {
		return uuid.NewString()
	}
	return out
}

// FromReader returns a v4 UUID drawn from entropy. It matches
// matchstats.IDFunc.
func FromReader(entropy io.Reader) string {
	return NewUUIDGenerator(entropy).MustNewID()
}
