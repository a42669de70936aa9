package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source is a single-owner pseudo random stream. It exposes both numeric
// draws and raw bytes from the same ChaCha8 state, so one seed reproduces
// every value a caller derives from it.
//
// A Source is not safe for concurrent use; build one per call.
type Source struct {
	*rand.Rand
	stream *rand.ChaCha8
}

// New returns a Source seeded from crypto/rand.
func New() *Source {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms.
		panic(err)
	}
	return FromSeed(seed)
}

// NewSeeded returns a deterministic Source for tests and replays.
func NewSeeded(seed uint64) *Source {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	return FromSeed(buf)
}

func FromSeed(seed [32]byte) *Source {
	stream := rand.NewChaCha8(seed)
	return &Source{
		Rand:   rand.New(stream),
		stream: stream,
	}
}

// Read fills p from the underlying stream. It never returns an error.
func (s *Source) Read(p []byte) (int, error) {
	return s.stream.Read(p)
}
