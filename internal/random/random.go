package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Shuffler performs an unbiased in-place shuffle of n elements.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Secure returns a Shuffler backed by the operating system CSPRNG.
func Secure() Shuffler {
	return rand.New(cryptoSource{})
}

// Seeded returns a deterministic Shuffler for tests and replay.
func Seeded(seed [32]byte) Shuffler {
	return rand.New(rand.NewChaCha8(seed))
}

// Strings shuffles a copy of items.
func Strings(s Shuffler, items []string) []string {
	out := append([]string(nil), items...)
	s.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
