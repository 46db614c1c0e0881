// Package seed turns a user seed, a UUID, or neither into the single
// pseudorandom stream that drives a generation run.
//
// A UUID takes precedence over a numeric seed. With neither, a fresh seed
// is drawn and reported back through [Source] so the run can be replayed.
// The stream is always passed explicitly; nothing in hexalith reads a
// global random source once a run has started.
package seed

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/utensils/hexalith/pkg/errors"
)

// Origin records where a resolved seed came from.
type Origin string

const (
	FromSeed   Origin = "seed"
	FromUUID   Origin = "uuid"
	FromRandom Origin = "random"
)

// Source is a resolved seed.
type Source struct {
	Seed   uint64
	Origin Origin
}

// Random reports whether the seed was drawn rather than supplied.
func (s Source) Random() bool { return s.Origin == FromRandom }

// Stream opens the pseudorandom stream for this seed.
func (s Source) Stream() *Stream { return New(s.Seed) }

// Derive resolves the seed for a run. A non-empty id must be a valid UUID;
// its 16 bytes are hashed into the seed space and override seed.
func Derive(seed *uint64, id string) (Source, error) {
	if id != "" {
		v, err := FromUUIDString(id)
		if err != nil {
			return Source{}, err
		}
		return Source{Seed: v, Origin: FromUUID}, nil
	}
	if seed != nil {
		return Source{Seed: *seed, Origin: FromSeed}, nil
	}
	return Source{Seed: rand.Uint64(), Origin: FromRandom}, nil
}

// FromUUIDString hashes a UUID into a seed.
func FromUUIDString(id string) (uint64, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeSeedDerivation, err, "invalid uuid %q", id)
	}
	return xxhash.Sum64(u[:]), nil
}
