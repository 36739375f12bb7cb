package closed

import "github.com/nikts27/thesis-rover-planner/state"

// Set is the exact closed-set membership test: fingerprints are stored,
// not full States, per §4.3. A Bloom filter fast-rejects fingerprints
// that are certainly new before paying for the map lookup; correctness
// never depends on it, since a Bloom hit always falls through to the
// exact map.
type Set struct {
	seen  map[Fingerprint]struct{}
	bloom *bloomFilter
}

// NewSet returns an empty closed set.
func NewSet() *Set {
	return &Set{
		seen:  make(map[Fingerprint]struct{}, 4096),
		bloom: newBloomFilter(),
	}
}

// Insert computes s's fingerprint and records it if not already
// present. It reports whether the fingerprint was new (wasNew); the
// search driver discards the child if wasNew is false.
func (set *Set) Insert(s *state.State) (wasNew bool) {
	fp := Compute(s)
	if set.bloom.MightContain(fp) {
		if _, ok := set.seen[fp]; ok {
			return false
		}
	}
	set.seen[fp] = struct{}{}
	set.bloom.Add(fp)
	return true
}

// Len reports the number of distinct fingerprints recorded.
func (set *Set) Len() int { return len(set.seen) }
