package closed

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/nikts27/thesis-rover-planner/state"
)

// bloomBits and bloomK size a fixed, generously-oversized Bloom filter:
// at these caps, a closed set can hold on the order of a few hundred
// thousand distinct fingerprints before the false-positive rate climbs
// high enough to matter for the fast-reject path (a false positive here
// only costs one extra exact-map lookup; it can never cause an
// incorrect "already seen" verdict, since Insert always falls through
// to the exact map).
const (
	bloomBits = 1 << 20 // 1Mi bits = 128 KiB
	bloomK    = 4
)

// bloomFilter is a small in-package k-hash Bloom filter over uint64
// words, seeded with hash/maphash. No third-party Bloom filter
// implementation appears anywhere in the retrieval pack (see
// DESIGN.md), so this one piece is hand-rolled; it is purely a
// fast-reject optimization and Set never trusts it for a positive
// answer.
type bloomFilter struct {
	bits  []uint64
	seeds [bloomK]maphash.Seed
}

func newBloomFilter() *bloomFilter {
	bf := &bloomFilter{bits: make([]uint64, bloomBits/64)}
	for i := range bf.seeds {
		bf.seeds[i] = maphash.MakeSeed()
	}
	return bf
}

func (bf *bloomFilter) hashes(fp Fingerprint) [bloomK]uint64 {
	var buf [fingerprintBytesLen]byte
	fp.appendBytes(buf[:0])
	var out [bloomK]uint64
	for i, seed := range bf.seeds {
		var h maphash.Hash
		h.SetSeed(seed)
		h.Write(buf[:])
		out[i] = h.Sum64() % bloomBits
	}
	return out
}

// Add records fp's presence in the filter.
func (bf *bloomFilter) Add(fp Fingerprint) {
	for _, bit := range bf.hashes(fp) {
		bf.bits[bit/64] |= 1 << (bit % 64)
	}
}

// MightContain reports whether fp may have been added before. A false
// result is certain; a true result may be a false positive.
func (bf *bloomFilter) MightContain(fp Fingerprint) bool {
	for _, bit := range bf.hashes(fp) {
		if bf.bits[bit/64]&(1<<(bit%64)) == 0 {
			return false
		}
	}
	return true
}

// fingerprintBytesLen is the exact byte length appendBytes writes,
// sized so hashes can stack-allocate its scratch buffer.
const fingerprintBytesLen = 8*state.MaxRovers /* Positions+Energy packed below */ +
	8*state.MaxRovers + // Energy
	4 + 4 + // SoilAnalysis, RockAnalysis
	4*state.MaxRovers + // HaveImage
	4*5 + // five waypoint bitmaps
	4 + 4 + 4 + // CameraCalibrated, StoreFull, ObjectiveCommImage
	1 + 8 // ChannelFree, Recharges

// appendBytes writes a deterministic byte encoding of fp to buf and
// returns the result, used only to feed the Bloom filter's hashes.
func (fp Fingerprint) appendBytes(buf []byte) []byte {
	var tmp [8]byte
	for _, v := range fp.Positions {
		binary.LittleEndian.PutUint64(tmp[:], uint64(v))
		buf = append(buf, tmp[:]...)
	}
	for _, v := range fp.Energy {
		binary.LittleEndian.PutUint64(tmp[:], uint64(v))
		buf = append(buf, tmp[:]...)
	}
	buf = appendUint32(buf, uint32(fp.SoilAnalysis))
	buf = appendUint32(buf, uint32(fp.RockAnalysis))
	for _, v := range fp.HaveImage {
		buf = appendUint32(buf, v)
	}
	buf = appendUint32(buf, uint32(fp.WaypointSoilSample))
	buf = appendUint32(buf, uint32(fp.WaypointRockSample))
	buf = appendUint32(buf, uint32(fp.WaypointCommSoil))
	buf = appendUint32(buf, uint32(fp.WaypointCommRock))
	buf = appendUint32(buf, uint32(fp.WaypointInSun))
	buf = appendUint32(buf, uint32(fp.CameraCalibrated))
	buf = appendUint32(buf, uint32(fp.StoreFull))
	buf = appendUint32(buf, uint32(fp.ObjectiveCommImage))
	if fp.ChannelFree {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	binary.LittleEndian.PutUint64(tmp[:], uint64(fp.Recharges))
	buf = append(buf, tmp[:]...)
	return buf
}

func appendUint32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}
