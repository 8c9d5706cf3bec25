// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package random supplies pseudo-random bytes for power-on noise, the way a
// real VCS's RAM comes up in an unpredictable state. No package in this
// module calls it: RIOT RAM and the chip registers power on zeroed.
// Values are "rewindable": Rewindable(n) can be
// recomputed for any n directly from the current TV position, with no need
// to have generated 0..n-1 first, so a rewound/replayed emulation session
// reproduces the same power-on noise without replaying the RNG stream.
package random

import (
	"encoding/binary"
	"hash/maphash"
)

// zeroSeed is used only when ZeroSeed is set, so that two Random instances
// (as in a test, or a scripted deterministic run) agree on every value.
var zeroSeed = maphash.MakeSeed()

// TVState is the minimum view of the television's current position needed
// to vary the random stream by where in the frame it's requested from.
type TVState interface {
	Frame() int
	Scanline() int
	Clock() int
}

// Random is a rewindable pseudo-random byte source.
type Random struct {
	// ZeroSeed disables the TV-position-derived seed, for reproducible
	// tests.
	ZeroSeed bool

	tv   TVState
	seed maphash.Seed
}

// NewRandom returns a Random seeded from the process's entropy source. tv
// is consulted on every call to Rewindable so the stream also varies with
// playback position.
func NewRandom(tv TVState) *Random {
	return &Random{tv: tv, seed: maphash.MakeSeed()}
}

// Rewindable returns the nth pseudo-random byte for the current TV
// position. Calling it twice with the same n and the same TV position
// always returns the same byte.
func (r *Random) Rewindable(n int) uint8 {
	seed := r.seed
	var buf [12]byte
	if r.ZeroSeed {
		seed = zeroSeed
	} else {
		binary.LittleEndian.PutUint32(buf[0:4], uint32(r.tv.Frame()))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(r.tv.Scanline()))
		binary.LittleEndian.PutUint32(buf[8:12], uint32(r.tv.Clock()))
	}

	var h maphash.Hash
	h.SetSeed(seed)
	h.Write(buf[:])
	h.Write([]byte{byte(n), byte(n >> 8)})
	return uint8(h.Sum64())
}
