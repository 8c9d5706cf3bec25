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

// Package tia implements the Television Interface Adaptor: the chip that
// draws the player/missile/ball/playfield display, generates the two audio
// channels, and reports collisions. TIA runs at three times the CPU's clock
// rate; the VCS scheduler calls Cycle three times for every CPU.Step.
package tia

import (
	"github.com/a-downing/atari2600/errors"
	"github.com/a-downing/atari2600/hardware/tia/audio"
)

// NumScanlines and ClocksPerScanline size the raw colour-clock frame buffer.
// A real television free-runs well past the visible picture; this buffer
// covers the entire 262-line/228-clock NTSC frame so vertical sync timing
// quirks in unusual software are reproduced rather than clipped away.
const (
	NumScanlines     = 262
	ClocksPerScanline = 228
)

// AudioSample is one step of a channel's output waveform, tagged with the
// TIA clock count it was generated on so a resampler can place it on a
// continuous time axis.
type AudioSample = audio.Sample

// TIA is the chip itself.
type TIA struct {
	frame [ClocksPerScanline * NumScanlines]uint8
	gen   *audio.Generator

	draw     bool
	scanline uint16
	colorClock uint16
	ctr      uint16

	vblank uint8
	wsync  bool

	resmp0, resmp1 uint8
	vdelbl, vdelp0, vdelp1 uint8
	hmbl, hmm0, hmm1, hmp0, hmp1 uint8
	enabl, enabla, enam0, enam1 uint8
	resbl, resm0, resm1 uint16

	grp0, grp0a, grp1, grp1a uint8
	pf0, pf1, pf2            uint8
	refp0, refp1             uint8
	ctrlpf                   uint8

	colubk, colupf, colup0, colup1 uint8
	nusiz0, nusiz1                 uint8

	inpt4, inpt5 uint8

	cxppmm, cxblpf                     uint8
	cxm1fb, cxm0fb, cxp1fb, cxp0fb     uint8
	cxm1p, cxm0p                       uint8

	p0Cnt   *counter
	p0Pixel *graphicsCounter
	p1Cnt   *counter
	p1Pixel *graphicsCounter
}

// NewTIA returns a TIA in its post-power-on state.
func NewTIA() *TIA {
	return &TIA{
		resbl:   68,
		resm0:   68,
		resm1:   68,
		inpt4:   0x80,
		gen:     audio.NewGenerator(),
		p0Cnt:   newCounter(0),
		p1Cnt:   newCounter(0),
		p0Pixel: newGraphicsCounter(),
		p1Pixel: newGraphicsCounter(),
	}
}

// WSYNC reports whether the CPU should be held (RDY low) until the current
// scanline completes.
func (t *TIA) WSYNC() bool {
	return t.wsync
}

// Cycles returns the running colour-clock tick count, the same axis
// AudioSample.Cycles is timestamped on. A host resampling audio across
// frame boundaries snapshots this at each frame boundary to rebase drained
// samples onto a per-frame time origin.
func (t *TIA) Cycles() uint16 {
	return t.ctr
}

// Draw reports whether VSYNC has started a new frame since the last Drew
// call - the signal a host uses to know when to present the frame buffer.
func (t *TIA) Draw() bool {
	return t.draw
}

// Drew acknowledges the pending Draw signal.
func (t *TIA) Drew() {
	t.draw = false
}

// Frame returns the raw colour-clock buffer: NumScanlines rows of
// ClocksPerScanline colour-luminance byte values each, in NTSC palette
// index form. A host converts it to RGB via the television/palette package.
func (t *TIA) Frame() []uint8 {
	return t.frame[:]
}

// Input4 and Input5 drive the two player trigger input latches (INPT4,
// INPT5): bit 7 set means "not pressed", matching the real port's idle-high
// wiring.
func (t *TIA) Input4(value uint8) { t.inpt4 = value }
func (t *TIA) Input5(value uint8) { t.inpt5 = value }

// DrainAudio removes and returns all samples queued for channel ch (0 or 1)
// since the last call.
func (t *TIA) DrainAudio(ch int) []AudioSample {
	return t.gen.Drain(ch)
}

func (t *TIA) playfieldPixel(index uint16, reflect bool) bool {
	if reflect {
		switch {
		case index <= 7:
			return t.pf2&(uint8(1)<<uint(7-index)) != 0
		case index <= 15:
			return t.pf1&(uint8(1)<<uint(index-8)) != 0
		default:
			return t.pf0&(uint8(1)<<uint(7-(index-16))) != 0
		}
	}
	switch {
	case index <= 3:
		return t.pf0&(uint8(1)<<uint(index+4)) != 0
	case index <= 11:
		return t.pf1&(uint8(1)<<uint(7-(index-4))) != 0
	default:
		return t.pf2&(uint8(1)<<uint(index-12)) != 0
	}
}

// playerPixel2 decodes one bit of a player's graphics register. The caller
// passes the graphicsCounter value (8 for the leftmost pixel down to 1 for
// the rightmost) minus one, so pixel is the bit index unless REFPx mirrors it.
func (t *TIA) playerPixel2(grp, pixel, refp uint8) bool {
	if refp&(1<<3) == 0 {
		return grp&(1<<pixel) != 0
	}
	return grp&(1<<(7-pixel)) != 0
}

func playerPixelClockDiv(nusiz uint8) uint8 {
	switch nusiz & 0b111 {
	case 0b111:
		return 4
	case 0b101:
		return 2
	default:
		return 1
	}
}

// Cycle advances the chip by one colour clock: one third of a CPU cycle.
func (t *TIA) Cycle() {
	t.ctr++

	if t.colorClock == ClocksPerScanline {
		t.colorClock = 0
		t.scanline++
		t.wsync = false
	}

	if t.colorClock == 0 || t.colorClock == 114 {
		t.gen.Clock(t.ctr)
	}

	index := int(t.scanline)*ClocksPerScanline + int(t.colorClock)
	if index >= len(t.frame) {
		t.colorClock++
		return
	}

	if t.vblank&(1<<1) != 0 || t.colorClock < 68 {
		t.frame[index] = 0
		t.colorClock++
		return
	}

	x := t.colorClock - 68
	pfIndex := x / 4

	var pfPixel bool
	if pfIndex < 20 {
		pfPixel = t.playfieldPixel(pfIndex, false)
	} else {
		reflect := t.ctrlpf&0x01 != 0
		pfPixel = t.playfieldPixel(pfIndex-20, reflect)
	}

	t.p0Cnt.cycle()
	switch {
	case t.p0Cnt.compareDelayed(160, 1):
		t.p0Pixel.reset()
	case t.p0Cnt.compareDelayed(16, 1) && t.nusiz0&0b101 == 1:
		t.p0Pixel.reset()
	case t.p0Cnt.compareDelayed(32, 1) && t.nusiz0&0b110 == 2:
		t.p0Pixel.reset()
	case t.p0Cnt.compareDelayed(64, 1) && t.nusiz0&0b101 == 4:
		t.p0Pixel.reset()
	}
	if t.p0Cnt.compare(160) {
		t.p0Cnt.set(0)
	}

	p0PixelBit := t.p0Pixel.cycle(playerPixelClockDiv(t.nusiz0))
	var p0Pixel bool
	if p0PixelBit != 0 {
		grp := t.grp0
		if t.vdelp0 != 0 {
			grp = t.grp0a
		}
		p0Pixel = t.playerPixel2(grp, p0PixelBit-1, t.refp0)
	}

	t.p1Cnt.cycle()
	switch {
	case t.p1Cnt.compareDelayed(160, 1):
		t.p1Pixel.reset()
	case t.p1Cnt.compareDelayed(16, 1) && t.nusiz1&0b101 == 1:
		t.p1Pixel.reset()
	case t.p1Cnt.compareDelayed(32, 1) && t.nusiz1&0b110 == 2:
		t.p1Pixel.reset()
	case t.p1Cnt.compareDelayed(64, 1) && t.nusiz1&0b101 == 4:
		t.p1Pixel.reset()
	}
	if t.p1Cnt.compare(160) {
		t.p1Cnt.set(0)
	}

	p1PixelBit := t.p1Pixel.cycle(playerPixelClockDiv(t.nusiz1))
	var p1Pixel bool
	if p1PixelBit != 0 {
		grp := t.grp1
		if t.vdelp1 != 0 {
			grp = t.grp1a
		}
		p1Pixel = t.playerPixel2(grp, p1PixelBit-1, t.refp1)
	}

	var color *uint8
	set := func(v uint8) { color = &v }

	ballSize := uint8(1) << ((t.ctrlpf >> 4) & 0b11)

	if t.ctrlpf&(1<<2) != 0 && pfPixel {
		set(t.colupf)
	} else if p0Pixel || p1Pixel {
		if p1Pixel {
			set(t.colup1)
		}
		if p0Pixel {
			set(t.colup0)
		}
	} else if pfPixel {
		set(t.colupf)
	}

	blEnable := t.enabl != 0
	if t.vdelbl != 0 {
		blEnable = t.enabla != 0
	}
	blPixel := t.colorClock >= t.resbl && t.colorClock < t.resbl+uint16(ballSize) && blEnable

	// While its RESMP bit is set, the missile doesn't hold a fixed position
	// at all: the real TIA continuously re-derives it from the
	// corresponding player's counter so the missile stays centered on the
	// player (used by ROMs that draw a "fat" player out of missile+player
	// together). missileCenterOffset approximates the centering distance
	// as half an unstretched player's 8-pixel width.
	const missileCenterOffset = 4
	if t.resmp0 != 0 {
		t.resm0 = modularAdd(t.p0Cnt.get(), missileCenterOffset, 160)
	}
	if t.resmp1 != 0 {
		t.resm1 = modularAdd(t.p1Cnt.get(), missileCenterOffset, 160)
	}

	m0Pixel := t.colorClock == t.resm0 && t.enam0 != 0
	m1Pixel := t.colorClock == t.resm1 && t.enam1 != 0

	if color == nil && blPixel {
		set(t.colupf)
	}
	if color == nil && m0Pixel {
		set(t.colup0)
	}
	if color == nil && m1Pixel {
		set(t.colup1)
	}

	if color != nil {
		t.frame[index] = *color
	} else {
		t.frame[index] = t.colubk
	}

	if p0Pixel && p1Pixel {
		t.cxppmm |= 1 << 7
	}
	if m0Pixel && m1Pixel {
		t.cxppmm |= 1 << 6
	}
	if blPixel && pfPixel {
		t.cxblpf |= 1 << 7
	}
	if m1Pixel && pfPixel {
		t.cxm1fb |= 1 << 7
	}
	if m1Pixel && blPixel {
		t.cxm1fb |= 1 << 6
	}
	if m0Pixel && pfPixel {
		t.cxm0fb |= 1 << 7
	}
	if m0Pixel && blPixel {
		t.cxm0fb |= 1 << 6
	}
	if p1Pixel && pfPixel {
		t.cxp1fb |= 1 << 7
	}
	if p1Pixel && blPixel {
		t.cxp1fb |= 1 << 6
	}
	if p0Pixel && pfPixel {
		t.cxp0fb |= 1 << 7
	}
	if p0Pixel && blPixel {
		t.cxp0fb |= 1 << 6
	}
	if m1Pixel && p0Pixel {
		t.cxm1p |= 1 << 7
	}
	if m1Pixel && p1Pixel {
		t.cxm1p |= 1 << 6
	}
	if m0Pixel && p1Pixel {
		t.cxm0p |= 1 << 7
	}
	if m0Pixel && p0Pixel {
		t.cxm0p |= 1 << 6
	}

	t.colorClock++
	if t.colorClock == ClocksPerScanline {
		t.wsync = false
	}
}

// Read implements memory.chipBus.
func (t *TIA) Read(addr uint16) (uint8, error) {
	switch addr & 0x108f {
	case 0x000f, 0x000e:
		return 0, nil
	case 0x000d:
		return t.inpt5, nil
	case 0x000c:
		return t.inpt4, nil
	case 0x000b, 0x000a, 0x0009, 0x0008:
		return 0, nil
	case 0x0007:
		return t.cxppmm, nil
	case 0x0006:
		return t.cxblpf, nil
	case 0x0005:
		return t.cxm1fb, nil
	case 0x0004:
		return t.cxm0fb, nil
	case 0x0003:
		return t.cxp1fb, nil
	case 0x0002:
		return t.cxp0fb, nil
	case 0x0001:
		return t.cxm1p, nil
	case 0x0000:
		return t.cxm0p, nil
	default:
		return 0, errors.Errorf(errors.TIAUnmappedRead, addr)
	}
}

func hmoveDelta(resp uint16, hmRaw uint8) uint16 {
	hm := hmRaw >> 4
	if hm&(1<<3) == 0 {
		return resp - uint16(hm)
	}
	return resp + (^(0xfff0 | uint16(hm)) + 1)
}

func hmoveDelta2(resp uint16, hmRaw uint8) uint16 {
	hm := hmRaw >> 4
	if hm&(1<<3) == 0 {
		return modularAdd(resp, uint16(hm), 160)
	}
	return modularSub(resp, ^(0xfff0|uint16(hm))+1, 160)
}

// Write implements memory.chipBus.
func (t *TIA) Write(addr uint16, value uint8) error {
	switch addr & 0x10bf {
	case 0x002c:
		t.cxppmm, t.cxblpf, t.cxm1fb, t.cxm0fb, t.cxp1fb, t.cxp0fb, t.cxm1p, t.cxm0p = 0, 0, 0, 0, 0, 0, 0, 0
	case 0x002b:
		t.hmbl, t.hmm0, t.hmm1, t.hmp0, t.hmp1 = 0, 0, 0, 0, 0
	case 0x002a:
		t.resbl = hmoveDelta(t.resbl, t.hmbl)
		t.resm0 = hmoveDelta(t.resm0, t.hmm0)
		t.resm1 = hmoveDelta(t.resm1, t.hmm1)
		t.p0Cnt.set(hmoveDelta2(t.p0Cnt.get(), t.hmp0))
		t.p1Cnt.set(hmoveDelta2(t.p1Cnt.get(), t.hmp1))
	case 0x0029:
		t.resmp1 = value & 2
	case 0x0028:
		t.resmp0 = value & 2
	case 0x0027:
		t.vdelbl = value & 1
	case 0x0026:
		t.vdelp1 = value & 1
	case 0x0025:
		t.vdelp0 = value & 1
	case 0x0024:
		t.hmbl = value
	case 0x0023:
		t.hmm1 = value
	case 0x0022:
		t.hmm0 = value
	case 0x0021:
		t.hmp1 = value
	case 0x0020:
		t.hmp0 = value
	case 0x001f:
		t.enabl = value & 2
	case 0x001e:
		t.enam1 = value & 2
	case 0x001d:
		t.enam0 = value & 2
	case 0x001c:
		t.grp1 = value
		t.grp0a = t.grp0
		t.enabla = t.enabl
	case 0x001b:
		t.grp0 = value
		t.grp1a = t.grp1
	case 0x001a:
		t.gen.SetAUDV(1, value)
	case 0x0019:
		t.gen.SetAUDV(0, value)
	case 0x0018:
		t.gen.SetAUDF(1, value)
	case 0x0017:
		t.gen.SetAUDF(0, value)
	case 0x0016:
		t.gen.SetAUDC(1, value)
	case 0x0015:
		t.gen.SetAUDC(0, value)
	case 0x0014:
		t.resbl = max16(t.colorClock, 68) + 3
	case 0x0013:
		t.resm1 = max16(t.colorClock, 68) + 5
	case 0x0012:
		t.resm0 = max16(t.colorClock, 68) + 5
	case 0x0011:
		t.p1Cnt.setDelayed(0, 4)
	case 0x0010:
		t.p0Cnt.setDelayed(0, 4)
	case 0x000f:
		t.pf2 = value
	case 0x000e:
		t.pf1 = value
	case 0x000d:
		t.pf0 = value
	case 0x000c:
		t.refp1 = value
	case 0x000b:
		t.refp0 = value
	case 0x000a:
		t.ctrlpf = value
	case 0x0009:
		t.colubk = value
	case 0x0008:
		t.colupf = value
	case 0x0007:
		t.colup1 = value
	case 0x0006:
		t.colup0 = value
	case 0x0005:
		t.nusiz1 = value
	case 0x0004:
		t.nusiz0 = value
	case 0x0003:
		t.colorClock = 0
	case 0x0002:
		t.wsync = true
	case 0x0001:
		t.vblank = value
	case 0x0000:
		if value&(1<<1) != 0 {
			t.scanline = 0
			t.draw = true
		}
	default:
		if addr&0x10bf >= 0x002d && addr&0x10bf <= 0x003f {
			return nil
		}
		return errors.Errorf(errors.TIAUnmappedWrite, addr)
	}
	return nil
}

func max16(a, b uint16) uint16 {
	if a > b {
		return a
	}
	return b
}
