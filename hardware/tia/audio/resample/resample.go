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

// Package resample turns a TIA audio channel's timestamped step-function
// samples into fixed-rate PCM. The TIA reports a value each time a
// channel's frequency divider reloads, tagged with that colour-clock tick;
// the value holds until the next report, and a resampler's
// job is to integrate that step function across each output sample's time
// window so a host audio device sees an ordinary, evenly-spaced waveform.
package resample

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/a-downing/atari2600/hardware/clocks"
	"github.com/a-downing/atari2600/hardware/tia"
)

// Resampler integrates one channel's tia.AudioSample stream into PCM at a
// fixed output sample rate.
type Resampler struct {
	clockHz    float64
	sampleRate int
}

// NewResampler builds a Resampler for the given output sample rate. Input
// timestamps (tia.AudioSample.Cycles) are assumed to be NTSC colour-clock
// ticks, the same axis the TIA itself counts on.
func NewResampler(sampleRate int) *Resampler {
	return &Resampler{
		clockHz:    clocks.NTSC_TIA * 1e6,
		sampleRate: sampleRate,
	}
}

// Resample integrates samples, which must be in ascending Cycles order and
// cover the window [0, windowCycles), into a mono audio.FloatBuffer of
// amplitude values in [-1, 1]. Each output sample is the time-weighted
// average of whatever step value was held during its slice of the window
// (zero-order hold), per SPEC_FULL.md's resampling design.
func (r *Resampler) Resample(samples []tia.AudioSample, windowCycles uint32) *audio.FloatBuffer {
	cyclesPerSample := r.clockHz / float64(r.sampleRate)
	n := int(float64(windowCycles) / cyclesPerSample)
	data := make([]float64, n)

	idx := 0
	var held uint8
	for out := 0; out < n; out++ {
		winStart := float64(out) * cyclesPerSample
		winEnd := winStart + cyclesPerSample

		var sum float64
		pos := winStart
		val := held
		for idx < len(samples) && float64(samples[idx].Cycles) < winEnd {
			evt := float64(samples[idx].Cycles)
			if evt > pos {
				sum += centered(val) * (evt - pos)
				pos = evt
			}
			val = samples[idx].Value
			idx++
		}
		if pos < winEnd {
			sum += centered(val) * (winEnd - pos)
		}
		held = val
		data[out] = sum / cyclesPerSample
	}

	return &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: r.sampleRate},
		Data:   data,
	}
}

func centered(v uint8) float64 {
	return (float64(v) - 128) / 128
}

// Stereo interleaves two independently resampled channels - TIA audio
// channel 0 to the left, channel 1 to the right - into a single stereo
// buffer. Buffers of differing length are truncated to the shorter one.
func Stereo(left, right *audio.FloatBuffer) *audio.FloatBuffer {
	n := len(left.Data)
	if len(right.Data) < n {
		n = len(right.Data)
	}

	data := make([]float64, n*2)
	for i := 0; i < n; i++ {
		data[i*2] = left.Data[i]
		data[i*2+1] = right.Data[i]
	}

	return &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: left.Format.SampleRate},
		Data:   data,
	}
}

// Mono averages two independently resampled channels into one.
func Mono(left, right *audio.FloatBuffer) *audio.FloatBuffer {
	n := len(left.Data)
	if len(right.Data) < n {
		n = len(right.Data)
	}

	data := make([]float64, n)
	for i := 0; i < n; i++ {
		data[i] = (left.Data[i] + right.Data[i]) / 2
	}

	return &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: left.Format.SampleRate},
		Data:   data,
	}
}

// ToPCM16 quantises a FloatBuffer of [-1, 1] samples into a 16-bit
// audio.IntBuffer, clipping out-of-range values.
func ToPCM16(buf *audio.FloatBuffer) *audio.IntBuffer {
	ints := make([]int, len(buf.Data))
	for i, v := range buf.Data {
		switch {
		case v > 1:
			v = 1
		case v < -1:
			v = -1
		}
		ints[i] = int(v * 32767)
	}

	return &audio.IntBuffer{
		Format:         buf.Format,
		Data:           ints,
		SourceBitDepth: 16,
	}
}

// WriteWAV encodes buf as a PCM WAV file.
func WriteWAV(w io.WriteSeeker, buf *audio.IntBuffer) error {
	enc := wav.NewEncoder(w, buf.Format.SampleRate, buf.SourceBitDepth, buf.Format.NumChannels, 1)
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
