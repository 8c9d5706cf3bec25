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

package resample_test

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/a-downing/atari2600/hardware/clocks"
	"github.com/a-downing/atari2600/hardware/tia"
	"github.com/a-downing/atari2600/hardware/tia/audio/resample"
)

func TestResampleConstantValueProducesFlatDC(t *testing.T) {
	windowCycles := uint32(clocks.NTSC_TIA * 1e6) // one second
	samples := []tia.AudioSample{{Value: 248, Cycles: 0}}

	r := resample.NewResampler(8000)
	buf := r.Resample(samples, windowCycles)

	require.Equal(t, 8000, len(buf.Data))
	for _, v := range buf.Data {
		require.InDelta(t, (248.0-128)/128, v, 1e-6)
	}
}

func TestResampleStepHalfwayThroughAveragesTheSample(t *testing.T) {
	sampleRate := 100
	cyclesPerSample := uint32(math.Ceil(clocks.NTSC_TIA * 1e6 / float64(sampleRate)))

	samples := []tia.AudioSample{
		{Value: 8, Cycles: 0},
		{Value: 248, Cycles: uint16(cyclesPerSample / 2)},
	}

	r := resample.NewResampler(sampleRate)
	buf := r.Resample(samples, cyclesPerSample)

	require.Len(t, buf.Data, 1)
	low := (8.0 - 128) / 128
	high := (248.0 - 128) / 128
	require.InDelta(t, (low+high)/2, buf.Data[0], 1e-3)
}

func TestStereoInterleavesChannels(t *testing.T) {
	r := resample.NewResampler(100)
	windowCycles := uint32(math.Ceil(clocks.NTSC_TIA * 1e6 / 100))

	left := r.Resample([]tia.AudioSample{{Value: 0, Cycles: 0}}, windowCycles)
	right := r.Resample([]tia.AudioSample{{Value: 255, Cycles: 0}}, windowCycles)

	stereo := resample.Stereo(left, right)
	require.Len(t, stereo.Data, 2)
	require.Equal(t, 2, stereo.Format.NumChannels)
	require.InDelta(t, left.Data[0], stereo.Data[0], 1e-9)
	require.InDelta(t, right.Data[0], stereo.Data[1], 1e-9)
}

func TestMonoAveragesChannels(t *testing.T) {
	r := resample.NewResampler(100)
	windowCycles := uint32(math.Ceil(clocks.NTSC_TIA * 1e6 / 100))

	left := r.Resample([]tia.AudioSample{{Value: 0, Cycles: 0}}, windowCycles)
	right := r.Resample([]tia.AudioSample{{Value: 255, Cycles: 0}}, windowCycles)

	mixed := resample.Mono(left, right)
	require.Len(t, mixed.Data, 1)
	require.InDelta(t, (left.Data[0]+right.Data[0])/2, mixed.Data[0], 1e-9)
}

func TestToPCM16ClipsAndScales(t *testing.T) {
	r := resample.NewResampler(100)
	windowCycles := uint32(math.Ceil(clocks.NTSC_TIA * 1e6 / 100))
	buf := r.Resample([]tia.AudioSample{{Value: 255, Cycles: 0}}, windowCycles)

	pcm := resample.ToPCM16(buf)
	require.Len(t, pcm.Data, 1)
	require.LessOrEqual(t, pcm.Data[0], 32767)
	require.GreaterOrEqual(t, pcm.Data[0], -32767)
}

func TestWriteWAVProducesRIFFHeader(t *testing.T) {
	r := resample.NewResampler(8000)
	windowCycles := uint32(math.Ceil(clocks.NTSC_TIA * 1e6 / 8000 * 10))
	buf := r.Resample([]tia.AudioSample{{Value: 128, Cycles: 0}}, windowCycles)
	pcm := resample.ToPCM16(buf)

	f, err := os.CreateTemp(t.TempDir(), "*.wav")
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, resample.WriteWAV(f, pcm))

	_, err = f.Seek(0, 0)
	require.NoError(t, err)
	header := make([]byte, 4)
	_, err = f.Read(header)
	require.NoError(t, err)
	require.Equal(t, "RIFF", string(header))
}
