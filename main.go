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

// Command atari2600 runs a ROM headlessly: atari2600 <rom-path> [-config
// path] [-wav path] [-frames N]. It drives hardware.VCS's scheduler to
// completion (SIGINT, EOF on stdin, or -frames exhausted), optionally
// capturing audio to a WAV file and reloading the ROM whenever the file on
// disk changes.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fsnotify/fsnotify"
	"github.com/go-audio/audio"

	"github.com/a-downing/atari2600/cartridgeloader"
	"github.com/a-downing/atari2600/config"
	"github.com/a-downing/atari2600/hardware"
	"github.com/a-downing/atari2600/hardware/memory/addresses"
	"github.com/a-downing/atari2600/hardware/riot/ports"
	"github.com/a-downing/atari2600/hardware/tia"
	"github.com/a-downing/atari2600/hardware/tia/audio/resample"
	"github.com/a-downing/atari2600/input"
	"github.com/a-downing/atari2600/logger"
)

func main() {
	if err := run(); err != nil {
		logger.Write(os.Stderr)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config.toml (default $HOME/.atari2600/config.toml)")
	wavPath := flag.String("wav", "", "write captured audio to this WAV file on exit")
	maxFrames := flag.Int("frames", 0, "stop after this many frames (0 = unbounded)")
	flag.Parse()

	if flag.NArg() < 1 {
		return fmt.Errorf("usage: atari2600 <rom-path> [-config path] [-wav path] [-frames N]")
	}
	romPath := flag.Arg(0)

	cfgPath := *configPath
	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		cfgPath = p
	}
	settings, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	vcs, loader, err := loadROM(romPath)
	if err != nil {
		return err
	}
	applySwitches(vcs, settings.Switches)
	if err := vcs.Reset(); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "main", "running %s (entry %#04x)", loader.Name, vcs.CPU.PC)
	logStartupSwitches(vcs)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(romPath); err != nil {
		return err
	}

	reader, err := input.NewReader(os.Stdin)
	if err != nil {
		return err
	}
	defer reader.Close()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)

	rec := newAudioRecorder(44100)
	joystick0 := ports.NewJoystick()
	frames := 0

runLoop:
	for {
		if err := vcs.Step(); err != nil {
			return fmt.Errorf("%v (cpu cycle %d)", err, vcs.CPU.Cycles())
		}

		if !vcs.TIA.Draw() {
			continue
		}
		vcs.TIA.Drew()
		rec.captureFrame(vcs.TIA)
		frames++
		if *maxFrames > 0 && frames >= *maxFrames {
			break
		}

		select {
		case key, ok := <-reader.Keys():
			if !ok {
				break runLoop
			}
			applyKey(&joystick0, settings.P0Keys, key)
			vcs.WriteJoystick(joystick0)
		case <-sigint:
			break runLoop
		case ev, ok := <-watcher.Events:
			if ok && ev.Op&fsnotify.Write == fsnotify.Write {
				if reloaded, _, err := loadROM(romPath); err == nil {
					vcs = reloaded
					applySwitches(vcs, settings.Switches)
					_ = vcs.Reset()
					logger.Logf(logger.Allow, "main", "reloaded %s after file change", romPath)
				}
			}
		default:
		}
	}

	if *wavPath != "" {
		f, err := os.Create(*wavPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := rec.writeWAV(f); err != nil {
			return err
		}
	}

	return nil
}

func loadROM(path string) (*hardware.VCS, *cartridgeloader.Loader, error) {
	loader, err := cartridgeloader.Load(path)
	if err != nil {
		return nil, nil, err
	}
	vcs, err := hardware.NewVCS(loader.Data)
	if err != nil {
		return nil, nil, err
	}
	return vcs, loader, nil
}

// logStartupSwitches peeks the console switches back off the bus (rather
// than trusting the config values directly) so the log reflects what the
// RIOT will actually report to the ROM, named via the same symbol table
// the teacher's disassembler used.
func logStartupSwitches(vcs *hardware.VCS) {
	addr, ok := addresses.ReadAddress["SWCHB"]
	if !ok {
		return
	}
	v, err := vcs.Mem.Peek(addr)
	if err != nil {
		return
	}
	logger.Logf(logger.Allow, "main", "%s = %#02x", addresses.ReadSymbols[addr], v)
}

func applySwitches(vcs *hardware.VCS, s config.Switches) {
	sw := ports.NewSwitches()
	sw.SetColor(s.Color)
	sw.SetP0Difficulty(s.P0Difficulty)
	sw.SetP1Difficulty(s.P1Difficulty)
	vcs.WriteSwitches(sw)
}

// applyKey maps a single raw terminal byte to a joystick direction using
// the first byte of the bound key string. A bound byte presses that
// direction and it stays pressed; a byte that matches no binding releases
// all four directions.
func applyKey(j *ports.Joystick, keys config.Keys, key byte) {
	switch key {
	case keys.Up[0]:
		j.SetP0Up(true)
	case keys.Down[0]:
		j.SetP0Down(true)
	case keys.Left[0]:
		j.SetP0Left(true)
	case keys.Right[0]:
		j.SetP0Right(true)
	default:
		j.SetP0Up(false)
		j.SetP0Down(false)
		j.SetP0Left(false)
		j.SetP0Right(false)
	}
}

// audioRecorder resamples each frame's audio independently (the TIA's
// colour-clock counter isn't frame-relative) and concatenates the results,
// so a capture spanning many frames never needs an absolute multi-frame
// timestamp.
type audioRecorder struct {
	sampleRate        int
	left, right       *resample.Resampler
	leftData, rightData []float64
}

func newAudioRecorder(sampleRate int) *audioRecorder {
	return &audioRecorder{
		sampleRate: sampleRate,
		left:       resample.NewResampler(sampleRate),
		right:      resample.NewResampler(sampleRate),
	}
}

func (r *audioRecorder) captureFrame(t *tia.TIA) {
	const windowCycles = tia.ClocksPerScanline * tia.NumScanlines

	rebase := func(samples []tia.AudioSample, start uint16) {
		for i := range samples {
			samples[i].Cycles = samples[i].Cycles - start
		}
	}

	frameStart := t.Cycles() - windowCycles
	left := t.DrainAudio(0)
	right := t.DrainAudio(1)
	rebase(left, frameStart)
	rebase(right, frameStart)

	r.leftData = append(r.leftData, r.left.Resample(left, windowCycles).Data...)
	r.rightData = append(r.rightData, r.right.Resample(right, windowCycles).Data...)
}

func (r *audioRecorder) writeWAV(f *os.File) error {
	n := len(r.leftData)
	if len(r.rightData) < n {
		n = len(r.rightData)
	}
	data := make([]float64, n*2)
	for i := 0; i < n; i++ {
		data[i*2] = r.leftData[i]
		data[i*2+1] = r.rightData[i]
	}

	stereo := &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: r.sampleRate},
		Data:   data,
	}
	return resample.WriteWAV(f, resample.ToPCM16(stereo))
}
