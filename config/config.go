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

// Package config loads the console's initial switch state and joystick key
// bindings from an optional TOML file, falling back to compiled-in defaults
// when the file is absent.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/a-downing/atari2600/errors"
)

// Switches holds the initial position of three RIOT port-B switches: the
// colour/BW switch and the two difficulty switches.
type Switches struct {
	Color        bool `toml:"color"`
	P0Difficulty bool `toml:"p0_difficulty_advanced"`
	P1Difficulty bool `toml:"p1_difficulty_advanced"`
}

// Keys holds the keyboard bindings for a single joystick, as key names
// matched against whatever host input layer is in use (e.g. pkg/term's
// scancodes).
type Keys struct {
	Up    string `toml:"up"`
	Down  string `toml:"down"`
	Left  string `toml:"left"`
	Right string `toml:"right"`
	Fire  string `toml:"fire"`
}

// Settings is the full set of host-configurable, non-emulation state: the
// console switch defaults and the two players' key bindings.
type Settings struct {
	Switches Switches `toml:"switches"`
	P0Keys   Keys     `toml:"p0_keys"`
	P1Keys   Keys     `toml:"p1_keys"`
}

// Defaults returns the compiled-in settings: Color selected, both
// difficulty switches set to Beginner, and WASD/arrow-key bindings for the
// two players.
func Defaults() Settings {
	return Settings{
		Switches: Switches{
			Color:        true,
			P0Difficulty: false,
			P1Difficulty: false,
		},
		P0Keys: Keys{Up: "w", Down: "s", Left: "a", Right: "d", Fire: "space"},
		P1Keys: Keys{Up: "up", Down: "down", Left: "left", Right: "right", Fire: "rshift"},
	}
}

// DefaultPath returns $HOME/.atari2600/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Errorf(errors.ConfigFileError, err)
	}
	return filepath.Join(home, ".atari2600", "config.toml"), nil
}

// Load reads settings from path, returning Defaults() unmodified if the
// file doesn't exist. A malformed file that does exist is a fatal error -
// silently falling back to defaults would mask a typo the user should
// know about.
func Load(path string) (Settings, error) {
	settings := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return Settings{}, errors.Errorf(errors.ConfigFileError, err)
	}

	return settings, nil
}
