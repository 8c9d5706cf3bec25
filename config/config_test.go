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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/a-downing/atari2600/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	settings, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Defaults(), settings)
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[switches]
color = false
p0_difficulty_advanced = true

[p0_keys]
up = "i"
down = "k"
left = "j"
right = "l"
fire = "enter"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	settings, err := config.Load(path)
	require.NoError(t, err)
	require.False(t, settings.Switches.Color)
	require.True(t, settings.Switches.P0Difficulty)
	require.False(t, settings.Switches.P1Difficulty)
	require.Equal(t, "i", settings.P0Keys.Up)
	require.Equal(t, "rshift", settings.P1Keys.Fire)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not valid toml [[["), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}
