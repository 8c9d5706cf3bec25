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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/a-downing/atari2600/errors"
	"github.com/a-downing/atari2600/logger"
)

// validSizes are the ROM lengths the cartridge package knows how to map:
// 2K/4K unbanked, or 8K F8 bank-switched.
var validSizes = [...]int{2048, 4096, 8192}

// Loader carries a loaded ROM image and the diagnostic information around
// it. It never interprets the bytes itself - that's cartridge.NewCartridge's
// job - but it does refuse to load a size that package has no mapper for.
type Loader struct {
	// Name is a short, display-friendly form of Filename (base name, no
	// extension).
	Name string

	// Filename is the path the ROM was loaded from, as passed to Load.
	Filename string

	// Data is the raw ROM image.
	Data []byte

	// HashSHA1 is the SHA1 of Data, for logging and bug reports - it plays
	// no role in emulation semantics.
	HashSHA1 string
}

// Load reads the ROM at path and validates its size. The returned error is
// curated (errors.CartridgeFileError for an I/O failure, errors.CartridgeSize
// for an unsupported length) so callers can errors.Is against it.
func Load(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf(errors.CartridgeFileError, err)
	}

	if !validSize(len(data)) {
		return nil, errors.Errorf(errors.CartridgeSize, len(data))
	}

	ld := &Loader{
		Name:     NameFromFilename(path),
		Filename: path,
		Data:     data,
		HashSHA1: fmt.Sprintf("%x", sha1.Sum(data)),
	}
	logger.Logf(logger.Allow, "cartridgeloader", "loaded %s (%d bytes, sha1 %s)", ld.Filename, len(data), ld.HashSHA1)

	return ld, nil
}

func validSize(n int) bool {
	for _, s := range validSizes {
		if n == s {
			return true
		}
	}
	return false
}
