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

// Package input is a small raw-terminal key reader for the headless CLI's
// joystick and quit-key handling, trimmed from the debugger's own termios
// wrapper down to just cbreak mode and a read loop.
package input

import (
	"os"
	"syscall"

	"github.com/pkg/term/termios"
)

// Reader puts a terminal into cbreak mode (unbuffered, unechoed) for as
// long as it's open, and streams raw bytes read from it over a channel.
type Reader struct {
	file      *os.File
	canonical syscall.Termios
	keys      chan byte
}

// NewReader switches f into cbreak mode and starts a background goroutine
// reading single bytes from it. Per SPEC_FULL.md's concurrency model, this
// goroutine only ever communicates with the scheduler loop via Keys' channel
// sends - it never touches VCS state directly.
func NewReader(f *os.File) (*Reader, error) {
	r := &Reader{file: f, keys: make(chan byte, 16)}

	if err := termios.Tcgetattr(f.Fd(), &r.canonical); err != nil {
		return nil, err
	}

	cbreak := r.canonical
	termios.Cfmakecbreak(&cbreak)
	if err := termios.Tcsetattr(f.Fd(), termios.TCSANOW, &cbreak); err != nil {
		return nil, err
	}

	go r.poll()
	return r, nil
}

func (r *Reader) poll() {
	defer close(r.keys)
	buf := make([]byte, 1)
	for {
		n, err := r.file.Read(buf)
		if err != nil {
			return
		}
		if n > 0 {
			r.keys <- buf[0]
		}
	}
}

// Keys returns the channel of raw bytes read from the terminal. A closed
// channel means the input stream reached EOF.
func (r *Reader) Keys() <-chan byte {
	return r.keys
}

// Close restores the terminal's original (canonical) mode. The background
// read goroutine is left to exit on its own next EOF/error, same as the
// debugger's own terminal wrapper does on shutdown.
func (r *Reader) Close() error {
	return termios.Tcsetattr(r.file.Fd(), termios.TCSANOW, &r.canonical)
}
