// Package binspect turns raw executable-file bytes into a structured,
// read-only view. Only ELF is decoded; other recognizable container formats
// are rejected by name instead of being guessed at.
package binspect

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/midbel/binspect/elf"
	"github.com/midbel/tape/ar"
)

// Format identifies a container format known to the dispatcher.
type Format string

const (
	ELF   Format = "elf"
	PE    Format = "pe"
	MachO Format = "mach-o"
	Ar    Format = "ar"
)

// UnsupportedFormatError reports a file whose signature matched a known
// container format that binspect does not decode.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported executable format", e.Format)
}

var (
	mzMagic = []byte{'M', 'Z'}
	peMagic = []byte{'P', 'E', 0x00, 0x00}
)

const (
	machMagic32 = 0xfeedface
	machMagic64 = 0xfeedfacf
)

// Decode sniffs the leading signature of data and, for ELF images, decodes
// the whole structure. Known foreign signatures fail with
// UnsupportedFormatError, anything else with elf.ErrMalformed. Decode never
// panics on malformed input.
func Decode(data []byte) (elf.Exec, error) {
	elfMagic := elf.Magic()
	switch {
	case bytes.HasPrefix(data, elfMagic), bytes.HasPrefix(elfMagic, data):
		// includes short prefixes of the magic, reported as incomplete
		return elf.Decode(data)
	case bytes.HasPrefix(data, mzMagic), bytes.HasPrefix(data, peMagic):
		return nil, &UnsupportedFormatError{Format: PE}
	case isMachO(data):
		return nil, &UnsupportedFormatError{Format: MachO}
	case bytes.HasPrefix(data, ar.Magic):
		return nil, &UnsupportedFormatError{Format: Ar}
	default:
		return nil, fmt.Errorf("unrecognized signature: %w", elf.ErrMalformed)
	}
}

// Open reads a whole file and decodes it.
func Open(file string) (elf.Exec, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func isMachO(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	switch binary.LittleEndian.Uint32(data) {
	case machMagic32, machMagic64:
		return true
	default:
		return false
	}
}
