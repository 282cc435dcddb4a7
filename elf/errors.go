package elf

import (
	"errors"
	"fmt"
)

// ErrMalformed reports bytes that do not follow the ELF layout rules: a bad
// magic signature, an unterminated or non-textual section name, or a record
// pointing outside the input. Wrap with fmt.Errorf to add context; check
// with errors.Is.
var ErrMalformed = errors.New("malformed elf input")

// ClassError is returned when the class byte designates neither a 32-bit nor
// a 64-bit file. The value is the raw class byte.
type ClassError uint8

func (e ClassError) Error() string {
	return fmt.Sprintf("unsupported elf class %d", uint8(e))
}

// IncompleteError is returned when the input ends before a fixed-size record
// does. Needed is the exact number of missing bytes, or zero when the
// shortfall cannot be computed.
type IncompleteError struct {
	Needed int
}

func (e *IncompleteError) Error() string {
	if e.Needed == 0 {
		return "incomplete input, unknown number of bytes needed"
	}
	return fmt.Sprintf("incomplete input, %d more bytes needed", e.Needed)
}

// BoundsError is returned when a segment or section claims payload bytes
// beyond the end of the input. It matches ErrMalformed under errors.Is.
type BoundsError struct {
	Off  uint64
	Size uint64
	Len  uint64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("range [%d, %d+%d) outside input of %d bytes", e.Off, e.Off, e.Size, e.Len)
}

func (e *BoundsError) Unwrap() error {
	return ErrMalformed
}

// SegmentTypeError carries a program-header type code outside the known set.
type SegmentTypeError uint32

func (e SegmentTypeError) Error() string {
	return fmt.Sprintf("segment type %d not resolved", uint32(e))
}

// SegmentFlagError carries a program-header flag mask with unknown bits set.
type SegmentFlagError uint32

func (e SegmentFlagError) Error() string {
	return fmt.Sprintf("segment flag %#x invalid", uint32(e))
}

// SectionTypeError carries a section-header type code outside the known set.
type SectionTypeError uint32

func (e SectionTypeError) Error() string {
	return fmt.Sprintf("section type %d not resolved", uint32(e))
}

// SectionFlagError carries a section-header flag mask with unknown bits set.
type SectionFlagError uint64

func (e SectionFlagError) Error() string {
	return fmt.Sprintf("section flag %#x invalid", uint64(e))
}

// TypeError carries an e_type value outside the known set.
type TypeError uint16

func (e TypeError) Error() string {
	return fmt.Sprintf("unknown elf type %d", uint16(e))
}

// MachineError carries an e_machine value outside the known set.
type MachineError uint16

func (e MachineError) Error() string {
	return fmt.Sprintf("unknown machine %d", uint16(e))
}
