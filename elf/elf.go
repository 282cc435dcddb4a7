// Package elf decodes ELF executable images from raw bytes into an
// immutable, validated, queryable representation. The decoder never reads
// files itself; callers hand it the whole image and keep ownership of the
// buffer, which segment and section payloads alias without copying.
package elf

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"
)

var magic = []byte{0x7f, 'E', 'L', 'F'}

// Magic is the 4-byte signature every ELF image starts with.
func Magic() []byte {
	return append([]byte(nil), magic...)
}

// File is the decoded representation for one class. Callers that need raw
// width-specific records can assert the Exec returned by Decode to
// *File[uint32] or *File[uint64]; everyone else goes through Exec.
type File[W Word] struct {
	Header FileHeader[W]
	Progs  []Segment[W]
	Sects  []Section[W]
}

// Segment couples a raw program-header record with its classified type,
// validated flags and the file-resident payload bytes.
type Segment[W Word] struct {
	Hdr   ProgHeader[W]
	Type  SegmentType
	Flags SegmentFlags
	Data  []byte
}

// Section couples a raw section-header record with its classified type,
// validated flags, resolved name and payload bytes.
type Section[W Word] struct {
	Hdr   SectionHeader[W]
	Name  string
	Type  SectionType
	Flags SectionFlags
	Data  []byte
}

// DetectClass checks the magic signature and returns the class byte that
// follows it.
func DetectClass(data []byte) (Class, error) {
	if len(data) < len(magic)+1 {
		return 0, &IncompleteError{Needed: len(magic) + 1 - len(data)}
	}
	if !bytes.Equal(data[:len(magic)], magic) {
		return 0, fmt.Errorf("bad magic %x: %w", data[:len(magic)], ErrMalformed)
	}
	switch c := Class(data[len(magic)]); c {
	case Class32, Class64:
		return c, nil
	default:
		return 0, ClassError(data[len(magic)])
	}
}

// Decode parses a whole ELF image. Any structural problem aborts the decode;
// there is no partial result.
func Decode(data []byte) (Exec, error) {
	class, err := DetectClass(data)
	if err != nil {
		return nil, err
	}
	if class == Class32 {
		return decodeFile[uint32](data)
	}
	return decodeFile[uint64](data)
}

func decodeFile[W Word](data []byte) (*File[W], error) {
	c := newCursor(data, 0)
	hdr := decodeFileHeader[W](c)
	if err := c.Err(); err != nil {
		return nil, err
	}
	progs, err := decodeSegments[W](data, hdr)
	if err != nil {
		return nil, err
	}
	sects, err := decodeSections[W](data, hdr)
	if err != nil {
		return nil, err
	}
	if err := resolveNames[W](sects, int(hdr.Shstrndx)); err != nil {
		return nil, err
	}
	return &File[W]{Header: hdr, Progs: progs, Sects: sects}, nil
}

func decodeSegments[W Word](data []byte, hdr FileHeader[W]) ([]Segment[W], error) {
	count := int(hdr.Phnum)
	if count == 0 {
		return nil, nil
	}
	stride, err := tableStride(hdr.Phentsize, progSize[W]())
	if err != nil {
		return nil, fmt.Errorf("program header table: %w", err)
	}
	off, err := tableOffset(uint64(hdr.Phoff), count, stride, len(data))
	if err != nil {
		return nil, err
	}
	progs := make([]Segment[W], 0, count)
	for i := 0; i < count; i++ {
		c := newCursor(data, off+i*stride)
		p := decodeProgHeader[W](c)
		if err := c.Err(); err != nil {
			return nil, err
		}
		st, err := SegmentTypeOf(p.Type)
		if err != nil {
			return nil, err
		}
		fl, err := SegmentFlagsOf(p.Flags)
		if err != nil {
			return nil, err
		}
		payload, err := slice(data, uint64(p.Off), uint64(p.Filesz))
		if err != nil {
			return nil, err
		}
		progs = append(progs, Segment[W]{Hdr: p, Type: st, Flags: fl, Data: payload})
	}
	return progs, nil
}

func decodeSections[W Word](data []byte, hdr FileHeader[W]) ([]Section[W], error) {
	count := int(hdr.Shnum)
	if count == 0 {
		return nil, nil
	}
	stride, err := tableStride(hdr.Shentsize, sectionSize[W]())
	if err != nil {
		return nil, fmt.Errorf("section header table: %w", err)
	}
	off, err := tableOffset(uint64(hdr.Shoff), count, stride, len(data))
	if err != nil {
		return nil, err
	}
	sects := make([]Section[W], 0, count)
	for i := 0; i < count; i++ {
		c := newCursor(data, off+i*stride)
		s := decodeSectionHeader[W](c)
		if err := c.Err(); err != nil {
			return nil, err
		}
		st, err := SectionTypeOf(s.Type)
		if err != nil {
			return nil, err
		}
		fl, err := SectionFlagsOf(uint64(s.Flags))
		if err != nil {
			return nil, err
		}
		var payload []byte
		if st != SecNobits {
			// NOBITS sections occupy no file bytes.
			payload, err = slice(data, uint64(s.Off), uint64(s.Size))
			if err != nil {
				return nil, err
			}
		}
		sects = append(sects, Section[W]{Hdr: s, Type: st, Flags: fl, Data: payload})
	}
	return sects, nil
}

// tableStride settles the declared entry size against the decoder's fixed
// record width. Smaller is malformed; larger is taken as per-entry padding.
func tableStride(declared uint16, fixed int) (int, error) {
	if int(declared) < fixed {
		return 0, fmt.Errorf("declared entry size %d below record size %d: %w", declared, fixed, ErrMalformed)
	}
	return int(declared), nil
}

// tableOffset validates that count records of stride bytes fit between off
// and the end of the input before any iteration commits to count.
func tableOffset(off uint64, count, stride int, size int) (int, error) {
	need := uint64(count) * uint64(stride)
	if off > uint64(size) {
		gap := off - uint64(size) + need
		if gap < need || gap > math.MaxInt32 {
			// shortfall not representable
			return 0, &IncompleteError{}
		}
		return 0, &IncompleteError{Needed: int(gap)}
	}
	if rest := uint64(size) - off; need > rest {
		return 0, &IncompleteError{Needed: int(need - rest)}
	}
	return int(off), nil
}

// slice carves [off, off+size) out of data without copying. The arithmetic
// cannot wrap: off is compared against len(data) before size is.
func slice(data []byte, off, size uint64) ([]byte, error) {
	if off > uint64(len(data)) || size > uint64(len(data))-off {
		return nil, &BoundsError{Off: off, Size: size, Len: uint64(len(data))}
	}
	if size == 0 {
		return nil, nil
	}
	return data[off : off+size : off+size], nil
}

// resolveNames fills in every section name from the string-table section at
// index strndx. An out-of-range index leaves all names empty; that is how
// stripped files look and is not an error.
func resolveNames[W Word](sects []Section[W], strndx int) error {
	if strndx < 0 || strndx >= len(sects) {
		return nil
	}
	table := sects[strndx].Data
	for i := range sects {
		name, err := tableString(table, uint64(sects[i].Hdr.Name))
		if err != nil {
			return err
		}
		sects[i].Name = name
	}
	return nil
}

func tableString(table []byte, off uint64) (string, error) {
	if off >= uint64(len(table)) {
		return "", fmt.Errorf("name offset %d outside string table of %d bytes: %w", off, len(table), ErrMalformed)
	}
	x := bytes.IndexByte(table[off:], 0)
	if x < 0 {
		return "", fmt.Errorf("unterminated name at offset %d: %w", off, ErrMalformed)
	}
	name := table[off : int(off)+x]
	if !utf8.Valid(name) {
		return "", fmt.Errorf("name at offset %d is not valid text: %w", off, ErrMalformed)
	}
	return string(name), nil
}
