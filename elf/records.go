package elf

// Word is the integer width an ELF class stores its addresses and offsets
// in: uint32 for ELF32, uint64 for ELF64.
type Word interface {
	uint32 | uint64
}

// FileHeader is the raw file header record. The field order is shared by
// both classes; only the width of Entry, Phoff and Shoff differs.
type FileHeader[W Word] struct {
	Ident     [16]byte
	Type      uint16
	Machine   uint16
	Version   uint32
	Entry     W
	Phoff     W
	Shoff     W
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

// ProgHeader is the raw program-header record. The 64-bit layout moves
// Flags up, right behind Type; the 32-bit layout keeps it between Memsz
// and Align.
type ProgHeader[W Word] struct {
	Type   uint32
	Flags  uint32
	Off    W
	Vaddr  W
	Paddr  W
	Filesz W
	Memsz  W
	Align  W
}

// SectionHeader is the raw section-header record. Both classes share the
// field order.
type SectionHeader[W Word] struct {
	Name      uint32
	Type      uint32
	Flags     W
	Addr      W
	Off       W
	Size      W
	Link      uint32
	Info      uint32
	Addralign W
	Entsize   W
}

func wordSize[W Word]() int {
	var w W
	if _, ok := any(w).(uint32); ok {
		return 4
	}
	return 8
}

// Encoded record sizes: 52/64 for the file header, 32/56 per program
// header, 40/64 per section header.
func headerSize[W Word]() int  { return 16 + 2 + 2 + 4 + 3*wordSize[W]() + 4 + 6*2 }
func progSize[W Word]() int    { return 4 + 4 + 6*wordSize[W]() }
func sectionSize[W Word]() int { return 4 + 4 + 4*wordSize[W]() + 4 + 4 + 2*wordSize[W]() }

func decodeWord[W Word](c *cursor) W {
	if wordSize[W]() == 4 {
		return W(c.Uint32())
	}
	return W(c.Uint64())
}

func decodeFileHeader[W Word](c *cursor) (h FileHeader[W]) {
	if !c.need(headerSize[W]()) {
		return
	}
	copy(h.Ident[:], c.Bytes(16))
	h.Type = c.Uint16()
	h.Machine = c.Uint16()
	h.Version = c.Uint32()
	h.Entry = decodeWord[W](c)
	h.Phoff = decodeWord[W](c)
	h.Shoff = decodeWord[W](c)
	h.Flags = c.Uint32()
	h.Ehsize = c.Uint16()
	h.Phentsize = c.Uint16()
	h.Phnum = c.Uint16()
	h.Shentsize = c.Uint16()
	h.Shnum = c.Uint16()
	h.Shstrndx = c.Uint16()
	return h
}

func decodeProgHeader[W Word](c *cursor) (p ProgHeader[W]) {
	if !c.need(progSize[W]()) {
		return
	}
	p.Type = c.Uint32()
	if wordSize[W]() == 8 {
		p.Flags = c.Uint32()
	}
	p.Off = decodeWord[W](c)
	p.Vaddr = decodeWord[W](c)
	p.Paddr = decodeWord[W](c)
	p.Filesz = decodeWord[W](c)
	p.Memsz = decodeWord[W](c)
	if wordSize[W]() == 4 {
		p.Flags = c.Uint32()
	}
	p.Align = decodeWord[W](c)
	return p
}

func decodeSectionHeader[W Word](c *cursor) (s SectionHeader[W]) {
	if !c.need(sectionSize[W]()) {
		return
	}
	s.Name = c.Uint32()
	s.Type = c.Uint32()
	s.Flags = decodeWord[W](c)
	s.Addr = decodeWord[W](c)
	s.Off = decodeWord[W](c)
	s.Size = decodeWord[W](c)
	s.Link = c.Uint32()
	s.Info = c.Uint32()
	s.Addralign = decodeWord[W](c)
	s.Entsize = decodeWord[W](c)
	return s
}
