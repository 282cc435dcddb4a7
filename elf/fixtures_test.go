package elf

import (
	"encoding/binary"
)

// image builds little-endian byte buffers for test fixtures.
type image struct {
	b []byte
}

func (x *image) u8(v uint8)   { x.b = append(x.b, v) }
func (x *image) u16(v uint16) { x.b = binary.LittleEndian.AppendUint16(x.b, v) }
func (x *image) u32(v uint32) { x.b = binary.LittleEndian.AppendUint32(x.b, v) }
func (x *image) u64(v uint64) { x.b = binary.LittleEndian.AppendUint64(x.b, v) }
func (x *image) raw(p []byte) { x.b = append(x.b, p...) }
func (x *image) pad(n int)    { x.b = append(x.b, make([]byte, n)...) }

func (x *image) ident(class uint8) {
	x.raw([]byte{0x7f, 'E', 'L', 'F', class, 1, 1})
	x.pad(9)
}

const text32 = "hello from binspect"

// strtab32 layout: "" at 0, ".shstrtab" at 1, ".symtab" at 11, ".strtab"
// at 19, ".text" at 27 (0x1b).
var strtab32 = []byte("\x00.shstrtab\x00.symtab\x00.strtab\x00.text\x00")

// fixture32 is a well-formed 32-bit image: 9 program headers starting at
// 0x34 (the first one a PHDR covering the table itself), a 19-byte text
// payload at 0x154, and 31 sections whose names resolve through the string
// table at index 30.
func fixture32() []byte {
	var x image

	// file header
	x.ident(1)
	x.u16(3)     // e_type, ET_DYN
	x.u16(3)     // e_machine, EM_386
	x.u32(1)     // e_version
	x.u32(0x3e0) // e_entry
	x.u32(0x34)  // e_phoff
	x.u32(392)   // e_shoff
	x.u32(0)     // e_flags
	x.u16(52)    // e_ehsize
	x.u16(32)    // e_phentsize
	x.u16(9)     // e_phnum
	x.u16(40)    // e_shentsize
	x.u16(31)    // e_shnum
	x.u16(30)    // e_shstrndx

	phdr := func(typ, off, vaddr, filesz, flags, align uint32) {
		x.u32(typ)
		x.u32(off)
		x.u32(vaddr)
		x.u32(vaddr)
		x.u32(filesz)
		x.u32(filesz)
		x.u32(flags)
		x.u32(align)
	}
	phdr(6, 0x34, 0x34, 288, 5, 4) // PHDR, R+X
	phdr(1, 0, 0, 0x154, 5, 0x1000)
	phdr(1, 0x154, 0x154, 19, 6, 0x1000)
	phdr(4, 0, 0, 0, 4, 4)             // NOTE
	phdr(0x6474e551, 0, 0, 0, 6, 0x10) // GNU_STACK
	for i := 0; i < 4; i++ {
		phdr(0, 0, 0, 0, 0, 0)
	}

	x.raw([]byte(text32)) // 19 bytes at 0x154
	x.raw(strtab32)       // 33 bytes at 359

	shdr := func(name, typ, flags, addr, off, size, align uint32) {
		x.u32(name)
		x.u32(typ)
		x.u32(flags)
		x.u32(addr)
		x.u32(off)
		x.u32(size)
		x.u32(0) // sh_link
		x.u32(0) // sh_info
		x.u32(align)
		x.u32(0) // sh_entsize
	}
	shdr(0, 0, 0, 0, 0, 0, 0)
	shdr(0x1b, 1, 2, 0x154, 0x154, 19, 1) // .text, PROGBITS, ALLOC
	for i := 2; i < 30; i++ {
		shdr(0, 0, 0, 0, 0, 0, 0)
	}
	shdr(1, 3, 0, 0, 359, 33, 1) // .shstrtab

	return x.b
}

// offsets into fixture32, for tests that patch it
const (
	fix32Shstrndx  = 50   // e_shstrndx field
	fix32Phdr      = 0x34 // program header table
	fix32Shdr      = 392  // section header table
	fix32Strtab    = 359  // string table payload
	fix32StrtabLen = 33
)

const text64 = "binspect sixty-four fixture!"

// strtab64 layout: "" at 0, ".shstrtab" at 1, ".text" at 11, ".bss" at 17.
var strtab64 = []byte("\x00.shstrtab\x00.text\x00.bss\x00")

// fixture64 is a well-formed 64-bit image with a NOBITS .bss whose declared
// size extends past the end of the file.
func fixture64() []byte {
	var x image

	x.ident(2)
	x.u16(3)     // e_type, ET_DYN
	x.u16(62)    // e_machine, EM_X86_64
	x.u32(1)     // e_version
	x.u64(0x540) // e_entry
	x.u64(0x40)  // e_phoff
	x.u64(232)   // e_shoff
	x.u32(0)     // e_flags
	x.u16(64)    // e_ehsize
	x.u16(56)    // e_phentsize
	x.u16(2)     // e_phnum
	x.u16(64)    // e_shentsize
	x.u16(4)     // e_shnum
	x.u16(3)     // e_shstrndx

	phdr := func(typ, flags uint32, off, vaddr, filesz, align uint64) {
		x.u32(typ)
		x.u32(flags)
		x.u64(off)
		x.u64(vaddr)
		x.u64(vaddr)
		x.u64(filesz)
		x.u64(filesz)
		x.u64(align)
	}
	phdr(6, 4, 0x40, 0x40, 112, 8) // PHDR
	phdr(1, 5, 0, 0, 204, 0x1000)  // LOAD, R+X

	x.raw([]byte(text64)) // 28 bytes at 176
	x.raw(strtab64)       // 22 bytes at 204
	x.pad(6)              // up to e_shoff

	shdr := func(name, typ uint32, flags, addr, off, size, align uint64) {
		x.u32(name)
		x.u32(typ)
		x.u64(flags)
		x.u64(addr)
		x.u64(off)
		x.u64(size)
		x.u32(0) // sh_link
		x.u32(0) // sh_info
		x.u64(align)
		x.u64(0) // sh_entsize
	}
	shdr(0, 0, 0, 0, 0, 0, 0)
	shdr(11, 1, 6, 0x540, 176, 28, 16)  // .text, PROGBITS, ALLOC+EXEC
	shdr(17, 8, 3, 0x2000, 204, 256, 8) // .bss, NOBITS, WRITE+ALLOC
	shdr(1, 3, 0, 0, 204, 22, 1)        // .shstrtab

	return x.b
}

// clone returns a private copy tests can patch freely.
func clone(p []byte) []byte {
	return append([]byte(nil), p...)
}

func patch32(p []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(p[off:], v)
}

func patch16(p []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(p[off:], v)
}
