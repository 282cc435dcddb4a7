package elf

import (
	"fmt"
	"strings"
)

// Class tells 32-bit from 64-bit files.
type Class uint8

const (
	Class32 Class = 1
	Class64 Class = 2
)

func (c Class) String() string {
	switch c {
	case Class32:
		return "ELF32"
	case Class64:
		return "ELF64"
	default:
		return fmt.Sprintf("class(%d)", uint8(c))
	}
}

// Type is the object file type declared in the file header.
type Type uint16

const (
	TypeNone Type = iota
	TypeRel
	TypeExec
	TypeDyn
	TypeCore
)

// TypeOf classifies a raw e_type value.
func TypeOf(raw uint16) (Type, error) {
	t := Type(raw)
	if t > TypeCore {
		return 0, TypeError(raw)
	}
	return t, nil
}

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeRel:
		return "relocatable file"
	case TypeExec:
		return "executable file"
	case TypeDyn:
		return "shared object"
	case TypeCore:
		return "core file"
	default:
		return "other"
	}
}

// Machine is the target architecture declared in the file header.
type Machine uint16

const (
	MachineNone    Machine = 0
	MachineM32     Machine = 1
	MachineSparc   Machine = 2
	Machine386     Machine = 3
	Machine68K     Machine = 4
	Machine88K     Machine = 5
	Machine860     Machine = 7
	MachineMips    Machine = 8
	MachinePPC     Machine = 20
	MachinePPC64   Machine = 21
	MachineS390    Machine = 22
	MachineArm     Machine = 40
	MachineSparcV9 Machine = 43
	MachineIA64    Machine = 50
	MachineX86_64  Machine = 62
	MachineAarch64 Machine = 183
	MachineRiscV   Machine = 243
)

// MachineOf classifies a raw e_machine value.
func MachineOf(raw uint16) (Machine, error) {
	m := Machine(raw)
	switch m {
	case MachineNone, MachineM32, MachineSparc, Machine386, Machine68K,
		Machine88K, Machine860, MachineMips, MachinePPC, MachinePPC64,
		MachineS390, MachineArm, MachineSparcV9, MachineIA64,
		MachineX86_64, MachineAarch64, MachineRiscV:
		return m, nil
	default:
		return 0, MachineError(raw)
	}
}

func (m Machine) String() string {
	switch m {
	case MachineNone:
		return "none"
	case MachineM32:
		return "AT&T WE 32100"
	case MachineSparc:
		return "SPARC"
	case Machine386:
		return "Intel 80386"
	case Machine68K:
		return "Motorola 68000"
	case Machine88K:
		return "Motorola 88000"
	case Machine860:
		return "Intel 80860"
	case MachineMips:
		return "MIPS"
	case MachinePPC:
		return "PowerPC"
	case MachinePPC64:
		return "PowerPC 64"
	case MachineS390:
		return "IBM S/390"
	case MachineArm:
		return "ARM"
	case MachineSparcV9:
		return "SPARC v9"
	case MachineIA64:
		return "Intel IA-64"
	case MachineX86_64:
		return "x86-64"
	case MachineAarch64:
		return "AArch64"
	case MachineRiscV:
		return "RISC-V"
	default:
		return fmt.Sprintf("machine(%d)", uint16(m))
	}
}

// SegmentType is the classified program-header type code.
type SegmentType uint32

const (
	SegNull       SegmentType = 0
	SegLoad       SegmentType = 1
	SegDynamic    SegmentType = 2
	SegInterp     SegmentType = 3
	SegNote       SegmentType = 4
	SegShlib      SegmentType = 5
	SegPhdr       SegmentType = 6
	SegTLS        SegmentType = 7
	SegNum        SegmentType = 8
	SegLoOS       SegmentType = 0x60000000
	SegGnuEhFrame SegmentType = 0x6474e550
	SegGnuStack   SegmentType = 0x6474e551
	SegGnuRelro   SegmentType = 0x6474e552
	SegLoSunw     SegmentType = 0x6ffffffa
	SegSunwStack  SegmentType = 0x6ffffffb
	SegHiSunw     SegmentType = 0x6fffffff
	SegLoProc     SegmentType = 0x70000000
	SegHiProc     SegmentType = 0x7fffffff
)

// SegmentTypeOf classifies a raw p_type value.
func SegmentTypeOf(raw uint32) (SegmentType, error) {
	t := SegmentType(raw)
	switch t {
	case SegNull, SegLoad, SegDynamic, SegInterp, SegNote, SegShlib,
		SegPhdr, SegTLS, SegNum, SegLoOS, SegGnuEhFrame, SegGnuStack,
		SegGnuRelro, SegLoSunw, SegSunwStack, SegHiSunw, SegLoProc,
		SegHiProc:
		return t, nil
	default:
		return 0, SegmentTypeError(raw)
	}
}

func (t SegmentType) String() string {
	switch t {
	case SegNull:
		return "NULL"
	case SegLoad:
		return "LOAD"
	case SegDynamic:
		return "DYNAMIC"
	case SegInterp:
		return "INTERP"
	case SegNote:
		return "NOTE"
	case SegShlib:
		return "SHLIB"
	case SegPhdr:
		return "PHDR"
	case SegTLS:
		return "TLS"
	case SegNum:
		return "NUM"
	case SegLoOS:
		return "LOOS"
	case SegGnuEhFrame:
		return "GNU_EH_FRAME"
	case SegGnuStack:
		return "GNU_STACK"
	case SegGnuRelro:
		return "GNU_RELRO"
	case SegLoSunw:
		return "LOSUNW"
	case SegSunwStack:
		return "SUNWSTACK"
	case SegHiSunw:
		return "HISUNW"
	case SegLoProc:
		return "LOPROC"
	case SegHiProc:
		return "HIPROC"
	default:
		return "other"
	}
}

// SegmentFlags is the validated program-header permission mask.
type SegmentFlags uint32

const (
	SegFlagExec  SegmentFlags = 0x1
	SegFlagWrite SegmentFlags = 0x2
	SegFlagRead  SegmentFlags = 0x4

	segFlagMaskOS   SegmentFlags = 0x0ff00000
	segFlagMaskProc SegmentFlags = 0xf0000000
)

const segFlagAll = SegFlagExec | SegFlagWrite | SegFlagRead | segFlagMaskOS | segFlagMaskProc

// SegmentFlagsOf validates a raw p_flags mask.
func SegmentFlagsOf(raw uint32) (SegmentFlags, error) {
	f := SegmentFlags(raw)
	if f&^segFlagAll != 0 {
		return 0, SegmentFlagError(raw)
	}
	return f, nil
}

func (f SegmentFlags) String() string {
	var (
		buf   [3]byte
		extra = f & (segFlagMaskOS | segFlagMaskProc)
	)
	buf[0], buf[1], buf[2] = '-', '-', '-'
	if f&SegFlagRead != 0 {
		buf[0] = 'R'
	}
	if f&SegFlagWrite != 0 {
		buf[1] = 'W'
	}
	if f&SegFlagExec != 0 {
		buf[2] = 'X'
	}
	if extra != 0 {
		return fmt.Sprintf("%s+%#x", buf[:], uint32(extra))
	}
	return string(buf[:])
}

// SectionType is the classified section-header type code.
type SectionType uint32

const (
	SecNull          SectionType = 0
	SecProgbits      SectionType = 1
	SecSymtab        SectionType = 2
	SecStrtab        SectionType = 3
	SecRela          SectionType = 4
	SecHash          SectionType = 5
	SecDynamic       SectionType = 6
	SecNote          SectionType = 7
	SecNobits        SectionType = 8
	SecRel           SectionType = 9
	SecShlib         SectionType = 10
	SecDynsym        SectionType = 11
	SecInitArray     SectionType = 14
	SecFiniArray     SectionType = 15
	SecPreinitArray  SectionType = 16
	SecGroup         SectionType = 17
	SecSymtabShndx   SectionType = 18
	SecNum           SectionType = 19
	SecLoOS          SectionType = 0x60000000
	SecGnuAttributes SectionType = 0x6ffffff5
	SecGnuHash       SectionType = 0x6ffffff6
	SecGnuLiblist    SectionType = 0x6ffffff7
	SecChecksum      SectionType = 0x6ffffff8
	SecLoSunw        SectionType = 0x6ffffffa
	SecSunwComdat    SectionType = 0x6ffffffb
	SecSunwSyminfo   SectionType = 0x6ffffffc
	SecGnuVerdef     SectionType = 0x6ffffffd
	SecGnuVerneed    SectionType = 0x6ffffffe
	SecGnuVersym     SectionType = 0x6fffffff
	SecLoProc        SectionType = 0x70000000
	SecHiProc        SectionType = 0x7fffffff
	SecLoUser        SectionType = 0x80000000
	SecHiUser        SectionType = 0x8fffffff
)

// SectionTypeOf classifies a raw sh_type value.
func SectionTypeOf(raw uint32) (SectionType, error) {
	t := SectionType(raw)
	switch t {
	case SecNull, SecProgbits, SecSymtab, SecStrtab, SecRela, SecHash,
		SecDynamic, SecNote, SecNobits, SecRel, SecShlib, SecDynsym,
		SecInitArray, SecFiniArray, SecPreinitArray, SecGroup,
		SecSymtabShndx, SecNum, SecLoOS, SecGnuAttributes, SecGnuHash,
		SecGnuLiblist, SecChecksum, SecLoSunw, SecSunwComdat,
		SecSunwSyminfo, SecGnuVerdef, SecGnuVerneed, SecGnuVersym,
		SecLoProc, SecHiProc, SecLoUser, SecHiUser:
		return t, nil
	default:
		return 0, SectionTypeError(raw)
	}
}

func (t SectionType) String() string {
	switch t {
	case SecNull:
		return "NULL"
	case SecProgbits:
		return "PROGBITS"
	case SecSymtab:
		return "SYMTAB"
	case SecStrtab:
		return "STRTAB"
	case SecRela:
		return "RELA"
	case SecHash:
		return "HASH"
	case SecDynamic:
		return "DYNAMIC"
	case SecNote:
		return "NOTE"
	case SecNobits:
		return "NOBITS"
	case SecRel:
		return "REL"
	case SecShlib:
		return "SHLIB"
	case SecDynsym:
		return "DYNSYM"
	case SecInitArray:
		return "INIT_ARRAY"
	case SecFiniArray:
		return "FINI_ARRAY"
	case SecPreinitArray:
		return "PREINIT_ARRAY"
	case SecGroup:
		return "GROUP"
	case SecSymtabShndx:
		return "SYMTAB_SHNDX"
	case SecNum:
		return "NUM"
	case SecLoOS:
		return "LOOS"
	case SecGnuAttributes:
		return "GNU_ATTRIBUTES"
	case SecGnuHash:
		return "GNU_HASH"
	case SecGnuLiblist:
		return "GNU_LIBLIST"
	case SecChecksum:
		return "CHECKSUM"
	case SecLoSunw:
		return "LOSUNW"
	case SecSunwComdat:
		return "SUNW_COMDAT"
	case SecSunwSyminfo:
		return "SUNW_SYMINFO"
	case SecGnuVerdef:
		return "GNU_VERDEF"
	case SecGnuVerneed:
		return "GNU_VERNEED"
	case SecGnuVersym:
		return "GNU_VERSYM"
	case SecLoProc:
		return "LOPROC"
	case SecHiProc:
		return "HIPROC"
	case SecLoUser:
		return "LOUSER"
	case SecHiUser:
		return "HIUSER"
	default:
		return "other"
	}
}

// SectionFlags is the validated section attribute mask.
type SectionFlags uint64

const (
	SecFlagWrite           SectionFlags = 0x1
	SecFlagAlloc           SectionFlags = 0x2
	SecFlagExecinstr       SectionFlags = 0x4
	SecFlagMerge           SectionFlags = 0x10
	SecFlagStrings         SectionFlags = 0x20
	SecFlagInfoLink        SectionFlags = 0x40
	SecFlagLinkOrder       SectionFlags = 0x80
	SecFlagOSNonconforming SectionFlags = 0x100
	SecFlagGroup           SectionFlags = 0x200
	SecFlagTLS             SectionFlags = 0x400
	SecFlagCompressed      SectionFlags = 0x800

	secFlagMaskOS SectionFlags = 0x0ff00000
)

const secFlagAll = SecFlagWrite | SecFlagAlloc | SecFlagExecinstr |
	SecFlagMerge | SecFlagStrings | SecFlagInfoLink | SecFlagLinkOrder |
	SecFlagOSNonconforming | SecFlagGroup | SecFlagTLS | SecFlagCompressed |
	secFlagMaskOS

// SectionFlagsOf validates a raw sh_flags mask.
func SectionFlagsOf(raw uint64) (SectionFlags, error) {
	f := SectionFlags(raw)
	if f&^secFlagAll != 0 {
		return 0, SectionFlagError(raw)
	}
	return f, nil
}

var sectionFlagNames = []struct {
	flag  SectionFlags
	short byte
}{
	{SecFlagWrite, 'W'},
	{SecFlagAlloc, 'A'},
	{SecFlagExecinstr, 'X'},
	{SecFlagMerge, 'M'},
	{SecFlagStrings, 'S'},
	{SecFlagInfoLink, 'I'},
	{SecFlagLinkOrder, 'L'},
	{SecFlagOSNonconforming, 'O'},
	{SecFlagGroup, 'G'},
	{SecFlagTLS, 'T'},
	{SecFlagCompressed, 'C'},
}

func (f SectionFlags) String() string {
	var w strings.Builder
	for _, n := range sectionFlagNames {
		if f&n.flag != 0 {
			w.WriteByte(n.short)
		}
	}
	if extra := f & secFlagMaskOS; extra != 0 {
		fmt.Fprintf(&w, "+%#x", uint64(extra))
	}
	return w.String()
}
