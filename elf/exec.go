package elf

// Exec is the class-agnostic view over a decoded file. Both *File[uint32]
// and *File[uint64] implement it, so callers can query headers, segments
// and sections without branching on the width.
type Exec interface {
	// Class reports whether the file is 32- or 64-bit.
	Class() Class
	// Ident returns the 16 identification bytes.
	Ident() [16]byte
	// Type classifies the declared object type, failing with a TypeError
	// when the raw code is not recognized.
	Type() (Type, error)
	// Machine classifies the declared target architecture, failing with a
	// MachineError when the raw code is not recognized.
	Machine() (Machine, error)
	Version() uint32
	Entry() uint64
	Flags() uint32
	// SegmentTable and SectionTable describe the header tables as declared
	// in the file header.
	SegmentTable() Table
	SectionTable() Table
	// StringTableIndex is the declared index of the section-name string
	// table. It may be out of range; names are then left empty.
	StringTableIndex() int
	// Segments returns the program headers in table order.
	Segments() []SegmentView
	// Sections returns the sections in table order.
	Sections() []SectionView
	// Section returns the first section whose name matches exactly.
	Section(name string) (SectionView, bool)
}

// Table locates one of the two header tables.
type Table struct {
	Off       uint64
	EntrySize int
	Count     int
}

// SegmentView is a width-erased segment. Data aliases the decoded input.
type SegmentView struct {
	Type   SegmentType
	Flags  SegmentFlags
	Off    uint64
	Vaddr  uint64
	Paddr  uint64
	Filesz uint64
	Memsz  uint64
	Align  uint64
	Data   []byte
}

// SectionView is a width-erased section. Data aliases the decoded input.
type SectionView struct {
	Name      string
	Type      SectionType
	Flags     SectionFlags
	Addr      uint64
	Off       uint64
	Size      uint64
	Link      uint32
	Info      uint32
	Addralign uint64
	Entsize   uint64
	Data      []byte
}

func (f *File[W]) Class() Class {
	if wordSize[W]() == 4 {
		return Class32
	}
	return Class64
}

func (f *File[W]) Ident() [16]byte {
	return f.Header.Ident
}

func (f *File[W]) Type() (Type, error) {
	return TypeOf(f.Header.Type)
}

func (f *File[W]) Machine() (Machine, error) {
	return MachineOf(f.Header.Machine)
}

func (f *File[W]) Version() uint32 {
	return f.Header.Version
}

func (f *File[W]) Entry() uint64 {
	return uint64(f.Header.Entry)
}

func (f *File[W]) Flags() uint32 {
	return f.Header.Flags
}

func (f *File[W]) SegmentTable() Table {
	return Table{
		Off:       uint64(f.Header.Phoff),
		EntrySize: int(f.Header.Phentsize),
		Count:     int(f.Header.Phnum),
	}
}

func (f *File[W]) SectionTable() Table {
	return Table{
		Off:       uint64(f.Header.Shoff),
		EntrySize: int(f.Header.Shentsize),
		Count:     int(f.Header.Shnum),
	}
}

func (f *File[W]) StringTableIndex() int {
	return int(f.Header.Shstrndx)
}

func (f *File[W]) Segments() []SegmentView {
	views := make([]SegmentView, len(f.Progs))
	for i := range f.Progs {
		views[i] = segmentView(&f.Progs[i])
	}
	return views
}

func (f *File[W]) Sections() []SectionView {
	views := make([]SectionView, len(f.Sects))
	for i := range f.Sects {
		views[i] = sectionView(&f.Sects[i])
	}
	return views
}

func (f *File[W]) Section(name string) (SectionView, bool) {
	for i := range f.Sects {
		if f.Sects[i].Name == name {
			return sectionView(&f.Sects[i]), true
		}
	}
	return SectionView{}, false
}

func segmentView[W Word](s *Segment[W]) SegmentView {
	return SegmentView{
		Type:   s.Type,
		Flags:  s.Flags,
		Off:    uint64(s.Hdr.Off),
		Vaddr:  uint64(s.Hdr.Vaddr),
		Paddr:  uint64(s.Hdr.Paddr),
		Filesz: uint64(s.Hdr.Filesz),
		Memsz:  uint64(s.Hdr.Memsz),
		Align:  uint64(s.Hdr.Align),
		Data:   s.Data,
	}
}

func sectionView[W Word](s *Section[W]) SectionView {
	return SectionView{
		Name:      s.Name,
		Type:      s.Type,
		Flags:     s.Flags,
		Addr:      uint64(s.Hdr.Addr),
		Off:       uint64(s.Hdr.Off),
		Size:      uint64(s.Hdr.Size),
		Link:      s.Hdr.Link,
		Info:      s.Hdr.Info,
		Addralign: uint64(s.Hdr.Addralign),
		Entsize:   uint64(s.Hdr.Entsize),
		Data:      s.Data,
	}
}
