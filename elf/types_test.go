package elf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeOf(t *testing.T) {
	typ, err := TypeOf(3)
	require.NoError(t, err)
	require.Equal(t, TypeDyn, typ)
	require.Equal(t, "shared object", typ.String())

	_, err = TypeOf(9)
	require.Equal(t, TypeError(9), err)
}

func TestMachineOf(t *testing.T) {
	m, err := MachineOf(62)
	require.NoError(t, err)
	require.Equal(t, MachineX86_64, m)
	require.Equal(t, "x86-64", m.String())

	_, err = MachineOf(4242)
	require.Equal(t, MachineError(4242), err)
}

func TestSegmentTypeOf(t *testing.T) {
	cases := []struct {
		raw  uint32
		want SegmentType
	}{
		{0, SegNull},
		{1, SegLoad},
		{6, SegPhdr},
		{0x6474e550, SegGnuEhFrame},
		{0x6474e552, SegGnuRelro},
		{0x70000000, SegLoProc},
	}
	for _, c := range cases {
		got, err := SegmentTypeOf(c.raw)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}
	_, err := SegmentTypeOf(0x60000001)
	require.Equal(t, SegmentTypeError(0x60000001), err)
}

func TestSegmentFlagsOf(t *testing.T) {
	f, err := SegmentFlagsOf(5)
	require.NoError(t, err)
	require.Equal(t, SegFlagRead|SegFlagExec, f)
	require.Equal(t, "R-X", f.String())

	f, err = SegmentFlagsOf(7)
	require.NoError(t, err)
	require.Equal(t, "RWX", f.String())

	_, err = SegmentFlagsOf(0x8)
	require.Equal(t, SegmentFlagError(0x8), err)

	// os- and proc-specific bits pass validation
	_, err = SegmentFlagsOf(0x00100004)
	require.NoError(t, err)
}

func TestSectionTypeOf(t *testing.T) {
	got, err := SectionTypeOf(1)
	require.NoError(t, err)
	require.Equal(t, SecProgbits, got)
	require.Equal(t, "PROGBITS", got.String())

	got, err = SectionTypeOf(0x6ffffff6)
	require.NoError(t, err)
	require.Equal(t, SecGnuHash, got)

	for _, raw := range []uint32{12, 13, 20, 0x60000001} {
		_, err = SectionTypeOf(raw)
		require.Equal(t, SectionTypeError(raw), err)
	}
}

func TestSectionFlagsOf(t *testing.T) {
	f, err := SectionFlagsOf(6)
	require.NoError(t, err)
	require.Equal(t, SecFlagAlloc|SecFlagExecinstr, f)
	require.Equal(t, "AX", f.String())

	_, err = SectionFlagsOf(0x80000000)
	require.Equal(t, SectionFlagError(0x80000000), err)

	_, err = SectionFlagsOf(0x8)
	require.Equal(t, SectionFlagError(0x8), err)
}
