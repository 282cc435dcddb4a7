package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/midbel/binspect"
	"github.com/midbel/binspect/elf"
	"github.com/midbel/cli"
	"github.com/midbel/textwrap"
)

func runInfo(cmd *cli.Command, args []string) error {
	long := cmd.Flag.Bool("l", false, "describe the executable in prose")
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	x, err := binspect.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	if *long {
		return describe(cmd.Flag.Arg(0), x)
	}
	fmt.Printf("%-12s: %s\n", "Class", x.Class())
	fmt.Printf("%-12s: % x\n", "Ident", x.Ident())
	fmt.Printf("%-12s: %s\n", "Type", label(x.Type()))
	fmt.Printf("%-12s: %s\n", "Machine", label(x.Machine()))
	fmt.Printf("%-12s: %d\n", "Version", x.Version())
	fmt.Printf("%-12s: %#x\n", "Entry", x.Entry())
	fmt.Printf("%-12s: %#x\n", "Flags", x.Flags())

	ph, sh := x.SegmentTable(), x.SectionTable()
	fmt.Printf("%-12s: %d entries of %d bytes at %#x\n", "Segments", ph.Count, ph.EntrySize, ph.Off)
	fmt.Printf("%-12s: %d entries of %d bytes at %#x\n", "Sections", sh.Count, sh.EntrySize, sh.Off)
	fmt.Printf("%-12s: %d\n", "Names index", x.StringTableIndex())
	return nil
}

func describe(file string, x elf.Exec) error {
	str := fmt.Sprintf("%s is a %s %s for the %s architecture, with entry point %#x, %d program headers and %d sections.",
		file, x.Class(), label(x.Type()), label(x.Machine()), x.Entry(),
		x.SegmentTable().Count, x.SectionTable().Count)
	fmt.Println(textwrap.Wrap(str))
	return nil
}

func runSections(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	x, err := binspect.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()
	for i, s := range x.Sections() {
		fmt.Fprintf(w, "[%2d]\t%s\t%s\t%s\t%#x\t%d\n", i, s.Name, s.Type, s.Flags, s.Off, s.Size)
	}
	return nil
}

func runSegments(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	x, err := binspect.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()
	for i, s := range x.Segments() {
		fmt.Fprintf(w, "[%2d]\t%s\t%s\t%#x\t%#x\t%d\t%d\n", i, s.Type, s.Flags, s.Off, s.Vaddr, s.Filesz, s.Memsz)
	}
	return nil
}

func runFind(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	x, err := binspect.Open(cmd.Flag.Arg(1))
	if err != nil {
		return err
	}
	s, ok := x.Section(cmd.Flag.Arg(0))
	if !ok {
		return fmt.Errorf("section %q not found", cmd.Flag.Arg(0))
	}
	fmt.Printf("%-12s: %s\n", "Name", s.Name)
	fmt.Printf("%-12s: %s\n", "Type", s.Type)
	fmt.Printf("%-12s: %s\n", "Flags", s.Flags)
	fmt.Printf("%-12s: %#x\n", "Address", s.Addr)
	fmt.Printf("%-12s: %#x\n", "Offset", s.Off)
	fmt.Printf("%-12s: %d\n", "Size", s.Size)
	return nil
}

func runDump(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	x, err := binspect.Open(cmd.Flag.Arg(1))
	if err != nil {
		return err
	}
	s, ok := x.Section(cmd.Flag.Arg(0))
	if !ok {
		return fmt.Errorf("section %q not found", cmd.Flag.Arg(0))
	}
	fmt.Print(hex.Dump(s.Data))
	return nil
}

func label(s fmt.Stringer, err error) string {
	if err != nil {
		return err.Error()
	}
	return s.String()
}
