package main

import (
	"github.com/midbel/cli"
)

var commands = []*cli.Command{
	{
		Usage:   "info [-l] <binary>",
		Short:   "show the file header of an executable",
		Alias:   []string{"show"},
		Run:     runInfo,
		Default: true,
	},
	{
		Usage: "sections <binary>",
		Short: "list the sections of an executable",
		Alias: []string{"sh"},
		Run:   runSections,
	},
	{
		Usage: "segments <binary>",
		Short: "list the program headers of an executable",
		Alias: []string{"ph"},
		Run:   runSegments,
	},
	{
		Usage: "find <name> <binary>",
		Short: "look up a section by name",
		Run:   runFind,
	},
	{
		Usage: "dump <name> <binary>",
		Short: "hex dump the payload of a section",
		Run:   runDump,
	},
}

func main() {
	cli.RunAndExit(commands, func() {})
}
