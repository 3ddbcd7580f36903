package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/btouchard/plume/internal/compiler/parser"
	"github.com/btouchard/plume/internal/compiler/printer"
)

func cmdAst(args []string) {
	fs := flag.NewFlagSet("ast", flag.ExitOnError)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: plume ast <file>\n")
	}
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	file := fs.Arg(0)
	data, err := os.ReadFile(file)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root, err := parser.Parse(file, string(data))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printer.Dump(os.Stdout, root)
}
