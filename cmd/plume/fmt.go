package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/btouchard/plume/internal/compiler/parser"
	"github.com/btouchard/plume/internal/compiler/printer"
)

func cmdFmt(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	diff := fs.Bool("d", false, "display changes instead of writing files")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: plume fmt [-d] <files...>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}

	exitCode := 0
	for _, file := range fs.Args() {
		if err := fmtFile(file, *diff); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error formatting %s: %v\n", file, err)
			exitCode = 1
		}
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func fmtFile(file string, diff bool) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	root, err := parser.Parse(file, string(data))
	if err != nil {
		return err
	}

	formatted := printer.Format(root)
	if formatted == string(data) {
		return nil
	}

	if diff {
		fmt.Printf("--- %s\n+++ %s (formatted)\n", file, file)
		fmt.Printf("-%q\n+%q\n", string(data), formatted)
		return nil
	}

	return os.WriteFile(file, []byte(formatted), 0644)
}
