package main

import (
	"fmt"
	"os"
)

var version = "0.1.0"

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: plume <command> [arguments]

Commands:
  check    parse templates and report diagnostics
  fmt      rewrite templates in canonical form
  ast      print the parsed tree of a template
  watch    re-check templates on file change
  version  print the plume version
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		cmdCheck(os.Args[2:])
	case "fmt":
		cmdFmt(os.Args[2:])
	case "ast":
		cmdAst(os.Args[2:])
	case "watch":
		cmdWatch(os.Args[2:])
	case "version":
		fmt.Println("plume " + version)
	case "-h", "-help", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "plume: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}
