package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/btouchard/plume/cmd/plume/internal/ui"
	cerrors "github.com/btouchard/plume/internal/compiler/errors"
	"github.com/btouchard/plume/internal/compiler/parser"
	"github.com/btouchard/plume/internal/config"
	"github.com/btouchard/plume/internal/registry"
)

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	noCache := fs.Bool("no-cache", false, "ignore the parse registry")
	projectDir := fs.String("C", ".", "project directory (plume.yaml location)")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: plume check [-no-cache] [-C dir] [paths...]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	cfg, err := config.Load(*projectDir)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	files, err := collectTemplates(cfg, *projectDir, fs.Args())
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println(ui.Muted("no templates found"))
		return
	}

	reg := openRegistry(cfg, *projectDir, *noCache)
	if reg != nil {
		defer func() { _ = reg.Close() }()
	}

	if failures := checkFiles(files, reg); failures > 0 {
		os.Exit(1)
	}
}

// collectTemplates resolves the set of template files to check: the
// explicit paths if given (directories are walked), otherwise the
// configured template directories.
func collectTemplates(cfg *config.Config, projectDir string, paths []string) ([]string, error) {
	if len(paths) == 0 {
		for _, dir := range cfg.TemplateDirs {
			paths = append(paths, filepath.Join(projectDir, dir))
		}
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && cfg.IsTemplate(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// openRegistry opens the parse registry if enabled. A registry that
// cannot be opened degrades to checking without a cache.
func openRegistry(cfg *config.Config, projectDir string, noCache bool) *registry.Registry {
	if noCache || cfg.Registry == nil || !cfg.Registry.Enabled {
		return nil
	}

	reg, err := registry.Open(filepath.Join(projectDir, cfg.Registry.Path))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v (continuing without cache)\n", err)
		return nil
	}
	return reg
}

// checkFiles parses every file, reports diagnostics, and returns the
// number of failures. Unchanged files with a cached outcome are not
// re-parsed.
func checkFiles(files []string, reg *registry.Registry) int {
	failures := 0
	parseErrs := cerrors.NewErrorList()

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Println(ui.Error("%s: %v", file, err))
			failures++
			continue
		}

		hash := registry.Hash(data)

		if reg != nil {
			if rec, ok := reg.Lookup(file, hash); ok {
				if rec.OK {
					fmt.Println(ui.Muted("%s (cached)", file))
				} else {
					fmt.Println(ui.Error("%s", rec.Diagnostic))
					failures++
				}
				continue
			}
		}

		_, parseErr := parser.Parse(file, string(data))

		if reg != nil {
			diag := ""
			if parseErr != nil {
				diag = parseErr.Error()
			}
			if err := reg.Store(file, hash, parseErr == nil, diag); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: recording %s: %v\n", file, err)
			}
		}

		if parseErr != nil {
			var pe *cerrors.ParseError
			if errors.As(parseErr, &pe) {
				parseErrs.Add(pe)
			}
			fmt.Println(ui.Error("%s", parseErr))
			failures++
			continue
		}
		fmt.Println(ui.Success("%s", file))
	}

	if parseErrs.HasErrors() {
		fmt.Println(ui.Muted("%d parse error(s)", len(parseErrs.Errors)))
	}

	return failures
}
