package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/btouchard/plume/cmd/plume/internal/ui"
	"github.com/btouchard/plume/internal/config"
	"github.com/btouchard/plume/internal/registry"
)

func cmdWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	projectDir := fs.String("C", ".", "project directory (plume.yaml location)")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: plume watch [-C dir]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	cfg, err := config.Load(*projectDir)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = watcher.Close() }()

	watched := 0
	for _, dir := range cfg.TemplateDirs {
		root := filepath.Join(*projectDir, dir)
		if err := watchRecursive(watcher, root); err == nil {
			watched++
		}
	}
	if watched == 0 {
		_, _ = fmt.Fprintf(os.Stderr, "Error: no template directories to watch\n")
		os.Exit(1)
	}

	reg := openRegistry(cfg, *projectDir, false)
	if reg != nil {
		defer func() { _ = reg.Close() }()
	}

	// Initial pass over everything before waiting for events
	runCheckPass(cfg, *projectDir, reg)
	fmt.Println(ui.Muted("watching for changes..."))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Debounce bursts of events (editors often write several times)
	var timer *time.Timer
	var timerCh <-chan time.Time // nil until the first event

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// New directories must be added to the watch set
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchRecursive(watcher, event.Name)
					continue
				}
			}

			if !cfg.IsTemplate(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 && reg != nil {
				_ = reg.Forget(event.Name)
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(cfg.Watch.Debounce())
			timerCh = timer.C

		case <-timerCh:
			runCheckPass(cfg, *projectDir, reg)
			fmt.Println(ui.Muted("watching for changes..."))

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			_, _ = fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

		case <-sigCh:
			return
		}
	}
}

func watchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

func runCheckPass(cfg *config.Config, projectDir string, reg *registry.Registry) {
	files, err := collectTemplates(cfg, projectDir, nil)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if failures := checkFiles(files, reg); failures == 0 {
		fmt.Println(ui.Success("%d template(s) clean", len(files)))
	}
}
