//go:build mage

// Package main contains Mage build targets for research-catalog developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default runs the tests and builds the binary.
var Default = All

const (
	binDir  = "bin"
	binName = "research-catalog"
	cmdPkg  = "./cmd/research-catalog"
)

// projectDirs lists the working directories a local catalog uses.
var projectDirs = []string{
	"data",
	".secrets",
}

// starterConfig is written by Init when no config file exists.
const starterConfig = `catalog:
  records_file: data/records.yaml
  page_size: 6
  default_sort: relevance
  debounce_window: 200ms
  share_base_url: http://localhost:8080/
bookmarks:
  backend: file
  path: data/bookmarks.json
logging:
  level: warn
  format: console
`

// All runs Test then Build.
func All() {
	mg.SerialDeps(Test, Build)
}

// Init creates the project directories, a starter research-catalog.yaml,
// and exports the sample records to data/records.yaml.
func Init() error {
	mg.Deps(Build)

	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}

	const cfgFile = "research-catalog.yaml"
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		if err := os.WriteFile(cfgFile, []byte(starterConfig), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", cfgFile, err)
		}
		fmt.Println("  ", cfgFile)
	}

	records := filepath.Join("data", "records.yaml")
	if _, err := os.Stat(records); os.IsNotExist(err) {
		// --records "" forces the built-in sample even though the starter
		// config points at the file being created.
		if err := sh.RunV(filepath.Join(binDir, binName), "--records", "", "records", "export", records); err != nil {
			return fmt.Errorf("exporting sample records: %w", err)
		}
	}
	fmt.Println("Project initialized.")
	return nil
}

// Build compiles the CLI binary into bin/ with the version from git.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// Stats prints project metrics: Go production/test LOC and documentation word count.
func Stats() error {
	var prod, tests, words int
	err := filepath.WalkDir(".", func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == binDir) {
				return filepath.SkipDir
			}
			return nil
		}

		switch ext := filepath.Ext(path); {
		case ext == ".go":
			n, err := countLines(path)
			if err != nil {
				return err
			}
			if strings.HasSuffix(path, "_test.go") {
				tests += n
			} else {
				prod += n
			}
		case ext == ".md":
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			words += len(bytes.Fields(data))
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", tests)
	fmt.Printf("Words (documentation):           %d\n", words)
	return nil
}

// countLines counts non-blank lines in path.
func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	return n, sc.Err()
}
