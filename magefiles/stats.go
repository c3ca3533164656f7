package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"
)

// packageLines holds line counts for one package directory.
type packageLines struct {
	prod, test int
}

// Stats prints production and test line counts per package, with totals.
func Stats() error {
	counts := map[string]*packageLines{}

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && skipStatsDir(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		n, err := countLines(path)
		if err != nil {
			return fmt.Errorf("count %s: %w", path, err)
		}
		dir := filepath.Dir(path)
		pl, ok := counts[dir]
		if !ok {
			pl = &packageLines{}
			counts[dir] = pl
		}
		if strings.HasSuffix(path, "_test.go") {
			pl.test += n
		} else {
			pl.prod += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	dirs := make([]string, 0, len(counts))
	for dir := range counts {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "PACKAGE\tPROD\tTEST\t")
	var total packageLines
	for _, dir := range dirs {
		pl := counts[dir]
		total.prod += pl.prod
		total.test += pl.test
		fmt.Fprintf(w, "%s\t%d\t%d\t\n", dir, pl.prod, pl.test)
	}
	fmt.Fprintf(w, "total\t%d\t%d\t\n", total.prod, total.test)
	return w.Flush()
}

// skipStatsDir reports whether a directory holds no project code: build
// output, VCS data, the build tooling itself, and underscore-prefixed
// directories the go tool ignores.
func skipStatsDir(path string) bool {
	base := filepath.Base(path)
	switch base {
	case binaryDir, ".git", "vendor", "magefiles", "testdata":
		return true
	}
	return strings.HasPrefix(base, "_") || strings.HasPrefix(base, ".")
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}
