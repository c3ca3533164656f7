package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const demoScript = "testdata/demo.menu"

// Test groups test targets.
type Test mg.Namespace

// All runs all tests.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Race runs all tests with the race detector.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Cover runs all tests and writes a coverage profile to bin/cover.out.
func (Test) Cover() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	profile := filepath.Join(binaryDir, "cover.out")
	if err := sh.RunV(binGo, "test", "-coverprofile", profile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func", profile)
}

// Demo builds maestro and runs the demo script against both backends.
func (Test) Demo() error {
	mg.Deps(Build)
	for _, backend := range []string{"memory", "sqlite"} {
		env := map[string]string{"MAESTRO_BACKEND": backend}
		if err := sh.RunWithV(env, binaryPath(), "run", demoScript); err != nil {
			return err
		}
	}
	return nil
}
