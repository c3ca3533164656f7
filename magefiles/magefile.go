// Package main provides build targets for the maestro project using Mage.
//
// Usage:
//
//	mage build          Compile maestro binary to bin/
//	mage test:all       Run all tests
//	mage test:race      Run all tests with the race detector
//	mage test:cover     Write a coverage profile to bin/cover.out
//	mage test:demo      Build, then run testdata/demo.menu through maestro
//	mage lint           Check formatting, run go vet and golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install maestro to GOPATH/bin
//	mage stats          Print Go line counts per package
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "maestro"
	binaryDir  = "bin"
	cmdDir     = "./cmd/maestro"
	versionVar = "github.com/mesh-intelligence/maestro/pkg/maestro.Version"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the maestro binary to bin/. MAESTRO_VERSION, when set,
// is stamped into the binary.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	args := []string{"build", "-v", "-o", binaryPath()}
	if v := os.Getenv("MAESTRO_VERSION"); v != "" {
		args = append(args, "-ldflags", "-X "+versionVar+"="+v)
	}
	return sh.RunV(binGo, append(args, cmdDir)...)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, binaryPath())
}

func binaryPath() string {
	return filepath.Join(binaryDir, binaryName)
}
