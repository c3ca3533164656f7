// Package main provides the maestro CLI.
package main

import "github.com/mesh-intelligence/maestro/internal/cli"

func main() {
	cli.Execute()
}
