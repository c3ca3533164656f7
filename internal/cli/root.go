// Package cli implements the maestro command-line interface: the cobra root
// command, the interactive menu shell, and script execution.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/maestro/internal/paths"
	"github.com/mesh-intelligence/maestro/pkg/maestro"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	logLevel  string
}

// NewRootCmd creates the top-level "maestro" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:     "maestro",
		Short:   "Manage a restaurant menu from the terminal",
		Long:    "Maestro keeps a restaurant menu in memory for the length of a session:\nadd, edit and remove dishes, filter by course, and summarize prices.",
		Version: maestro.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/maestro)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (overrides log_level in config.yaml)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(flags))
	root.AddCommand(newShellCmd(flags))
	root.AddCommand(newRunCmd(flags))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:], os.Stderr))
}

// run executes root with args and maps the outcome to an exit code.
func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	root.SilenceErrors = true
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)
	var sysErr *systemError
	if errors.As(err, &sysErr) {
		return exitSysError
	}
	return exitUserError
}

// systemError marks failures of the environment (config, I/O) rather than
// of user input.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysErrorf(format string, args ...any) error {
	return &systemError{err: fmt.Errorf(format, args...)}
}

// resolveConfigDir returns the config directory from flag, env, or default.
func (f *rootFlags) resolveConfigDir() (string, error) {
	dir, err := paths.ResolveConfigDir(f.configDir)
	if err != nil {
		return "", sysErrorf("resolve config dir: %w", err)
	}
	return dir, nil
}
