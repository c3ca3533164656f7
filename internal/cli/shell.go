package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

const (
	shellTitle  = "Chef My Chef's Kitchen"
	shellPrompt = "maestro> "
)

// errQuit ends the shell loop.
var errQuit = errors.New("quit")

func newShellCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive menu session",
		Long: `Shell reads menu commands from standard input until "quit" or end of input.
The menu lives only as long as the session.

Type "help" inside the shell for the list of commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			defer a.close()

			fmt.Fprintf(a.out, "%s. Type 'help' for commands.\n", shellTitle)
			return a.repl()
		},
	}
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Run menu commands from a file",
		Long: `Run executes one shell command per line of the script. Blank lines and
lines starting with "#" are skipped. Execution stops at the first failing line.

Example:
  maestro run demo.menu`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return sysErrorf("open script: %w", err)
			}
			defer f.Close()

			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			defer a.close()

			return a.runScript(f)
		},
	}
}

// repl prompts for and executes lines until quit or end of input. Line
// errors are printed and the loop continues.
func (a *app) repl() error {
	for {
		fmt.Fprint(a.out, shellPrompt)
		line, err := a.in.ReadString('\n')
		if line == "" && err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(a.out)
				return nil
			}
			return sysErrorf("read input: %w", err)
		}
		if execErr := a.execLine(line); execErr != nil {
			if errors.Is(execErr, errQuit) {
				return nil
			}
			fmt.Fprintln(a.errOut, "Error:", execErr)
		}
	}
}

// runScript executes each line of r, stopping at the first error.
func (a *app) runScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := a.execLine(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return sysErrorf("read script: %w", err)
	}
	return nil
}

// execLine splits line with shell quoting rules and runs it against a fresh
// shell command tree, so flag values never leak between lines.
func (a *app) execLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("parse command: %w", err)
	}
	if len(args) == 0 {
		return nil
	}

	root := newShellRoot(a)
	root.SetArgs(args)
	return root.Execute()
}

// newShellRoot builds the command tree available inside the shell.
func newShellRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "maestro>",
		Short:         "Menu shell commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetIn(a.in)

	root.AddCommand(newListCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newEditCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newFilterCmd(a))
	root.AddCommand(newSummaryCmd(a))
	root.AddCommand(newMetricsCmd(a))
	root.AddCommand(&cobra.Command{
		Use:     "quit",
		Aliases: []string{"exit"},
		Short:   "Leave the shell",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errQuit
		},
	})
	return root
}
