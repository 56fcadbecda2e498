package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"v8bitfield/internal/bitfield"
	"v8bitfield/internal/catalog"
	"v8bitfield/internal/logging"
	"v8bitfield/internal/ui/colorize"
	"v8bitfield/internal/v8bitfield/log"
	"v8bitfield/internal/v8bitfield/styles"
)

// exitUsage is the status for malformed command lines.
const exitUsage = 2

// UsageError reports a malformed command line. It is printed without
// decoration and exits with status 2.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error returned by the command tree to a process status.
func ExitCode(err error) int {
	var ue *UsageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ue):
		return exitUsage
	default:
		return 1
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "v8bitfield [-c] VALUE",
		Short: "Decode V8 PropertyDetails words",
		Long: `v8bitfield decodes a PropertyDetails word taken from a V8 heap dump into its
named sub-fields: property type, attributes, representation and indices.

VALUE is the raw Smi-tagged word. It may be decimal, octal (leading 0) or
hex (0x prefix). The tag bit is dropped before decoding. With -c the layout
itself is printed before the decoded value.`,
		Example: `
# Decode a word against the Node v0.12 layout
v8bitfield 0x401c52

# Print the layout, then the decoded word
v8bitfield -c 0x401c52

# Decode against the Node v0.10 layout as JSON
v8bitfield decode --layout v0.10 --json 0x401c52
  `,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			log.Setup(debug || logging.IsDebug())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}

			// Only the exact reference form is accepted here: flags go to
			// subcommands.
			if len(args) < 1 || len(args) > 2 || (len(args) == 2 && args[0] != "-c") {
				return usageErrorf("usage: %s [-c] VALUE", cmd.Name())
			}

			valstr, describe := args[0], false
			if len(args) == 2 {
				valstr, describe = args[1], true
			}

			value, err := ParseValue(valstr)
			if err != nil {
				return usageErrorf("non-numeric value: \"%s\"", valstr)
			}

			slog.Debug("Decoding", "value", valstr, "layout", catalog.Default.Version, "describe", describe)
			return writeText(cmd.OutOrStdout(), catalog.Default, value, describe)
		},
	}

	root.PersistentFlags().BoolP("debug", "d", false, "Debug logging")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{msg: err.Error()}
	})

	root.AddCommand(
		newDecodeCmd(),
		newDescribeCmd(),
		newLayoutsCmd(),
		newExploreCmd(),
		newSchemaCmd(),
	)
	return root
}

// exactArgs is cobra.ExactArgs reporting a UsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageErrorf("usage: %s: %v", cmd.UseLine(), err)
		}
		return nil
	}
}

// colorEnabled reports whether styled output should be written to w.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd()) && !colorize.Disabled()
}

// writeText untags raw and prints its decoding against l, preceded by the
// layout description when describe is set.
func writeText(w io.Writer, l bitfield.Layout, raw uint64, describe bool) error {
	r := bitfield.DecodeWord(l, raw)

	if colorEnabled(w) {
		theme := styles.DefaultTheme()
		out := theme.RenderDecode(r)
		if describe {
			out = theme.RenderDescription(l) + out
		}
		_, err := io.WriteString(w, out)
		return err
	}

	if describe {
		if err := bitfield.WriteDescription(w, l); err != nil {
			return err
		}
	}
	return bitfield.WriteDecode(w, r)
}

func writeJSON(w io.Writer, v any) error {
	bts, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	out := string(bts) + "\n"
	if colorEnabled(w) {
		if colored, err := colorize.ColorizeJSON(out); err == nil {
			out = colored
		}
	}
	_, err = io.WriteString(w, out)
	return err
}

// printError writes err the way errx(3) does: program name, colon, message.
func printError(w io.Writer, name string, err error) {
	var ue *UsageError
	if errors.As(err, &ue) {
		fmt.Fprintf(w, "%s: %s\n", name, ue.msg)
		return
	}
	fmt.Fprintf(w, "%s: %v\n", name, err)
}

// Run executes the command line args and returns the process exit status.
// It never uses fang, so output is the plain reference format.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		printError(stderr, root.Name(), err)
	}
	return ExitCode(err)
}

func Execute() {
	code := execute()
	if err := log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "could not close log file: %v\n", err)
	}
	os.Exit(code)
}

func execute() int {
	// Bypass fang when output is being piped so the output stays plain
	if !term.IsTerminal(os.Stdout.Fd()) || colorize.Disabled() {
		return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	}

	root := newRootCmd()
	err := fang.Execute(
		context.Background(),
		root,
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, st fang.Styles, err error) {
			var ue *UsageError
			if errors.As(err, &ue) {
				printError(w, root.Name(), err)
				return
			}
			fang.DefaultErrorHandler(w, st, err)
		}),
	)
	return ExitCode(err)
}
