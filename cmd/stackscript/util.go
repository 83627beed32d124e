package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	errz "github.com/risor-io/stackscript/errors"
)

// input is one unit of source code to process.
type input struct {
	// name is the file path, or empty for --code and --stdin.
	name string
	code string
}

var outputFormatsCompletion = []string{"text", "json"}

func addInputFlags(flags *pflag.FlagSet) {
	flags.StringP("code", "c", "", "Code to parse")
	flags.Bool("stdin", false, "Read code from stdin")
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json)")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp
	})
}

func flagChanged(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && f.Changed
}

func getInputs(cmd *cobra.Command, args []string) ([]input, error) {
	// Determine what code is to be processed. There are three possibilities:
	// 1. --code <code>
	// 2. --stdin (read code from stdin)
	// 3. one or more paths as args
	codeFlagSet := flagChanged(cmd.Flags(), "code")
	stdinFlagSet := flagChanged(cmd.Flags(), "stdin")
	pathSupplied := len(args) > 0
	if pathSupplied && (codeFlagSet || stdinFlagSet) {
		return nil, errors.New("multiple input sources specified")
	} else if codeFlagSet && stdinFlagSet {
		return nil, errors.New("multiple input sources specified")
	}
	switch {
	case stdinFlagSet:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return []input{{code: string(data)}}, nil
	case codeFlagSet:
		code, _ := cmd.Flags().GetString("code")
		return []input{{code: code}}, nil
	case pathSupplied:
		inputs := make([]input, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, input{name: path, code: string(data)})
		}
		return inputs, nil
	default:
		return nil, errors.New("no input provided (pass a file, --code or --stdin)")
	}
}

func shouldColorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newLogger(w io.Writer, verbose, useColor bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !useColor}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// printError writes the most helpful rendering of err. Aggregated errors are
// printed one after another.
func printError(w io.Writer, err error, useColor bool) {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for i, e := range merr.Errors {
			if i > 0 {
				fmt.Fprintln(w)
			}
			printError(w, e, useColor)
		}
		if len(merr.Errors) > 1 {
			fmt.Fprintf(w, "\nfound %d errors\n", len(merr.Errors))
		}
		return
	}
	msg := errz.Render(err, useColor)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	io.WriteString(w, msg)
}
