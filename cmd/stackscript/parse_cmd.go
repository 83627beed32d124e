package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/risor-io/stackscript"
	"github.com/risor-io/stackscript/ir"
)

func (a *app) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse source code and print its instructions",
		Example: `  stackscript parse main.ss
  stackscript parse -c 'let x = 1 + 2;' -o json
  stackscript parse --watch main.ss`,
		RunE: a.runParse,
	}
	addInputFlags(cmd.Flags())
	addOutputFlag(cmd)
	cmd.Flags().Bool("watch", false, "Re-parse the file whenever it changes")
	cmd.Flags().Int("max-depth", 0, "Maximum function nesting depth (0 for the default)")
	return cmd
}

func (a *app) compileOptions(in input) []stackscript.Option {
	opts := []stackscript.Option{stackscript.WithLogger(a.logger)}
	if in.name != "" {
		opts = append(opts, stackscript.WithFilename(in.name))
	}
	if depth := a.v.GetInt("max-depth"); depth > 0 {
		opts = append(opts, stackscript.WithMaxDepth(depth))
	}
	return opts
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	format, err := checkOutputFormat(a.v.GetString("output"))
	if err != nil {
		return err
	}
	if a.v.GetBool("watch") {
		if len(args) != 1 {
			return errors.New("--watch requires exactly one file")
		}
		return watchFile(cmd.Context(), args[0], a.logger, func() {
			inputs, err := getInputs(cmd, args)
			if err == nil {
				err = a.parseInputs(cmd.Context(), cmd.OutOrStdout(), inputs, format)
			}
			if err != nil {
				printError(cmd.ErrOrStderr(), err, a.useColor(cmd.ErrOrStderr()))
			}
		})
	}
	inputs, err := getInputs(cmd, args)
	if err != nil {
		return err
	}
	return a.parseInputs(cmd.Context(), cmd.OutOrStdout(), inputs, format)
}

// parseInputs parses every input, printing those that succeed. Failures are
// collected and returned together.
func (a *app) parseInputs(ctx context.Context, w io.Writer, inputs []input, format string) error {
	var result *multierror.Error
	var parsed []fileInstructions
	for _, in := range inputs {
		instrs, err := stackscript.Compile(ctx, in.code, a.compileOptions(in)...)
		if err != nil {
			a.logger.Debug().Str("file", in.name).Err(err).Msg("parse failed")
			result = multierror.Append(result, err)
			continue
		}
		parsed = append(parsed, fileInstructions{File: in.name, Instructions: instrs})
	}

	useColor := a.useColor(w)
	switch format {
	case "json":
		var value interface{} = parsed
		if len(inputs) == 1 && len(parsed) == 1 {
			value = parsed[0].Instructions
		}
		if len(parsed) > 0 {
			out, err := getOutputJSON(value, useColor)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(out))
		}
	default:
		for i, p := range parsed {
			if len(inputs) > 1 {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s:\n", p.File)
			}
			writeInstructionsText(w, []ir.Instruction(p.Instructions), useColor)
		}
	}
	return result.ErrorOrNil()
}
