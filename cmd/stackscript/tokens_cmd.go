package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/risor-io/stackscript"
)

func (a *app) tokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of source code",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runTokens,
	}
	addInputFlags(cmd.Flags())
	addOutputFlag(cmd)
	return cmd
}

func (a *app) runTokens(cmd *cobra.Command, args []string) error {
	format, err := checkOutputFormat(a.v.GetString("output"))
	if err != nil {
		return err
	}
	inputs, err := getInputs(cmd, args)
	if err != nil {
		return err
	}
	in := inputs[0]
	tokens, err := stackscript.Tokenize(in.code, a.compileOptions(in)...)
	if err != nil {
		return err
	}
	a.logger.Debug().Int("count", len(tokens)).Msg("tokenized")

	w := cmd.OutOrStdout()
	if format == "json" {
		out, err := getOutputJSON(toJSONTokens(tokens), a.useColor(w))
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(out))
		return nil
	}
	writeTokensText(w, tokens)
	return nil
}
