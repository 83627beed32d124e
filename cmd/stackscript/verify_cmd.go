package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/risor-io/stackscript"
)

func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [file...]",
		Short: "Parse source code and check the stack discipline of its instructions",
		RunE:  a.runVerify,
	}
	addInputFlags(cmd.Flags())
	return cmd
}

func (a *app) runVerify(cmd *cobra.Command, args []string) error {
	inputs, err := getInputs(cmd, args)
	if err != nil {
		return err
	}
	var result *multierror.Error
	w := cmd.OutOrStdout()
	for _, in := range inputs {
		opts := append(a.compileOptions(in), stackscript.WithVerify())
		if _, err := stackscript.Compile(cmd.Context(), in.code, opts...); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		name := in.name
		if name == "" {
			name = "<input>"
		}
		fmt.Fprintf(w, "%s: ok\n", name)
	}
	return result.ErrorOrNil()
}
