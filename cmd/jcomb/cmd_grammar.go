package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/dhamidi/jcomb/jsonc"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "Print the accepted syntax as EBNF",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verify {
				if _, err := jsonc.Grammar(); err != nil {
					printErrors(cmd.ErrOrStderr(), err)
					return errors.New("grammar verification failed")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "grammar ok (start production %s)\n", jsonc.GrammarStart)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), jsonc.GrammarSource())
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "parse and verify the grammar instead of printing it")

	return cmd
}

// printErrors prints each error of an ebnf error list on its own line.
func printErrors(w io.Writer, err error) {
	if inner := errors.Unwrap(err); inner != nil {
		err = inner
	}
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
