package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dhamidi/jcomb/format"
	"github.com/dhamidi/jcomb/jsonc"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool
	var toJSON bool
	var indent string

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Pretty-print a document",
		Long: `Pretty-print a document to stdout.

If no file is provided, reads from stdin. Comments are not preserved.
Use --json to emit strict JSON with escaped strings.

Use -w to overwrite the file in place (requires a file argument).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fmtOverwrite && (len(args) == 0 || args[0] == "-") {
				return fmt.Errorf("-w requires a file argument")
			}

			name, source, err := readInput(args)
			if err != nil {
				return err
			}

			value, err := jsonc.DecodeString(string(source), jsonc.WithFile(name))
			if err != nil {
				return err
			}

			var out bytes.Buffer
			var encoder format.Encoder = format.NewTextEncoder(&out, format.WithIndent(indent))
			if toJSON {
				encoder = format.NewJSONEncoder(&out, format.WithIndent(indent))
			}
			if err := encoder.Encode(value); err != nil {
				return fmt.Errorf("format: %w", err)
			}
			out.WriteByte('\n')

			if fmtOverwrite {
				return os.WriteFile(name, out.Bytes(), 0644)
			}
			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")
	cmd.Flags().BoolVar(&toJSON, "json", false, "emit strict JSON")
	cmd.Flags().StringVar(&indent, "indent", "  ", "indentation for each nesting level")

	return cmd
}
