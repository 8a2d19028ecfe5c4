package main

import (
	"fmt"

	"github.com/dhamidi/jcomb/format"
	"github.com/dhamidi/jcomb/jsonc"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	outFormat := formatDebug
	var indent string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a document and dump the parsed value",
		Long: `Parse a document and dump the parsed value.

Reads from stdin when no file (or "-") is given. The exit status is non-zero
when the document does not parse.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := readInput(args)
			if err != nil {
				return err
			}

			value, err := jsonc.DecodeString(string(data), jsonc.WithFile(name))
			if err != nil {
				return err
			}

			var opts []format.Option
			if indent != "" {
				opts = append(opts, format.WithIndent(indent))
			}

			var encoder format.Encoder
			switch outFormat {
			case formatText:
				encoder = format.NewTextEncoder(cmd.OutOrStdout(), opts...)
			case formatJSON:
				encoder = format.NewJSONEncoder(cmd.OutOrStdout(), opts...)
			default:
				encoder = format.NewDebugEncoder(cmd.OutOrStdout())
			}

			if err := encoder.Encode(value); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outFormat != formatDebug {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().VarP(&outFormat, "format", "f", "output format (text, debug, json)")
	cmd.Flags().StringVar(&indent, "indent", "", "indent text and json output with this string")

	return cmd
}
