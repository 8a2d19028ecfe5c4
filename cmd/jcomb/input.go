package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

// readInput reads the named file, or stdin when no file or "-" is given.
func readInput(args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read file: %w", err)
	}
	return args[0], data, nil
}

type outputFormat string

const (
	formatText  outputFormat = "text"
	formatDebug outputFormat = "debug"
	formatJSON  outputFormat = "json"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string {
	return string(*f)
}

func (f *outputFormat) Set(s string) error {
	switch outputFormat(s) {
	case formatText, formatDebug, formatJSON:
		*f = outputFormat(s)
		return nil
	}
	return fmt.Errorf("unknown format %q (expected text, debug or json)", s)
}

func (f *outputFormat) Type() string {
	return "format"
}
