package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macropower/toon"
	"github.com/macropower/toon/internal/yamlconv"
)

type decodeFlags struct {
	format string
	indent int
	strict bool
	output string
}

func newDecodeCommand() *cobra.Command {
	f := &decodeFlags{}

	cmd := &cobra.Command{
		Use:   "decode [flags] <file|->",
		Short: "Decode TOON text into JSON or YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			return runDecode(f, path)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "json", "output format: json or yaml")
	flags.IntVar(&f.indent, "indent", 2, "indentation grid size of the input")
	flags.BoolVar(&f.strict, "strict", true, "enforce strict indentation and blank-line rules")
	flags.StringVarP(&f.output, "output", "o", "-", "output file path (- for stdout)")

	_ = cmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions([]string{"json", "yaml"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func runDecode(f *decodeFlags, path string) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}

	v, err := toon.Decode(string(data),
		toon.WithDecodeIndent(f.indent),
		toon.WithStrict(f.strict),
	)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	out, err := encodeBackEnd(f.format, v)
	if err != nil {
		return err
	}

	slog.Debug("decoded document",
		slog.String("input", path),
		slog.Int("inputBytes", len(data)),
		slog.Int("outputBytes", len(out)),
	)

	return writeOutput(f.output, out)
}

// encodeBackEnd renders a decoded TOON value as JSON or YAML text.
func encodeBackEnd(format string, v any) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("render JSON: %w", err)
		}

		return out, nil
	case "yaml":
		out, err := yamlconv.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("render YAML: %w", err)
		}

		return []byte(strings.TrimRight(string(out), "\n")), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
