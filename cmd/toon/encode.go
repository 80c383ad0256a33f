package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/toon"
	"github.com/macropower/toon/internal/value"
	"github.com/macropower/toon/internal/yamlconv"
)

// errUnknownFormat is returned for any --format value other than "json"
// or "yaml", shared by the encode and decode commands.
var errUnknownFormat = errors.New("unknown format, want json or yaml")

type encodeFlags struct {
	format       string
	delimiter    string
	indent       int
	lengthMarker bool
	output       string
}

func newEncodeCommand() *cobra.Command {
	f := &encodeFlags{}

	cmd := &cobra.Command{
		Use:   "encode [flags] <file|->",
		Short: "Encode a JSON or YAML document as TOON text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			return runEncode(f, path)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "json", "input format: json or yaml")
	flags.StringVar(&f.delimiter, "delimiter", ",", "array/tabular delimiter: , | or tab")
	flags.IntVar(&f.indent, "indent", 2, "spaces per indentation level")
	flags.BoolVar(&f.lengthMarker, "length-marker", false, "prefix array lengths with '#'")
	flags.StringVarP(&f.output, "output", "o", "-", "output file path (- for stdout)")

	_ = cmd.RegisterFlagCompletionFunc("format",
		cobra.FixedCompletions([]string{"json", "yaml"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func runEncode(f *encodeFlags, path string) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}

	v, err := decodeFrontEnd(f.format, data)
	if err != nil {
		return err
	}

	delimiter, err := toon.ParseDelimiter(f.delimiter)
	if err != nil {
		return err
	}

	out, err := toon.Encode(v,
		toon.WithEncodeIndent(f.indent),
		toon.WithDelimiter(delimiter),
		toon.WithLengthMarker(f.lengthMarker),
	)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	slog.Debug("encoded document",
		slog.String("input", path),
		slog.Int("inputBytes", len(data)),
		slog.Int("outputBytes", len(out)),
	)

	return writeOutput(f.output, []byte(out))
}

// decodeFrontEnd parses data in the given input format into the TOON
// value model, ready for [toon.Encode].
func decodeFrontEnd(format string, data []byte) (any, error) {
	switch format {
	case "json":
		v, err := value.DecodeOrderedJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}

		return v, nil
	case "yaml":
		v, err := yamlconv.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}

		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
