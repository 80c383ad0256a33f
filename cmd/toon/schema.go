package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macropower/toon"
	"github.com/macropower/toon/schema"
)

type schemaFlags struct {
	decodeStrict bool
	output       string
}

func newSchemaCommand() *cobra.Command {
	cfg := schema.NewConfig()
	f := &schemaFlags{}

	cmd := &cobra.Command{
		Use:   "schema [flags] <file|-> [file2 ...]",
		Short: "Infer a JSON Schema from one or more TOON documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSchema(cfg, f, args)
		},
	}

	cfg.RegisterFlags(cmd.Flags())
	cmd.Flags().BoolVar(&f.decodeStrict, "decode-strict", true,
		"enforce strict TOON indentation and blank-line rules while decoding input")
	cmd.Flags().StringVarP(&f.output, "output", "o", "-", "output file path (- for stdout)")

	if err := cfg.RegisterCompletions(cmd); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "register completions: %v\n", err)
	}

	return cmd
}

func runSchema(cfg *schema.Config, f *schemaFlags, args []string) error {
	values := make([]any, len(args))

	for i, path := range args {
		data, err := readInput(path)
		if err != nil {
			return err
		}

		v, err := toon.Decode(string(data), toon.WithStrict(f.decodeStrict))
		if err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}

		values[i] = v
	}

	result := cfg.NewGenerator().Infer(values...)

	indent := "  "
	if cfg.Indent > 0 {
		indent = strings.Repeat(" ", cfg.Indent)
	}

	out, err := json.MarshalIndent(result, "", indent)
	if err != nil {
		return fmt.Errorf("render schema: %w", err)
	}

	return writeOutput(f.output, out)
}
