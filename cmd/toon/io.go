package main

import (
	"fmt"
	"io"
	"os"
)

// readInput reads path's contents, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" || path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}

// writeOutput writes data (plus a trailing newline) to path, or stdout
// when path is "-" or empty.
func writeOutput(path string, data []byte) error {
	data = append(data, '\n')

	if path == "-" || path == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
