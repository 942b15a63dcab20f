package calc

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
)

var ErrUnknownOutput = errors.New("calc: unknown output format")

// Render writes the results to w in the given output format.
func Render(w io.Writer, results []Result, format string) error {
	switch format {
	case "", OutputText:
		for _, result := range results {
			if _, err := fmt.Fprintf(w, "%s (%s): %s\n", result.Name, result.Op, result.Text); err != nil {
				return err
			}
		}

		return nil

	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encode results: %w", err)
		}

		return enc.Close()

	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownOutput)
	}
}
