// Package serializer handles output encoding and destinations for resolved
// results: JSON and YAML documents, written to stdout or a file.
package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format identifies an output encoding.
type Format string

const (
	// FormatTable is the human-readable text rendering (the default).
	FormatTable Format = "table"
	// FormatJSON is indented JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// StdoutURI is the special output path indicating stdout.
const StdoutURI = "-"

// SupportedFormats lists the valid formats for flag usage strings.
func SupportedFormats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML}
}

// IsUnknown reports whether the format is not one of the supported ones.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return false
	}
	return true
}

// Serializer writes a value to its destination in one format.
type Serializer interface {
	Serialize(v any) error
	Close() error
}

// Writer serializes values to an io.Writer.
type Writer struct {
	format Format
	out    io.Writer
	closer io.Closer
}

// NewWriter creates a Writer over out. Unknown formats fall back to JSON.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &Writer{format: format, out: out}
}

// NewStdoutWriter creates a Writer over stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a Writer over the given file path, or over
// stdout when the path is empty or "-". The file is created on the first
// Serialize call's behalf, truncating any existing content.
func NewFileWriterOrStdout(format Format, path string) (*Writer, error) {
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	w := NewWriter(format, f)
	w.closer = f
	return w, nil
}

// Serialize encodes v in the writer's format. Raw strings pass through
// untouched so preformatted text (the table rendering) is not re-encoded.
func (w *Writer) Serialize(v any) error {
	if s, ok := v.(string); ok {
		_, err := io.WriteString(w.out, s)
		return err
	}

	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()
	default:
		j, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		_, err = fmt.Fprintln(w.out, string(j))
		return err
	}
}

// Close releases the underlying file, if any.
func (w *Writer) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}
