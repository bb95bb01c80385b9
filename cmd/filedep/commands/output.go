package commands

import (
	"encoding/json"
	"io"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

type format string

const (
	formatYAML format = "yaml"
	formatJSON format = "json"
)

func parseFormat(s string) (format, error) {
	switch format(s) {
	case formatYAML, formatJSON:
		return format(s), nil
	default:
		return "", zerr.With(zerr.New("unsupported output format"), "format", s)
	}
}

func encode(w io.Writer, f format, v any) error {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return zerr.Wrap(err, "failed to encode output")
		}
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return zerr.Wrap(err, "failed to encode output")
		}
		if err := enc.Close(); err != nil {
			return zerr.Wrap(err, "failed to encode output")
		}
	}
	return nil
}
