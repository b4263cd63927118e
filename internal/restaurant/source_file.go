// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package restaurant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported dataset file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// FileSource reads a dataset file whose format follows its extension.
type FileSource struct {
	Path string
}

// NewFileSource creates a source for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load implements [Source].
func (source *FileSource) Load(ctx context.Context) ([]Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := FormatFromPath(source.Path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(source.Path)
	if err != nil {
		return nil, fmt.Errorf("restaurant: open dataset: %w", err)
	}
	defer file.Close()

	return Decode(file, format)
}

// FormatFromPath maps a file extension to a dataset format.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("restaurant: unsupported dataset extension %q", filepath.Ext(path))
}

// Decode reads a whole dataset in the given format.
func Decode(reader io.Reader, format string) ([]Restaurant, error) {
	switch format {
	case FormatJSON:
		records := make([]Restaurant, 0)
		if err := json.NewDecoder(reader).Decode(&records); err != nil {
			return nil, fmt.Errorf("restaurant: decode json dataset: %w", err)
		}
		return records, nil

	case FormatYAML:
		records := make([]Restaurant, 0)
		if err := yaml.NewDecoder(reader).Decode(&records); err != nil && err != io.EOF {
			return nil, fmt.Errorf("restaurant: decode yaml dataset: %w", err)
		}
		return records, nil

	case FormatCSV:
		return ReadCSV(reader)
	}
	return nil, fmt.Errorf("restaurant: unsupported dataset format %q", format)
}

// Encode writes records as a JSON or YAML dataset.
//
// Ids and slugs are derived data: JSON output carries them for inspection,
// YAML output omits them.
func Encode(writer io.Writer, records []Restaurant, format string) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(records); err != nil {
			return fmt.Errorf("restaurant: encode json dataset: %w", err)
		}
		return nil

	case FormatYAML:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(records); err != nil {
			return fmt.Errorf("restaurant: encode yaml dataset: %w", err)
		}
		return encoder.Close()
	}
	return fmt.Errorf("restaurant: cannot encode dataset as %q", format)
}
