// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

const (
	// DataFormatYAML encodes the data panel as YAML.
	DataFormatYAML DataFormat = "yaml"
	// DataFormatJSON encodes the data panel as indented JSON.
	DataFormatJSON DataFormat = "json"
)

// DataFormat selects data panel encoding.
type DataFormat string

// AnalysisResult is an opaque data document displayed next to the schema.
// The zero value is an empty document. Values are never mutated in place;
// updates replace the whole document.
type AnalysisResult struct {
	value   any
	present bool
}

// ParseAnalysisResultFile reads and decodes data document from file.
func ParseAnalysisResultFile(path string) (AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("%w: %w", ErrReadDataFile, err)
	}

	return ParseAnalysisResult(data)
}

// ParseAnalysisResult decodes JSON data document keeping member order.
func ParseAnalysisResult(data []byte) (AnalysisResult, error) {
	value, err := decodeOrdered(data)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("%w: %w", ErrDecodeData, err)
	}

	return AnalysisResult{value: value, present: true}, nil
}

// NewAnalysisResult wraps a Go value; plain maps are ordered by key.
func NewAnalysisResult(value any) (AnalysisResult, error) {
	converted, err := toOrderedValue(value)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("%w: %w", ErrDecodeData, err)
	}

	return AnalysisResult{value: converted, present: true}, nil
}

// IsZero reports whether the document holds no value at all.
func (result AnalysisResult) IsZero() bool {
	return !result.present
}

// Value returns deep copy of the document as plain maps, slices and scalars.
func (result AnalysisResult) Value() any {
	return plainValue(result.value)
}

// JSON encodes document; empty indent gives compact output.
func (result AnalysisResult) JSON(indent string) ([]byte, error) {
	var out bytes.Buffer
	if err := writeOrderedJSON(&out, result.value, indent, 0); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// YAML encodes document as YAML keeping member order.
func (result AnalysisResult) YAML() ([]byte, error) {
	node, err := yamlNodeForOrdered(result.value)
	if err != nil {
		return nil, err
	}

	return marshalYAMLNode(node)
}

// Encode renders document in selected data format.
func (result AnalysisResult) Encode(format DataFormat) (string, error) {
	format, err := normalizeDataFormat(format)
	if err != nil {
		return "", err
	}

	var data []byte
	switch format {
	case DataFormatJSON:
		data, err = result.JSON("  ")
	default:
		data, err = result.YAML()
	}

	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(data), "\n"), nil
}

// MarshalJSON implements json.Marshaler with member order preserved.
func (result AnalysisResult) MarshalJSON() ([]byte, error) {
	return result.JSON("")
}

// UnmarshalJSON implements json.Unmarshaler with member order preserved.
func (result *AnalysisResult) UnmarshalJSON(data []byte) error {
	parsed, err := ParseAnalysisResult(data)
	if err != nil {
		return err
	}

	*result = parsed
	return nil
}

// normalizeDataFormat validates data format and falls back to YAML.
func normalizeDataFormat(format DataFormat) (DataFormat, error) {
	normalized := DataFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case "":
		return DataFormatYAML, nil
	case DataFormatYAML, DataFormatJSON:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownDataFormat, format)
	}
}
