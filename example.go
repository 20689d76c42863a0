// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	// ExampleModeAll builds example with all declared properties.
	ExampleModeAll ExampleMode = "all"
	// ExampleModeRequired builds example with required properties only.
	ExampleModeRequired ExampleMode = "required"
)

// ExampleMode configures example generation property coverage.
type ExampleMode string

// exampleScalarPlaceholders provides fallback values for scalar schema types.
var exampleScalarPlaceholders = map[string]any{
	"string":  "<string>",
	"number":  json.Number("0"),
	"integer": json.Number("0"),
	"boolean": false,
	"null":    nil,
}

// GenerateExample builds a data document shaped by schema properties.
func GenerateExample(doc SchemaDocument, mode ExampleMode) (AnalysisResult, error) {
	mode, err := normalizeExampleMode(mode)
	if err != nil {
		return AnalysisResult{}, err
	}

	value := buildExampleObject(doc.Properties, doc.Required, mode)
	return AnalysisResult{value: value, present: true}, nil
}

// GenerateExampleJSON returns generated example payload encoded as pretty JSON.
func GenerateExampleJSON(doc SchemaDocument, mode ExampleMode) ([]byte, error) {
	result, err := GenerateExample(doc, mode)
	if err != nil {
		return nil, err
	}

	data, err := result.JSON("  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleJSON, err)
	}

	return append(data, '\n'), nil
}

// GenerateExampleYAML returns generated example payload as YAML with
// property descriptions attached as key comments.
func GenerateExampleYAML(doc SchemaDocument, mode ExampleMode) ([]byte, error) {
	result, err := GenerateExample(doc, mode)
	if err != nil {
		return nil, err
	}

	node, err := yamlNodeForOrdered(result.value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	annotateYAMLMapping(node, doc.Properties)

	data, err := marshalYAMLNode(node)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	return data, nil
}

// normalizeExampleMode validates and normalizes caller mode value.
func normalizeExampleMode(mode ExampleMode) (ExampleMode, error) {
	normalized := ExampleMode(strings.ToLower(strings.TrimSpace(string(mode))))
	switch normalized {
	case ExampleModeAll, ExampleModeRequired:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleMode, mode)
	}
}

// buildExampleObject materializes object members in schema order.
func buildExampleObject(properties []Property, required []string, mode ExampleMode) *orderedObject {
	out := newOrderedObject()
	for _, property := range properties {
		if mode == ExampleModeRequired && !slices.Contains(required, property.Key) {
			continue
		}

		out.set(property.Key, buildExampleNode(property.Node, mode))
	}

	return out
}

// buildExampleNode builds example value for one schema node.
func buildExampleNode(node SchemaNode, mode ExampleMode) any {
	if node.hasExample {
		return cloneOrdered(node.example)
	}

	switch node.Kind {
	case KindObject:
		return buildExampleObject(node.Object.Properties, node.Object.Required, mode)
	case KindArray:
		return buildExampleArray(node.Array, mode)
	case KindScalar:
		if node.Type == "object" {
			return newOrderedObject()
		}

		if value, ok := exampleScalarPlaceholders[node.Type]; ok {
			return value
		}
	}

	return nil
}

// maxExampleItems caps generated array length regardless of minItems.
const maxExampleItems = 16

// buildExampleArray repeats item example to satisfy minItems, one item by default.
func buildExampleArray(array *ArraySchema, mode ExampleMode) []any {
	if array.Items == nil {
		return []any{}
	}

	count := 1
	if array.MinItems != nil {
		count = min(max(*array.MinItems, 0), maxExampleItems)
	}

	out := make([]any, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, buildExampleNode(*array.Items, mode))
	}

	return out
}

// annotateYAMLMapping assigns property descriptions to YAML map keys.
func annotateYAMLMapping(node *yaml.Node, properties []Property) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}

	for index := 0; index+1 < len(node.Content); index += 2 {
		keyNode := node.Content[index]
		valueNode := node.Content[index+1]

		position := slices.IndexFunc(properties, func(property Property) bool {
			return property.Key == keyNode.Value
		})
		if position < 0 {
			continue
		}

		property := properties[position].Node
		if comment := yamlComment(property.Description); comment != "" {
			keyNode.HeadComment = comment
		}

		switch property.Kind {
		case KindObject:
			annotateYAMLMapping(valueNode, property.Object.Properties)
		case KindArray:
			if property.Array.Items == nil || property.Array.Items.Object == nil {
				continue
			}

			for _, item := range valueNode.Content {
				annotateYAMLMapping(item, property.Array.Items.Object.Properties)
			}
		}
	}
}

// yamlComment strips blank lines from comment body.
func yamlComment(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
