// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// orderedObject is a decoded JSON object that remembers key insertion order.
type orderedObject struct {
	values map[string]any
	keys   []string
}

// newOrderedObject allocates an empty ordered object.
func newOrderedObject() *orderedObject {
	return &orderedObject{values: make(map[string]any)}
}

// set stores value under key; repeated keys keep their first position.
func (object *orderedObject) set(key string, value any) {
	if _, exists := object.values[key]; !exists {
		object.keys = append(object.keys, key)
	}

	object.values[key] = value
}

// get returns value stored under key.
func (object *orderedObject) get(key string) (any, bool) {
	if object == nil {
		return nil, false
	}

	value, ok := object.values[key]
	return value, ok
}

// Keys returns object keys in insertion order.
func (object *orderedObject) Keys() []string {
	if object == nil {
		return nil
	}

	return append([]string(nil), object.keys...)
}

// Len returns number of object members.
func (object *orderedObject) Len() int {
	if object == nil {
		return 0
	}

	return len(object.keys)
}

// MarshalJSON encodes the object preserving member order.
func (object *orderedObject) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	if err := writeOrderedJSON(&out, object, "", 0); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// maxDecodeDepth bounds object and array nesting of decoded documents.
const maxDecodeDepth = 10000

// errDecodeDepth reports a document nested deeper than maxDecodeDepth.
var errDecodeDepth = fmt.Errorf("exceeded max nesting depth %d", maxDecodeDepth)

// decodeOrdered decodes exactly one JSON value keeping object member order.
func decodeOrdered(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty document")
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	value, err := decodeOrderedValue(decoder, 0)
	if err != nil {
		return nil, err
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	return value, nil
}

// decodeOrderedValue reads one value starting at the next decoder token.
// depth counts enclosing objects and arrays.
func decodeOrderedValue(decoder *json.Decoder, depth int) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	switch typed := token.(type) {
	case json.Delim:
		if typed == '{' || typed == '[' {
			if depth >= maxDecodeDepth {
				return nil, errDecodeDepth
			}
		}

		switch typed {
		case '{':
			return decodeOrderedObject(decoder, depth+1)
		case '[':
			return decodeOrderedArray(decoder, depth+1)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", rune(typed))
		}
	case json.Number:
		return typed, nil
	case float64:
		return json.Number(strconv.FormatFloat(typed, 'g', -1, 64)), nil
	case string, bool, nil:
		return typed, nil
	default:
		return nil, fmt.Errorf("unexpected token %T", token)
	}
}

// decodeOrderedObject reads object members until the closing brace.
func decodeOrderedObject(decoder *json.Decoder, depth int) (*orderedObject, error) {
	object := newOrderedObject()
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be string, got %T", token)
		}

		value, err := decodeOrderedValue(decoder, depth)
		if errors.Is(err, errDecodeDepth) {
			return nil, err
		}

		if err != nil {
			return nil, fmt.Errorf("member %q: %w", key, err)
		}

		object.set(key, value)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return object, nil
}

// decodeOrderedArray reads array items until the closing bracket.
func decodeOrderedArray(decoder *json.Decoder, depth int) ([]any, error) {
	out := make([]any, 0)
	for decoder.More() {
		value, err := decodeOrderedValue(decoder, depth)
		if errors.Is(err, errDecodeDepth) {
			return nil, err
		}

		if err != nil {
			return nil, fmt.Errorf("item %d: %w", len(out), err)
		}

		out = append(out, value)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	return out, nil
}

// toOrderedValue converts arbitrary Go values into the ordered representation.
// Plain maps get sorted keys since they carry no order of their own.
func toOrderedValue(value any) (any, error) {
	switch typed := value.(type) {
	case nil, bool, string, json.Number:
		return typed, nil
	case *orderedObject:
		return cloneOrdered(typed), nil
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		object := newOrderedObject()
		for _, key := range keys {
			item, err := toOrderedValue(typed[key])
			if err != nil {
				return nil, err
			}

			object.set(key, item)
		}

		return object, nil
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			converted, err := toOrderedValue(item)
			if err != nil {
				return nil, err
			}

			out = append(out, converted)
		}

		return out, nil
	default:
		data, err := json.Marshal(typed)
		if err != nil {
			return nil, err
		}

		return decodeOrdered(data)
	}
}

// cloneOrdered deep-copies ordered values.
func cloneOrdered(value any) any {
	switch typed := value.(type) {
	case *orderedObject:
		if typed == nil {
			return nil
		}

		out := newOrderedObject()
		for _, key := range typed.keys {
			out.set(key, cloneOrdered(typed.values[key]))
		}

		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, cloneOrdered(item))
		}

		return out
	default:
		return typed
	}
}

// plainValue converts ordered values into plain maps and slices.
func plainValue(value any) any {
	switch typed := value.(type) {
	case *orderedObject:
		if typed == nil {
			return nil
		}

		out := make(map[string]any, len(typed.keys))
		for _, key := range typed.keys {
			out[key] = plainValue(typed.values[key])
		}

		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, plainValue(item))
		}

		return out
	default:
		return typed
	}
}

// writeOrderedJSON encodes ordered value; empty indent produces compact output.
func writeOrderedJSON(out *bytes.Buffer, value any, indent string, depth int) error {
	switch typed := value.(type) {
	case *orderedObject:
		if typed == nil || len(typed.keys) == 0 {
			out.WriteString("{}")
			return nil
		}

		out.WriteByte('{')
		for index, key := range typed.keys {
			if index > 0 {
				out.WriteByte(',')
			}

			writeJSONBreak(out, indent, depth+1)
			if err := writeJSONScalar(out, key); err != nil {
				return err
			}

			out.WriteByte(':')
			if indent != "" {
				out.WriteByte(' ')
			}

			if err := writeOrderedJSON(out, typed.values[key], indent, depth+1); err != nil {
				return err
			}
		}

		writeJSONBreak(out, indent, depth)
		out.WriteByte('}')
		return nil
	case []any:
		if len(typed) == 0 {
			out.WriteString("[]")
			return nil
		}

		out.WriteByte('[')
		for index, item := range typed {
			if index > 0 {
				out.WriteByte(',')
			}

			writeJSONBreak(out, indent, depth+1)
			if err := writeOrderedJSON(out, item, indent, depth+1); err != nil {
				return err
			}
		}

		writeJSONBreak(out, indent, depth)
		out.WriteByte(']')
		return nil
	case json.Number:
		out.WriteString(typed.String())
		return nil
	default:
		return writeJSONScalar(out, typed)
	}
}

// writeJSONBreak writes newline plus indentation for pretty output.
func writeJSONBreak(out *bytes.Buffer, indent string, depth int) {
	if indent == "" {
		return
	}

	out.WriteByte('\n')
	out.WriteString(strings.Repeat(indent, depth))
}

// writeJSONScalar encodes scalar value without HTML escaping.
func writeJSONScalar(out *bytes.Buffer, value any) error {
	var encoded bytes.Buffer
	encoder := json.NewEncoder(&encoded)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return err
	}

	out.Write(bytes.TrimRight(encoded.Bytes(), "\n"))
	return nil
}

// yamlNodeForOrdered builds yaml.Node tree that keeps object member order.
func yamlNodeForOrdered(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil
	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil
	case string:
		return yamlScalarNode("!!str", typed), nil
	case json.Number:
		if intValue, err := typed.Int64(); err == nil {
			return yamlScalarNode("!!int", strconv.FormatInt(intValue, 10)), nil
		}

		floatValue, err := typed.Float64()
		if err != nil {
			return nil, err
		}

		return yamlScalarNode("!!float", strconv.FormatFloat(floatValue, 'g', -1, 64)), nil
	case *orderedObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if typed == nil {
			return node, nil
		}

		for _, key := range typed.keys {
			valueNode, err := yamlNodeForOrdered(typed.values[key])
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, yamlScalarNode("!!str", key), valueNode)
		}

		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			valueNode, err := yamlNodeForOrdered(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, valueNode)
		}

		return node, nil
	default:
		converted, err := toOrderedValue(typed)
		if err != nil {
			return nil, err
		}

		return yamlNodeForOrdered(converted)
	}
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}

// marshalYAMLNode serializes node as YAML document with two-space indent.
func marshalYAMLNode(node *yaml.Node) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// asString returns value as string or empty string.
func asString(value any) string {
	text, _ := value.(string)
	return text
}

// asStringSlice returns string items from JSON array, skipping non-strings.
func asStringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		text, ok := item.(string)
		if !ok {
			continue
		}

		out = append(out, text)
	}

	return out
}

// asInt returns integral JSON number as int.
func asInt(value any) (int, bool) {
	number, ok := value.(json.Number)
	if !ok {
		return 0, false
	}

	parsed, err := strconv.Atoi(number.String())
	if err != nil {
		return 0, false
	}

	return parsed, true
}

// inlineJSON renders value as single-line JSON text.
func inlineJSON(value any) string {
	var out bytes.Buffer
	if err := writeOrderedJSON(&out, value, "", 0); err != nil {
		return fmt.Sprintf("%v", value)
	}

	return out.String()
}
