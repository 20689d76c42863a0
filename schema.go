// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// NodeKind selects which variant payload of SchemaNode is populated.
type NodeKind int

const (
	// KindInvalid marks nodes without usable type information.
	KindInvalid NodeKind = iota
	// KindObject marks object nodes that declare properties.
	KindObject
	// KindArray marks array nodes.
	KindArray
	// KindScalar marks every other typed node.
	KindScalar
)

// String returns lowercase kind name.
func (kind NodeKind) String() string {
	switch kind {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindScalar:
		return "scalar"
	default:
		return "invalid"
	}
}

// knownTypeNames lists JSON Schema primitive type names.
var knownTypeNames = map[string]struct{}{
	"object":  {},
	"array":   {},
	"string":  {},
	"number":  {},
	"integer": {},
	"boolean": {},
	"null":    {},
}

// SchemaNode is one schema tree node; exactly one variant payload matches Kind.
type SchemaNode struct {
	Object *ObjectSchema
	Array  *ArraySchema
	Scalar *ScalarSchema

	// Type is display text of the "type" keyword.
	Type        string
	Description string
	// Problem explains why a KindInvalid node could not be classified.
	Problem string
	Kind    NodeKind

	example    any
	hasExample bool
}

// ObjectSchema is the payload of object nodes.
type ObjectSchema struct {
	Properties []Property
	Required   []string
}

// ArraySchema is the payload of array nodes.
type ArraySchema struct {
	Items    *SchemaNode
	MinItems *int
}

// ScalarSchema is the payload of scalar nodes.
type ScalarSchema struct {
	MinLength *int
	Pattern   string
}

// Property is one named entry of a "properties" mapping.
type Property struct {
	Node SchemaNode
	Key  string
}

// SchemaDocument is a parsed schema with root metadata.
type SchemaDocument struct {
	Root        SchemaNode
	Title       string
	Description string
	Schema      string
	ID          string
	Draft       DraftInfo
	Required    []string
	Properties  []Property
}

// ParseOptions configures schema loading.
type ParseOptions struct {
	// Strict rejects property nodes with missing or unknown type at load time.
	Strict bool
}

// ParseSchemaFile reads and parses schema document from file.
func ParseSchemaFile(path string, opt ParseOptions) (SchemaDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SchemaDocument{}, fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	return ParseSchema(data, opt)
}

// ParseSchema decodes schema bytes into a SchemaDocument.
func ParseSchema(data []byte, opt ParseOptions) (SchemaDocument, error) {
	decoded, err := decodeOrdered(data)
	if err != nil {
		return SchemaDocument{}, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	root, ok := decoded.(*orderedObject)
	if !ok {
		return SchemaDocument{}, ErrSchemaRootType
	}

	rootNode := parseSchemaNode(root)
	doc := SchemaDocument{
		Root:        rootNode,
		Title:       asString(objectValue(root, "title")),
		Description: asString(objectValue(root, "description")),
		Schema:      strings.TrimSpace(asString(objectValue(root, "$schema"))),
		ID:          strings.TrimSpace(asString(objectValue(root, "$id"))),
		Required:    asStringSlice(objectValue(root, "required")),
		Properties:  parseProperties(objectValue(root, "properties")),
	}
	doc.Draft = DetectDraft(doc.Schema)

	if opt.Strict {
		if err := checkProperties(doc.Properties, ""); err != nil {
			return SchemaDocument{}, fmt.Errorf("%w: %w", ErrMalformedSchema, err)
		}
	}

	return doc, nil
}

// parseSchemaNode classifies one decoded value into a SchemaNode.
func parseSchemaNode(raw any) SchemaNode {
	object, ok := raw.(*orderedObject)
	if !ok {
		return SchemaNode{Kind: KindInvalid, Problem: "schema node is not an object"}
	}

	node := SchemaNode{
		Type:        typeText(objectValue(object, "type")),
		Description: asString(objectValue(object, "description")),
	}
	node.example, node.hasExample = exampleHint(object)

	properties, hasProperties := objectValue(object, "properties").(*orderedObject)
	switch {
	case node.Type == "object" && hasProperties:
		node.Kind = KindObject
		node.Object = &ObjectSchema{
			Properties: parseProperties(properties),
			Required:   asStringSlice(objectValue(object, "required")),
		}
	case node.Type == "array":
		node.Kind = KindArray
		node.Array = &ArraySchema{}
		if items, ok := object.get("items"); ok {
			itemNode := parseSchemaNode(items)
			node.Array.Items = &itemNode
		}

		if value, ok := asInt(objectValue(object, "minItems")); ok {
			node.Array.MinItems = &value
		}
	case node.Type == "":
		node.Kind = KindInvalid
		node.Problem = "missing type"
	default:
		node.Kind = KindScalar
		node.Scalar = &ScalarSchema{
			Pattern: asString(objectValue(object, "pattern")),
		}

		if value, ok := asInt(objectValue(object, "minLength")); ok {
			node.Scalar.MinLength = &value
		}
	}

	return node
}

// parseProperties converts "properties" mapping into ordered property list.
func parseProperties(raw any) []Property {
	object, ok := raw.(*orderedObject)
	if !ok || object.Len() == 0 {
		return nil
	}

	out := make([]Property, 0, object.Len())
	for _, key := range object.keys {
		out = append(out, Property{
			Key:  key,
			Node: parseSchemaNode(object.values[key]),
		})
	}

	return out
}

// checkProperties collects every property path with missing or unknown type.
func checkProperties(properties []Property, prefix string) error {
	var result *multierror.Error
	for _, property := range properties {
		path := joinPath(prefix, property.Key)
		node := property.Node

		switch {
		case node.Kind == KindInvalid:
			result = multierror.Append(result, fmt.Errorf("%s: %s", path, node.Problem))
		case !isKnownType(node.Type):
			result = multierror.Append(result, fmt.Errorf("%s: unrecognized type %s", path, node.Type))
		}

		if node.Object != nil {
			if err := checkProperties(node.Object.Properties, path); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}

	return result.ErrorOrNil()
}

// isKnownType reports whether type text names a JSON Schema primitive type.
func isKnownType(typeName string) bool {
	_, ok := knownTypeNames[typeName]
	return ok
}

// typeText converts "type" keyword to display string.
func typeText(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(typed)
	default:
		return inlineJSON(typed)
	}
}

// exampleHint returns preferred explicit example value from schema object.
func exampleHint(object *orderedObject) (any, bool) {
	if value, ok := object.get("default"); ok {
		return value, true
	}

	if values, ok := objectValue(object, "examples").([]any); ok && len(values) > 0 {
		return values[0], true
	}

	if value, ok := object.get("const"); ok {
		return value, true
	}

	if values, ok := objectValue(object, "enum").([]any); ok && len(values) > 0 {
		return values[0], true
	}

	return nil, false
}

// objectValue returns member value or nil.
func objectValue(object *orderedObject, key string) any {
	value, _ := object.get(key)
	return value
}

// joinPath joins property path segments with a dot.
func joinPath(base, segment string) string {
	if base == "" {
		return segment
	}

	return base + "." + segment
}
