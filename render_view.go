// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import "strings"

// IndentUnit is the horizontal offset added per nesting level.
const IndentUnit = 20

const (
	// StyleObject is the visual category of object blocks.
	StyleObject Style = "object"
	// StyleArray is the visual category of array blocks.
	StyleArray Style = "array"
	// StyleScalar is the visual category of scalar leaf blocks.
	StyleScalar Style = "scalar"
	// StyleInvalid is the visual category of malformed schema placeholders.
	StyleInvalid Style = "invalid"
)

// Style is the visual category of a rendered block.
type Style string

// Block is one rendered schema node.
type Block struct {
	Key      string `json:"key"`
	Type     string `json:"type"`
	ItemType string `json:"itemType,omitempty"`
	// Label is "key: type" plus " of <item type>" for typed arrays.
	Label       string   `json:"label"`
	Pattern     string   `json:"pattern,omitempty"`
	Style       Style    `json:"style"`
	Description string   `json:"description,omitempty"`
	Details     []Detail `json:"details,omitempty"`
	Children    []Block  `json:"children,omitempty"`
	Level       int      `json:"level"`
	Indent      int      `json:"indent"`
	// Container reports whether Children are drawn in a nested container.
	Container bool `json:"container,omitempty"`
}

// Detail is one secondary "Name: Value" line of a block.
type Detail struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Heading returns label with pattern suffix when present.
func (block Block) Heading() string {
	if block.Pattern == "" {
		return block.Label
	}

	return block.Label + " (pattern: " + block.Pattern + ")"
}

// Text returns detail as "Name: Value".
func (detail Detail) Text() string {
	return detail.Name + ": " + detail.Value
}

// SchemaView is the rendered schema column.
type SchemaView struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Draft       string   `json:"draft,omitempty"`
	Properties  []Block  `json:"properties"`
	Required    []string `json:"required,omitempty"`
}

// RenderProperty projects one schema node into a block tree.
// Negative levels are treated as zero.
func RenderProperty(key string, node SchemaNode, level int) Block {
	if level < 0 {
		level = 0
	}

	block := Block{
		Key:         key,
		Type:        node.Type,
		Label:       key + ": " + node.Type,
		Description: node.Description,
		Level:       level,
		Indent:      level * IndentUnit,
	}

	switch node.Kind {
	case KindObject:
		block.Style = StyleObject
		block.Container = true
		block.Children = make([]Block, 0, len(node.Object.Properties))
		for _, property := range node.Object.Properties {
			block.Children = append(block.Children, RenderProperty(property.Key, property.Node, level+1))
		}
	case KindArray:
		block.Style = StyleArray
		if items := node.Array.Items; items != nil && items.Type != "" {
			block.ItemType = items.Type
			block.Label += " of " + items.Type
		}
	case KindScalar:
		block.Style = StyleScalar
		block.Pattern = node.Scalar.Pattern
	default:
		block.Style = StyleInvalid
		block.Label = key + ": (missing type)"
	}

	block.Details = nodeDetails(node)
	return block
}

// RenderSchema renders schema column: header, top-level properties and required list.
func RenderSchema(doc SchemaDocument) SchemaView {
	view := SchemaView{
		Title:       strings.TrimSpace(doc.Title),
		Description: strings.TrimSpace(doc.Description),
		Draft:       draftText(doc.Draft),
		Properties:  make([]Block, 0, len(doc.Properties)),
	}

	for _, property := range doc.Properties {
		view.Properties = append(view.Properties, RenderProperty(property.Key, property.Node, 0))
	}

	if len(doc.Required) > 0 {
		view.Required = append([]string(nil), doc.Required...)
	}

	return view
}

// Walk visits blocks depth-first in render order.
func Walk(blocks []Block, visit func(block Block, path string)) {
	walkBlocks(blocks, "", visit)
}

// walkBlocks visits blocks with dot-joined key paths.
func walkBlocks(blocks []Block, prefix string, visit func(block Block, path string)) {
	for _, block := range blocks {
		path := joinPath(prefix, block.Key)
		visit(block, path)
		walkBlocks(block.Children, path, visit)
	}
}
