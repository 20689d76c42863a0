// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"fmt"
	"io"
	"slices"

	"github.com/olekukonko/tablewriter"
)

// tableHeader lists flat property table columns.
var tableHeader = []string{"Path", "Type", "Required", "Description", "Constraints"}

// writeTablePage writes one table row per rendered block in depth-first order.
// Required is only known for members of objects that declare it.
func writeTablePage(w io.Writer, page Page, doc SchemaDocument) {
	if page.Schema.Title != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", page.Schema.Title)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(tableHeader)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetRowLine(false)
	table.AppendBulk(tableRows(page.Schema.Properties, doc.Properties, doc.Required, "", nil))
	table.Render()
}

// tableRows flattens blocks depth-first. properties are the schema entries
// blocks were rendered from, so required flags come from the owning object.
func tableRows(blocks []Block, properties []Property, required []string, prefix string, rows [][]string) [][]string {
	for index, block := range blocks {
		path := joinPath(prefix, block.Key)

		typeText := block.Type
		if block.ItemType != "" {
			typeText += " of " + block.ItemType
		}

		if block.Style == StyleInvalid {
			typeText = "(missing type)"
		}

		rows = append(rows, []string{
			path,
			typeText,
			yesNo(slices.Contains(required, block.Key)),
			markdownText(block.Description),
			constraintSummary(block),
		})

		if index < len(properties) && properties[index].Node.Kind == KindObject {
			object := properties[index].Node.Object
			rows = tableRows(block.Children, object.Properties, object.Required, path, rows)
		}
	}

	return rows
}
