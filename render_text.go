// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// textColumnsPerUnit converts block indent units into terminal columns.
const textColumnsPerUnit = 10

// textPalette holds colour categories used by terminal output.
type textPalette struct {
	object   *color.Color
	array    *color.Color
	scalar   *color.Color
	invalid  *color.Color
	required *color.Color
	heading  *color.Color
	muted    *color.Color
}

// newTextPalette builds palette with colours forced on or off.
func newTextPalette(enabled bool) textPalette {
	palette := textPalette{
		object:   color.New(color.FgBlue, color.Bold),
		array:    color.New(color.FgGreen),
		scalar:   color.New(color.FgMagenta),
		invalid:  color.New(color.FgYellow),
		required: color.New(color.FgRed),
		heading:  color.New(color.Bold),
		muted:    color.New(color.FgHiBlack),
	}

	for _, c := range []*color.Color{
		palette.object,
		palette.array,
		palette.scalar,
		palette.invalid,
		palette.required,
		palette.heading,
		palette.muted,
	} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return palette
}

// forStyle returns label colour for block style.
func (palette textPalette) forStyle(style Style) *color.Color {
	switch style {
	case StyleObject:
		return palette.object
	case StyleArray:
		return palette.array
	case StyleScalar:
		return palette.scalar
	default:
		return palette.invalid
	}
}

// writeTextPage writes terminal layout: schema column first, data column below.
func writeTextPage(w io.Writer, page Page, opt Options) {
	palette := newTextPalette(opt.Color)

	writeTextHeading(w, palette, page.Title, "=")
	_, _ = fmt.Fprintln(w)

	writeTextHeading(w, palette, "JSON Schema", "-")
	if page.Schema.Title != "" {
		_, _ = fmt.Fprintln(w, palette.heading.Sprint(page.Schema.Title))
	}

	for _, line := range wrapText(page.Schema.Description, opt.WrapWidth) {
		_, _ = fmt.Fprintln(w, line)
	}

	if page.Schema.Draft != "" {
		_, _ = fmt.Fprintln(w, palette.muted.Sprint("Draft: "+page.Schema.Draft))
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, palette.heading.Sprint("Properties:"))
	for _, block := range page.Schema.Properties {
		writeTextBlock(w, palette, block, opt.WrapWidth)
	}

	if len(page.Schema.Required) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, palette.required.Sprint("Required Fields:"))

		tags := make([]string, 0, len(page.Schema.Required))
		for _, field := range page.Schema.Required {
			tags = append(tags, palette.required.Sprint("["+field+"]"))
		}

		_, _ = fmt.Fprintln(w, strings.Join(tags, " "))
	}

	_, _ = fmt.Fprintln(w)
	writeTextHeading(w, palette, "Analysis Data", "-")
	if page.Data.Generated {
		_, _ = fmt.Fprintln(w, palette.muted.Sprint("(example generated from schema)"))
	}

	if page.Data.Empty {
		_, _ = fmt.Fprintln(w, palette.muted.Sprint("(no data document)"))
		return
	}

	_, _ = fmt.Fprintln(w, page.Data.Text)
}

// writeTextHeading writes title underlined with marker runes.
func writeTextHeading(w io.Writer, palette textPalette, title, marker string) {
	_, _ = fmt.Fprintln(w, palette.heading.Sprint(title))
	_, _ = fmt.Fprintln(w, strings.Repeat(marker, utf8.RuneCountInString(title)))
}

// writeTextBlock writes one block and its children depth-first.
func writeTextBlock(w io.Writer, palette textPalette, block Block, wrapWidth int) {
	indent := strings.Repeat(" ", block.Indent/textColumnsPerUnit)
	bodyIndent := indent + "  "

	heading := palette.forStyle(block.Style).Sprint(block.Label)
	if block.Pattern != "" {
		heading += palette.muted.Sprint(" (pattern: " + block.Pattern + ")")
	}

	_, _ = fmt.Fprintln(w, indent+heading)

	width := wrapWidth - utf8.RuneCountInString(bodyIndent)
	for _, line := range wrapText(block.Description, width) {
		_, _ = fmt.Fprintln(w, strings.TrimRight(bodyIndent+line, " "))
	}

	for _, detail := range block.Details {
		_, _ = fmt.Fprintln(w, bodyIndent+palette.muted.Sprint(detail.Text()))
	}

	for _, child := range block.Children {
		writeTextBlock(w, palette, child, wrapWidth)
	}
}
