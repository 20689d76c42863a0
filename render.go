// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

const (
	// defaultTitle is used when caller does not provide custom page title.
	defaultTitle = "Schema & Data Viewer"
	// defaultWrapWidth wraps plain descriptions in terminal output at this width.
	defaultWrapWidth = 80
)

const (
	// FormatText renders colour-coded terminal text.
	FormatText Format = "text"
	// FormatTable renders a flat property table.
	FormatTable Format = "table"
	// FormatMarkdown renders CommonMark through the built-in markdown template.
	FormatMarkdown Format = "markdown"
	// FormatHTML renders a single HTML page through the built-in html template.
	FormatHTML Format = "html"
	// FormatJSON renders the page model as JSON.
	FormatJSON Format = "json"
)

// Format selects page output format.
type Format string

// Options configures page rendering.
type Options struct {
	// Title is the page heading.
	Title string
	// Format selects output format, text by default.
	Format Format
	// DataFormat selects data panel encoding, yaml by default.
	DataFormat DataFormat
	// TemplateText overrides built-in template for markdown and html formats.
	TemplateText string
	// ExampleMode generates data from schema when no data document is given.
	ExampleMode ExampleMode
	// WrapWidth wraps descriptions in text output.
	WrapWidth int
	// Color enables ANSI colours in text output.
	Color bool
	// Strict rejects schema property nodes without usable type.
	Strict bool
}

// Page is the full page model: schema column and data column.
type Page struct {
	Title  string     `json:"title"`
	Schema SchemaView `json:"schema"`
	Data   DataView   `json:"data"`
}

// DataView is the rendered data column.
type DataView struct {
	Result    AnalysisResult `json:"result"`
	Format    DataFormat     `json:"format"`
	Text      string         `json:"text"`
	Version   uint64         `json:"version"`
	Empty     bool           `json:"empty"`
	Generated bool           `json:"generated,omitempty"`
}

// Viewer binds an immutable schema to a replaceable data document.
type Viewer struct {
	results   *ResultContainer
	schema    SchemaDocument
	view      SchemaView
	opt       Options
	generated bool
}

// NewViewer validates options and creates viewer over schema and initial data.
func NewViewer(schema SchemaDocument, initial AnalysisResult, opt Options) (*Viewer, error) {
	opt, err := normalizeOptions(opt)
	if err != nil {
		return nil, err
	}

	generated := false
	if initial.IsZero() && opt.ExampleMode != "" {
		initial, err = GenerateExample(schema, opt.ExampleMode)
		if err != nil {
			return nil, err
		}

		generated = true
	}

	return &Viewer{
		results:   NewResultContainer(initial),
		schema:    schema,
		view:      RenderSchema(schema),
		opt:       opt,
		generated: generated,
	}, nil
}

// Results returns container holding the displayed data document.
func (viewer *Viewer) Results() *ResultContainer {
	return viewer.results
}

// Schema returns the rendered schema column.
func (viewer *Viewer) Schema() SchemaView {
	return viewer.view
}

// Document returns the parsed schema document.
func (viewer *Viewer) Document() SchemaDocument {
	return viewer.schema
}

// Options returns normalized viewer options.
func (viewer *Viewer) Options() Options {
	return viewer.opt
}

// Page snapshots the page model for the current data document.
func (viewer *Viewer) Page() (Page, error) {
	result, version := viewer.results.Snapshot()

	data := DataView{
		Result:    result,
		Format:    viewer.opt.DataFormat,
		Version:   version,
		Empty:     result.IsZero(),
		Generated: viewer.generated && version == 0,
	}

	if !data.Empty {
		text, err := result.Encode(viewer.opt.DataFormat)
		if err != nil {
			return Page{}, fmt.Errorf("%w: %w", ErrDecodeData, err)
		}

		data.Text = text
	}

	return Page{
		Title:  viewer.opt.Title,
		Schema: viewer.view,
		Data:   data,
	}, nil
}

// Render writes the page in configured format.
func (viewer *Viewer) Render(w io.Writer) error {
	return viewer.RenderFormat(w, viewer.opt.Format)
}

// RenderFormat writes the page in selected format.
func (viewer *Viewer) RenderFormat(w io.Writer, format Format) error {
	format, err := normalizeFormat(format)
	if err != nil {
		return err
	}

	page, err := viewer.Page()
	if err != nil {
		return err
	}

	var out bytes.Buffer
	switch format {
	case FormatText:
		writeTextPage(&out, page, viewer.opt)
	case FormatTable:
		writeTablePage(&out, page, viewer.schema)
	case FormatMarkdown:
		err = executeMarkdownTemplate(&out, page, viewer.opt.TemplateText)
	case FormatHTML:
		err = executeHTMLTemplate(&out, page, viewer.opt.TemplateText)
	case FormatJSON:
		err = writeJSONPage(&out, page)
	}

	if err != nil {
		return err
	}

	if _, err := w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

// RenderFile reads schema and optional data document from files and renders page.
func RenderFile(schemaPath, dataPath string, opt Options) (string, error) {
	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	var dataBytes []byte
	if strings.TrimSpace(dataPath) != "" {
		dataBytes, err = os.ReadFile(dataPath)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadDataFile, err)
		}
	}

	return Render(schemaBytes, dataBytes, opt)
}

// Render renders schema bytes and optional data bytes into one page.
func Render(schemaBytes, dataBytes []byte, opt Options) (string, error) {
	schema, err := ParseSchema(schemaBytes, ParseOptions{Strict: opt.Strict})
	if err != nil {
		return "", err
	}

	var result AnalysisResult
	if len(bytes.TrimSpace(dataBytes)) > 0 {
		result, err = ParseAnalysisResult(dataBytes)
		if err != nil {
			return "", err
		}
	}

	viewer, err := NewViewer(schema, result, opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := viewer.Render(&out); err != nil {
		return "", err
	}

	return out.String(), nil
}

// Formats returns all supported output format names.
func Formats() []string {
	names := []string{
		string(FormatText),
		string(FormatTable),
		string(FormatMarkdown),
		string(FormatHTML),
		string(FormatJSON),
	}

	sort.Strings(names)
	return names
}

// normalizeOptions validates options and applies defaults.
func normalizeOptions(opt Options) (Options, error) {
	var err error

	opt.Title = sanitizeText(opt.Title)
	if opt.Title == "" {
		opt.Title = defaultTitle
	}

	if opt.Format, err = normalizeFormat(opt.Format); err != nil {
		return Options{}, err
	}

	if opt.DataFormat, err = normalizeDataFormat(opt.DataFormat); err != nil {
		return Options{}, err
	}

	if strings.TrimSpace(string(opt.ExampleMode)) != "" {
		if opt.ExampleMode, err = normalizeExampleMode(opt.ExampleMode); err != nil {
			return Options{}, err
		}
	}

	if opt.WrapWidth <= 0 {
		opt.WrapWidth = defaultWrapWidth
	}

	return opt, nil
}

// normalizeFormat validates output format and falls back to text.
func normalizeFormat(format Format) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case "":
		return FormatText, nil
	case "md":
		return FormatMarkdown, nil
	case FormatText, FormatTable, FormatMarkdown, FormatHTML, FormatJSON:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// writeJSONPage encodes page model as indented JSON.
func writeJSONPage(out *bytes.Buffer, page Page) error {
	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	out.Write(data)
	out.WriteByte('\n')
	return nil
}
