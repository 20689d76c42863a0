// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"sort"
	"strings"
	"text/template"
)

const (
	templateMarkdownName = "markdown"
	templateHTMLName     = "html"
)

// templateFS stores built-in page templates embedded into the package.
//
//go:embed templates/*.gotmpl
var templateFS embed.FS

// builtInTemplateFiles maps template aliases to embedded file paths.
var builtInTemplateFiles = map[string]string{
	templateMarkdownName: "templates/page.md.gotmpl",
	templateHTMLName:     "templates/page.html.gotmpl",
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}

// normalizeTemplateName normalizes built-in template identifiers.
func normalizeTemplateName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "md" {
		return templateMarkdownName
	}

	return name
}

// templateSource returns custom template text or named built-in template.
func templateSource(name, custom string) (string, string, error) {
	if strings.TrimSpace(custom) != "" {
		return "custom", custom, nil
	}

	text, err := BuiltinTemplate(name)
	if err != nil {
		return "", "", err
	}

	return name, text, nil
}

// executeMarkdownTemplate renders page with markdown template.
func executeMarkdownTemplate(out *bytes.Buffer, page Page, custom string) error {
	name, text, err := templateSource(templateMarkdownName, custom)
	if err != nil {
		return err
	}

	parsed, err := template.New(name).Funcs(markdownTemplateFuncs()).Parse(text)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrParseTemplate, name, err)
	}

	var rendered strings.Builder
	if err := parsed.Execute(&rendered, page); err != nil {
		return fmt.Errorf("%w: %w", ErrExecuteTemplate, err)
	}

	out.WriteString(ensureTrailingNewline(normalizeMarkdownOutput(rendered.String())))
	return nil
}

// executeHTMLTemplate renders page with contextual-escaping html template.
func executeHTMLTemplate(out *bytes.Buffer, page Page, custom string) error {
	name, text, err := templateSource(templateHTMLName, custom)
	if err != nil {
		return err
	}

	parsed, err := htmltemplate.New(name).Funcs(htmltemplate.FuncMap(sharedTemplateFuncs())).Parse(text)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrParseTemplate, name, err)
	}

	if err := parsed.Execute(out, page); err != nil {
		return fmt.Errorf("%w: %w", ErrExecuteTemplate, err)
	}

	return nil
}

// markdownTemplateFuncs provides markdown-only helpers plus shared helpers.
func markdownTemplateFuncs() template.FuncMap {
	funcs := template.FuncMap{
		"mdInline": escapeInline,
		"mdText":   markdownText,
		"indent":   markdownIndent,
	}

	for name, fn := range sharedTemplateFuncs() {
		funcs[name] = fn
	}

	return funcs
}

// sharedTemplateFuncs provides helpers available in every page template.
func sharedTemplateFuncs() map[string]any {
	return map[string]any{
		"joinRequired": func(values []string) string {
			return strings.Join(values, ", ")
		},
	}
}
