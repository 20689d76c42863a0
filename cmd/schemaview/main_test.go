// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var (
	fixtureSchemaPath = filepath.Join("..", "..", "testdata", "schema.json")
	fixtureDataPath   = filepath.Join("..", "..", "testdata", "data.json")
)

func TestRunRenderWritesTextToStdout(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", fixtureSchemaPath, fixtureDataPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	got := stdout.String()
	assertContains(t, got, "Schema & Data Viewer")
	assertContains(t, got, "title: string\n  Book title as printed on the cover.\n  Min length: 3\n")
	assertContains(t, got, "tags: array of string")
	assertContains(t, got, "[title] [author]")
	assertContains(t, got, "title: The Snowy Day")
	assertNotContains(t, got, "\x1b[")
}

func TestRunRenderHTMLToOutputFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "page.html")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "-f", "html", "--title", "Reading Notes", fixtureSchemaPath, fixtureDataPath, outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when output path is provided, got: %s", stdout.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read out file: %v", err)
	}

	assertContains(t, string(content), "<h1>Reading Notes</h1>")
	assertContains(t, string(content), `style="margin-left: 20px"`)
}

func TestRunRenderDataFromStdin(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader(`{"title": "Goodnight Moon", "author": {"name": "Margaret Wise Brown"}}`)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"render", "-f", "markdown", "-d", "json", fixtureSchemaPath, "-"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "```json\n{\n  \"title\": \"Goodnight Moon\",")
}

func TestRunRenderSchemaFromStdinWarnsAboutDraft(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader(`{"type": "object", "properties": {"name": {"type": "string"}}}`)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"render", "-"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "name: string")
	assertContains(t, stdout.String(), "(no data document)")
	assertContains(t, stderr.String(), "schema has no $schema value")
}

func TestRunRenderRejectsDoubleStdin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"render", "-", "-"}, strings.NewReader("{}"), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	assertContains(t, stderr.String(), "cannot both be read from stdin")
}

func TestRunRenderStrictRejectsMalformedSchema(t *testing.T) {
	t.Parallel()

	malformed := filepath.Join("..", "..", "testdata", "malformed.json")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "--strict", malformed}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}

	assertContains(t, stderr.String(), "malformed schema")
	assertContains(t, stderr.String(), "summary: missing type")

	stdout.Reset()
	stderr.Reset()
	code = run([]string{"render", malformed}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("lenient run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "summary: (missing type)")
}

func TestRunRenderExampleMode(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "-e", "required", fixtureSchemaPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "(example generated from schema)")
	assertContains(t, stdout.String(), "title: <string>")
	assertContains(t, stderr.String(), "showing example generated from schema")
}

func TestRunRenderWithTemplateFile(t *testing.T) {
	t.Parallel()

	customTemplatePath := filepath.Join(t.TempDir(), "custom.gotmpl")
	if err := os.WriteFile(customTemplatePath, []byte("# custom\n{{ range .Schema.Properties }}- {{ .Heading }}\n{{ end }}"), 0o600); err != nil {
		t.Fatalf("write custom template: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "-f", "md", "--template-file", customTemplatePath, fixtureSchemaPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "# custom\n- title: string\n")
	assertContains(t, stdout.String(), "- isbn: string (pattern: ^[0-9]{13}$)")
}

func TestRunRenderUnknownFormat(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "-f", "pdf", fixtureSchemaPath}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("run exit code = %d, want 2", code)
	}

	assertContains(t, stderr.String(), "pdf")
}

func TestRunExampleJSON(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"example", "-m", "required", "-o", "json", fixtureSchemaPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	want := "{\n  \"title\": \"<string>\",\n  \"author\": {\n    \"name\": \"<string>\"\n  }\n}\n"
	if stdout.String() != want {
		t.Fatalf("example mismatch\ngot:\n%s\nwant:\n%s", stdout.String(), want)
	}
}

func TestRunExampleYAMLHasComments(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"example", fixtureSchemaPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "# Book title as printed on the cover.\ntitle: <string>\n")
	assertContains(t, stdout.String(), "tags:\n  - <string>\n")
}

func TestRunTemplate(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"template", "-t", "html"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "<!DOCTYPE html>")
	assertContains(t, stdout.String(), `define "block"`)
}

func TestRunTemplateToFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "page.md.gotmpl")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"template", outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read out file: %v", err)
	}

	assertContains(t, string(content), "## Analysis Data")
}

func TestRunServeStopsWithContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runContext(ctx, []string{"serve", "--addr", "127.0.0.1:0", fixtureSchemaPath, fixtureDataPath}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "shutting down")
}

func TestRunServeRejectsStdin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"serve", "-"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run exit code = %d, want 1", code)
	}
}

func TestRunHelpReturnsZero(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "--help"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, want 0", code)
	}

	assertContains(t, stdout.String(), "--example-mode")
}

func TestRunMissingSchemaArgument(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("run exit code = %d, want 2", code)
	}
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "version:  dev")
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}
