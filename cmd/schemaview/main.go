// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

// schemaview renders a JSON Schema next to a JSON data document.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/schemaview"
	"github.com/woozymasta/schemaview/internal/logging"
	"github.com/woozymasta/schemaview/internal/server"
)

// stdinPath selects stdin for positional input arguments.
const stdinPath = "-"

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/schemaview"
	_buildTime string
)

// errStdinUsedTwice is returned when schema and data both ask for stdin.
var errStdinUsedTwice = errors.New("schema and data cannot both be read from stdin")

// cliOptions describes schemaview CLI flags and subcommands.
type cliOptions struct {
	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging"`
	NoColor bool `long:"no-color" description:"Disable coloured output (NO_COLOR is honoured too)"`

	Version  versionCommand  `command:"version" description:"Print version information"`
	Render   renderCommand   `command:"render" description:"Render schema and data document as one page"`
	Example  exampleCommand  `command:"example" description:"Generate example data document from schema"`
	Template templateCommand `command:"template" description:"Print built-in page template"`
	Serve    serveCommand    `command:"serve" description:"Serve page over HTTP with replaceable data document"`
}

// pageFlags groups page rendering flags shared by render and serve.
type pageFlags struct {
	Title       string `short:"T" long:"title" description:"Page title" default:"Schema & Data Viewer"`
	DataFormat  string `short:"d" long:"data-format" description:"Data panel encoding" choice:"yaml" choice:"json" default:"yaml"`
	ExampleMode string `short:"e" long:"example-mode" description:"Generate data from schema when no data document is given" choice:"all" choice:"required"`
	Strict      bool   `short:"s" long:"strict" description:"Reject properties with missing or unknown type"`
}

// renderFlags groups render-only flags.
type renderFlags struct {
	Format       string `short:"f" long:"format" env:"SCHEMAVIEW_FORMAT" description:"Output format" choice:"text" choice:"table" choice:"markdown" choice:"md" choice:"html" choice:"json" default:"text"`
	TemplatePath string `long:"template-file" description:"Path to custom markdown or html template (.gotmpl)"`
	WrapWidth    int    `short:"w" long:"wrap" description:"Wrap width for descriptions in text output" default:"80"`
}

// renderCommand renders one page to stdout or file.
type renderCommand struct {
	runner *cliRunner
	Args   struct {
		Schema string `positional-arg-name:"schema" description:"Schema file path (- for stdin)" required:"yes"`
		Data   string `positional-arg-name:"data" description:"Data document file path (optional; - for stdin)"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	PageFlags   pageFlags   `group:"Page"`
	RenderFlags renderFlags `group:"Render"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(command.Args.Schema, command.Args.Data, command.Args.Output, command.PageFlags, command.RenderFlags)
}

// exampleCommand generates example data document.
type exampleCommand struct {
	runner *cliRunner
	Args   struct {
		Schema string `positional-arg-name:"schema" description:"Schema file path (- for stdin)" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Mode         string `short:"m" long:"mode" description:"Property coverage" choice:"all" choice:"required" default:"all"`
	OutputFormat string `short:"o" long:"output-format" description:"Example encoding" choice:"yaml" choice:"json" default:"yaml"`
}

// Execute runs example subcommand.
func (command *exampleCommand) Execute(_ []string) error {
	return command.runner.runExample(command.Args.Schema, command.Args.Output, command.Mode, command.OutputFormat)
}

// templateCommand exports built-in page template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateName string `short:"t" long:"template" description:"Built-in template" choice:"markdown" choice:"md" choice:"html" default:"markdown"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateName, command.Args.Output)
}

// serveCommand serves viewer over HTTP until interrupted.
type serveCommand struct {
	runner *cliRunner
	Args   struct {
		Schema string `positional-arg-name:"schema" description:"Schema file path" required:"yes"`
		Data   string `positional-arg-name:"data" description:"Initial data document file path (optional)"`
	} `positional-args:"yes"`

	Addr            string        `short:"a" long:"addr" env:"SCHEMAVIEW_ADDR" description:"Listen address" default:"127.0.0.1:8080"`
	ShutdownTimeout time.Duration `long:"shutdown-timeout" description:"Graceful shutdown timeout" default:"5s"`

	PageFlags pageFlags `group:"Page"`
}

// Execute runs serve subcommand.
func (command *serveCommand) Execute(_ []string) error {
	return command.runner.runServe(command.Args.Schema, command.Args.Data, command.PageFlags, server.Options{
		Addr:            command.Addr,
		ShutdownTimeout: command.ShutdownTimeout,
	})
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	ctx         context.Context
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	options     *cliOptions
	log         *logrus.Logger
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runContext(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return runContext(context.Background(), args, stdin, stdout, stderr)
}

// runContext executes CLI logic bound to ctx; serve stops when ctx is done.
func runContext(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "schemaview"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		ctx:         ctx,
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// logger returns stderr logger configured from global flags.
func (runner *cliRunner) logger() *logrus.Logger {
	if runner.log == nil {
		runner.log = runner.newLogger(false)
	}

	return runner.log
}

// newLogger builds stderr logger; showTime adds timestamps for serve mode.
func (runner *cliRunner) newLogger(showTime bool) *logrus.Logger {
	return logging.New(logging.Options{
		Output:       runner.stderr,
		Verbose:      runner.options != nil && runner.options.Verbose,
		DisableColor: !runner.colorEnabled(runner.stderr),
		ShowTime:     showTime,
	})
}

// colorEnabled reports whether ANSI colours should be written to w.
func (runner *cliRunner) colorEnabled(w io.Writer) bool {
	if runner.options != nil && runner.options.NoColor {
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	return logging.IsTerminal(w)
}

// runRender renders page from schema and optional data document.
func (runner *cliRunner) runRender(schemaPath, dataPath, outputPath string, page pageFlags, render renderFlags) error {
	if schemaPath == stdinPath && dataPath == stdinPath {
		return errStdinUsedTwice
	}

	doc, err := runner.loadSchema(schemaPath, page.Strict)
	if err != nil {
		return err
	}

	result, err := runner.loadData(dataPath)
	if err != nil {
		return err
	}

	options := schemaview.Options{
		Title:       page.Title,
		Format:      schemaview.Format(render.Format),
		DataFormat:  schemaview.DataFormat(page.DataFormat),
		ExampleMode: schemaview.ExampleMode(page.ExampleMode),
		WrapWidth:   render.WrapWidth,
		Strict:      page.Strict,
	}

	if strings.TrimSpace(outputPath) == "" {
		options.Color = runner.colorEnabled(runner.stdout)
	}

	if render.TemplatePath != "" {
		customTemplate, err := os.ReadFile(render.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", render.TemplatePath, err)
		}

		options.TemplateText = string(customTemplate)
	}

	viewer, err := schemaview.NewViewer(doc, result, options)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	runner.logGenerated(viewer)

	var out bytes.Buffer
	if err := viewer.Render(&out); err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	return runner.writeOutput(outputPath, out.Bytes(), "page")
}

// runExample writes example data document generated from schema.
func (runner *cliRunner) runExample(schemaPath, outputPath, mode, outputFormat string) error {
	doc, err := runner.loadSchema(schemaPath, false)
	if err != nil {
		return err
	}

	var data []byte
	switch schemaview.DataFormat(outputFormat) {
	case schemaview.DataFormatJSON:
		data, err = schemaview.GenerateExampleJSON(doc, schemaview.ExampleMode(mode))
	default:
		data, err = schemaview.GenerateExampleYAML(doc, schemaview.ExampleMode(mode))
	}

	if err != nil {
		return fmt.Errorf("generate example: %w", err)
	}

	return runner.writeOutput(outputPath, data, "example")
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := schemaview.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, []byte(tpl), "template")
}

// runServe serves viewer until runner context is cancelled.
func (runner *cliRunner) runServe(schemaPath, dataPath string, page pageFlags, serverOptions server.Options) error {
	if schemaPath == stdinPath || dataPath == stdinPath {
		return errors.New("serve reads schema and data from files only")
	}

	doc, err := runner.loadSchema(schemaPath, page.Strict)
	if err != nil {
		return err
	}

	result, err := runner.loadData(dataPath)
	if err != nil {
		return err
	}

	viewer, err := schemaview.NewViewer(doc, result, schemaview.Options{
		Title:       page.Title,
		Format:      schemaview.FormatHTML,
		DataFormat:  schemaview.DataFormat(page.DataFormat),
		ExampleMode: schemaview.ExampleMode(page.ExampleMode),
		Strict:      page.Strict,
	})
	if err != nil {
		return fmt.Errorf("create viewer: %w", err)
	}

	runner.logGenerated(viewer)

	if err := server.New(viewer, serverOptions, runner.newLogger(true)).Run(runner.ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	return nil
}

// loadSchema reads and parses schema, warning about unknown drafts.
func (runner *cliRunner) loadSchema(path string, strict bool) (schemaview.SchemaDocument, error) {
	data, err := runner.readInput(path)
	if err != nil {
		return schemaview.SchemaDocument{}, fmt.Errorf("read schema input: %w", err)
	}

	doc, err := schemaview.ParseSchema(data, schemaview.ParseOptions{Strict: strict})
	if err != nil {
		return schemaview.SchemaDocument{}, err
	}

	log := runner.logger()
	switch {
	case doc.Draft.Raw == "":
		log.Warn("schema has no $schema value; draft support is unknown")
	case !doc.Draft.Supported:
		log.WithField("schema", doc.Draft.Raw).Warn("unsupported $schema value")
	default:
		log.WithField("draft", doc.Draft.Canonical).Debug("schema loaded")
	}

	return doc, nil
}

// loadData reads optional data document; empty path gives empty document.
func (runner *cliRunner) loadData(path string) (schemaview.AnalysisResult, error) {
	if strings.TrimSpace(path) == "" {
		return schemaview.AnalysisResult{}, nil
	}

	data, err := runner.readInput(path)
	if err != nil {
		return schemaview.AnalysisResult{}, fmt.Errorf("read data input: %w", err)
	}

	return schemaview.ParseAnalysisResult(data)
}

// logGenerated notes when displayed data was generated from schema.
func (runner *cliRunner) logGenerated(viewer *schemaview.Viewer) {
	page, err := viewer.Page()
	if err != nil || !page.Data.Generated {
		return
	}

	runner.logger().WithField("mode", viewer.Options().ExampleMode).Info("no data document given; showing example generated from schema")
}

// readInput reads file path or stdin when path is "-".
func (runner *cliRunner) readInput(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path != stdinPath {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file %q: %w", path, err)
		}

		return data, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("read stdin: empty input")
	}

	return data, nil
}

// writeOutput writes data to stdout or file.
func (runner *cliRunner) writeOutput(outputPath string, data []byte, what string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", what, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", what, outputPath, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Render.runner = runner
	options.Example.runner = runner
	options.Template.runner = runner
	options.Serve.runner = runner
	runner.options = options

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"render": strings.TrimSpace(fmt.Sprintf(`
Render schema tree and data document as one page.
Schema and data are read from file arguments or stdin ("-"); the page goes to
the output argument or stdout. Without data and without --example-mode the
data panel is empty.

Examples:
> $ %s render schema.json data.json
> $ cat data.json | %s render -f html schema.json - page.html
> $ %s render -f markdown -e required schema.json
`, programName, programName, programName)),
		"example": strings.TrimSpace(fmt.Sprintf(`
Generate example data document shaped by schema properties.
YAML output carries property descriptions as comments.

Examples:
> $ %s example schema.json > data.yaml
> $ %s example -m required -o json schema.json data.json
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in page template text (`+"`markdown` or `html`"+`).
Use it as a starting point for --template-file.

Examples:
> $ %s template > page.md.gotmpl
> $ %s template -t html templates/page.html.gotmpl
`, programName, programName)),
		"serve": strings.TrimSpace(fmt.Sprintf(`
Serve the html page and JSON API. PUT /api/result replaces the displayed data
document as a whole.

Examples:
> $ %s serve schema.json data.json
> $ SCHEMAVIEW_ADDR=:9000 %s serve -e all schema.json
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// printVersionInfo writes build metadata to stdout.
func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
