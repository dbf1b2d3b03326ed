// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

// wavedoc generates an mdx documentation site from extractor class metadata.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/moonpulse/wavedoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/moonpulse/wavedoc"
	_buildTime string
)

// cliOptions describes wavedoc CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Generate generateCommand `command:"generate" description:"Generate the documentation site from extracted class metadata"`
	Render   renderCommand   `command:"render" description:"Render one class descriptor to mdx"`
	Template templateCommand `command:"template" description:"Print built-in document template"`
}

// templateSelectFlags groups built-in template selection flags.
type templateSelectFlags struct {
	TemplateName string `short:"t" long:"template" description:"Built-in template" choice:"class" choice:"index" default:"class"`
}

// renderFlags groups document rendering flags.
type renderFlags struct {
	TemplatePath string `short:"f" long:"template-file" description:"Path to custom document template (.gotmpl)"`
	WrapWidth    int    `short:"w" long:"wrap" description:"Wrap width for plain text descriptions" default:"80"`
}

// generateCommand runs the full extraction and generation pipeline.
type generateCommand struct {
	runner *cliRunner

	Extractor    string `short:"e" long:"extractor" description:"Doc extractor executable invoked as '<extractor> extract <input>'"`
	ClassesFile  string `long:"classes-file" description:"Read the class descriptor JSON from a file instead of running the extractor"`
	Output       string `short:"o" long:"output" description:"Output directory for generated pages"`
	PackageIndex string `long:"package-index" description:"Path to the wally package index checkout"`
	PackagesDir  string `long:"packages-dir" description:"Published top-level directory name"`
	ConfigPath   string `short:"c" long:"config" description:"Optional YAML run configuration"`
	Verify       bool   `long:"verify" description:"Verify link destinations in rendered documents"`
	Verbose      bool   `short:"v" long:"verbose" description:"Enable debug logging"`

	RenderFlags renderFlags `group:"Document Render"`

	Args struct {
		Input string `positional-arg-name:"input" description:"Source directory passed to the extractor (default: .)"`
	} `positional-args:"yes"`
}

// Execute runs the generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(command)
}

// renderCommand renders a single class descriptor for authoring loops.
type renderCommand struct {
	runner *cliRunner

	ClassName   string      `long:"class" description:"Class name to pick from the descriptor array (default: first)"`
	RenderFlags renderFlags `group:"Document Render"`

	Args struct {
		Input  string `positional-arg-name:"input" description:"Class descriptor JSON file (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output mdx file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs the render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(command)
}

// templateCommand exports a built-in document template.
type templateCommand struct {
	runner *cliRunner

	TemplateFlags templateSelectFlags `group:"Template Select"`

	Args struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs the template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateFlags.TemplateName, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs the version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
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
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "wavedoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
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

// runGenerate executes the full pipeline: extract, build, materialize, index.
func (runner *cliRunner) runGenerate(command *generateCommand) error {
	settings, err := resolveGenerateSettings(command)
	if err != nil {
		return err
	}

	logger := newRunLogger(runner.stderr, command.Verbose)

	classData, err := runner.loadClassData(settings, logger)
	if err != nil {
		return err
	}

	classes, err := wavedoc.DecodeClasses(classData)
	if err != nil {
		return err
	}

	root, fileCount, err := wavedoc.BuildTree(classes, wavedoc.BuildOptions{
		Render: wavedoc.RenderOptions{
			WrapWidth:    command.RenderFlags.WrapWidth,
			TemplateText: settings.templateText,
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}

	logger.Info("rendered class documents", "classes", fileCount)

	materializer := &wavedoc.Materializer{
		OutputRoot:      settings.output,
		PackagesDirName: settings.packagesDir,
		Logger:          logger,
	}

	manifests, err := materializer.Materialize(root)
	if err != nil {
		return err
	}

	if err := materializer.WriteManifests(manifests); err != nil {
		return err
	}

	logger.Info("materialized documentation tree", "folders", len(manifests), "output", settings.output)

	page, err := wavedoc.BuildIndexPage(root, wavedoc.IndexOptions{
		PackageIndexDir: settings.packageIndex,
	})
	if err != nil {
		return err
	}

	if err := wavedoc.WriteIndexPage(settings.output, page); err != nil {
		return err
	}

	logger.Info("wrote landing page", "path", filepath.Join(settings.output, wavedoc.IndexPageFileName))

	if settings.verify {
		linkCount, err := wavedoc.VerifyTreeLinks(root)
		if err != nil {
			return fmt.Errorf("verify links: %w", err)
		}

		logger.Info("verified document links", "links", linkCount)
	}

	return nil
}

// loadClassData obtains the descriptor JSON from a file or the extractor.
func (runner *cliRunner) loadClassData(settings generateSettings, logger *slog.Logger) ([]byte, error) {
	if settings.classesFile != "" {
		data, err := os.ReadFile(settings.classesFile)
		if err != nil {
			return nil, fmt.Errorf("read classes file %q: %w", settings.classesFile, err)
		}

		return data, nil
	}

	logger.Info("running extractor", "extractor", settings.extractor, "input", settings.input)
	return runExtractor(settings.extractor, settings.input)
}

// runRender renders one class descriptor to stdout or a file.
func (runner *cliRunner) runRender(command *renderCommand) error {
	data, err := runner.readDescriptorInput(command.Args.Input)
	if err != nil {
		return err
	}

	classes, err := wavedoc.DecodeClasses(data)
	if err != nil {
		return err
	}

	if len(classes) == 0 {
		return errors.New("descriptor input contains no classes")
	}

	class, err := selectClass(classes, command.ClassName)
	if err != nil {
		return err
	}

	renderOptions := wavedoc.RenderOptions{WrapWidth: command.RenderFlags.WrapWidth}
	if command.RenderFlags.TemplatePath != "" {
		templateText, err := os.ReadFile(command.RenderFlags.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", command.RenderFlags.TemplatePath, err)
		}

		renderOptions.TemplateText = string(templateText)
	}

	document, err := wavedoc.RenderClass(class, renderOptions)
	if err != nil {
		return fmt.Errorf("render class %q: %w", class.Name, err)
	}

	return runner.writeOutput(command.Args.Output, document, "document")
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := wavedoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, tpl, "template")
}

// writeOutput writes content to stdout or the selected file path.
func (runner *cliRunner) writeOutput(outputPath, content, label string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, content); err != nil {
			return fmt.Errorf("write %s to stdout: %w", label, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", label, outputPath, err)
	}

	return nil
}

// readDescriptorInput reads descriptor JSON from file path or stdin.
func (runner *cliRunner) readDescriptorInput(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read descriptor file %q: %w", path, err)
		}

		return data, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read descriptors from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read descriptors from stdin: empty input")
	}

	return data, nil
}

// selectClass picks the named class from the array, or the first one.
func selectClass(classes []wavedoc.ClassDescriptor, name string) (wavedoc.ClassDescriptor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return classes[0], nil
	}

	for _, class := range classes {
		if class.Name == name {
			return class, nil
		}
	}

	return wavedoc.ClassDescriptor{}, fmt.Errorf("class %q not found in descriptor input", name)
}

// newRunLogger builds the slog logger used for pipeline progress output.
func newRunLogger(output io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Generate.runner = runner
	options.Render.runner = runner
	options.Template.runner = runner

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
		"generate": strings.TrimSpace(fmt.Sprintf(`
Run the extractor over a source directory and generate the full site:
one mdx document per class, one _meta.json manifest per folder, and the
landing page. Use --classes-file to reuse previously extracted JSON.

Examples:
> $ %s generate -o pages .
> $ %s generate --classes-file classes.json --verify -o pages
`, programName, programName)),
		"render": strings.TrimSpace(fmt.Sprintf(`
Render one class descriptor to mdx.
Reads a descriptor JSON array from file argument or stdin; writes mdx to
file argument or stdout.

Examples:
> $ %s render classes.json > Signal.mdx
> $ cat classes.json | %s render --class Signal
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in document template text (`+"`class` or `index`"+`).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > class.gotmpl
> $ %s template -t index templates/index.gotmpl
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

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
