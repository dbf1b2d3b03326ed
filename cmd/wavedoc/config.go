// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/moonpulse/wavedoc"
)

const (
	defaultExtractor    = "moonwave-extract"
	defaultInputDir     = "."
	defaultOutputDir    = "pages"
	defaultPackageIndex = "package-index"
)

// runConfig mirrors the optional wavedoc.yaml run configuration file.
type runConfig struct {
	Extractor    string `yaml:"extractor"`
	Input        string `yaml:"input"`
	Output       string `yaml:"output"`
	PackageIndex string `yaml:"package_index"`
	PackagesDir  string `yaml:"packages_dir"`
	ClassesFile  string `yaml:"classes_file"`
	Verify       bool   `yaml:"verify"`
}

// generateSettings is the fully resolved configuration of one generate run.
type generateSettings struct {
	extractor    string
	input        string
	output       string
	packageIndex string
	packagesDir  string
	classesFile  string
	templateText string
	verify       bool
}

// loadRunConfig reads and decodes one YAML run configuration file.
func loadRunConfig(path string) (runConfig, error) {
	var config runConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("decode config file %q: %w", path, err)
	}

	return config, nil
}

// resolveGenerateSettings merges flags, the optional config file and built-in
// defaults. Flags win over the config file; the config file wins over defaults.
func resolveGenerateSettings(command *generateCommand) (generateSettings, error) {
	var config runConfig
	if command.ConfigPath != "" {
		loaded, err := loadRunConfig(command.ConfigPath)
		if err != nil {
			return generateSettings{}, err
		}

		config = loaded
	}

	settings := generateSettings{
		extractor:    firstNonEmpty(command.Extractor, config.Extractor, defaultExtractor),
		input:        firstNonEmpty(command.Args.Input, config.Input, defaultInputDir),
		output:       firstNonEmpty(command.Output, config.Output, defaultOutputDir),
		packageIndex: firstNonEmpty(command.PackageIndex, config.PackageIndex, defaultPackageIndex),
		packagesDir:  firstNonEmpty(command.PackagesDir, config.PackagesDir, wavedoc.DefaultPackagesDirName),
		classesFile:  firstNonEmpty(command.ClassesFile, config.ClassesFile, ""),
		verify:       command.Verify || config.Verify,
	}

	if command.RenderFlags.TemplatePath != "" {
		templateText, err := os.ReadFile(command.RenderFlags.TemplatePath)
		if err != nil {
			return generateSettings{}, fmt.Errorf("read template file %q: %w", command.RenderFlags.TemplatePath, err)
		}

		settings.templateText = string(templateText)
	}

	return settings, nil
}

// firstNonEmpty returns the first value with non-blank content.
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}

	return ""
}
