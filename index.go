// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package wavedoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	// IndexPageFileName is the landing page written at the output root.
	IndexPageFileName = "index.mdx"

	// defaultBinaryURLTemplate links package binaries by folder name.
	defaultBinaryURLTemplate = "https://github.com/moonpulse/wavedoc-packages/releases/latest/download/%s.rbxm"
	// defaultPackageDescription fills table rows for packages without one.
	defaultPackageDescription = "No description provided."
)

// PackageMetadata is the per-package record read from a wally.toml manifest.
type PackageMetadata struct {
	Name        string
	Version     string
	Description string
}

// wallyManifest mirrors the package table of a wally.toml document.
type wallyManifest struct {
	Package struct {
		Name        string `toml:"name"`
		Version     string `toml:"version"`
		Description string `toml:"description"`
	} `toml:"package"`
}

// LookupPackageMetadata reads package-index/packages/<name>/wally.toml for one
// top-level folder. A missing manifest is not an error: the folder is simply
// omitted from generated tables.
func LookupPackageMetadata(packageIndexDir, folderName string) (PackageMetadata, bool, error) {
	path := filepath.Join(packageIndexDir, "packages", strings.ToLower(folderName), "wally.toml")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return PackageMetadata{}, false, nil
	}

	if err != nil {
		return PackageMetadata{}, false, fmt.Errorf("%w %q: %w", ErrReadPackageManifest, path, err)
	}

	var manifest wallyManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return PackageMetadata{}, false, fmt.Errorf("%w %q: %w", ErrDecodePackageManifest, path, err)
	}

	return PackageMetadata{
		Name:        manifest.Package.Name,
		Version:     manifest.Package.Version,
		Description: manifest.Package.Description,
	}, true, nil
}

// IndexOptions configures landing page generation.
type IndexOptions struct {
	// PackageIndexDir locates the wally package index checkout.
	PackageIndexDir string
	// BinaryURLTemplate overrides the binaries download URL template; it must
	// contain one %s verb receiving the folder name.
	BinaryURLTemplate string
}

// indexView is the view model passed to the landing page template.
type indexView struct {
	Packages []packageRow
}

// packageRow is one generated table row for a documented package.
type packageRow struct {
	Name        string
	Install     string
	Description string
	BinaryURL   string
}

// BuildIndexPage renders the landing page from the built tree's top-level
// package folders. Folders without their own index document or without
// reachable package metadata are omitted from the generated tables.
func BuildIndexPage(root *FolderNode, opt IndexOptions) (string, error) {
	urlTemplate := opt.BinaryURLTemplate
	if urlTemplate == "" {
		urlTemplate = defaultBinaryURLTemplate
	}

	view := indexView{Packages: make([]packageRow, 0, 8)}
	for _, name := range packageFolderNames(root) {
		metadata, ok, err := LookupPackageMetadata(opt.PackageIndexDir, name)
		if err != nil {
			return "", err
		}

		if !ok {
			continue
		}

		description := sanitizeText(metadata.Description)
		if description == "" {
			description = defaultPackageDescription
		}

		view.Packages = append(view.Packages, packageRow{
			Name:        name,
			Install:     fmt.Sprintf("%s = %q", name, metadata.Name+"@"+metadata.Version),
			Description: description,
			BinaryURL:   fmt.Sprintf(urlTemplate, name),
		})
	}

	indexTemplate, err := parseBuiltinTemplate(templateIndexName)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := indexTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteDocTemplate, err)
	}

	return ensureTrailingNewline(normalizeDocumentOutput(out.String())), nil
}

// WriteIndexPage removes any stale landing page and writes the new one.
func WriteIndexPage(outputRoot, document string) error {
	path := filepath.Join(outputRoot, IndexPageFileName)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w %q: %w", ErrWriteDocument, path, err)
	}

	if err := os.WriteFile(path, []byte(document), outputFileMode); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteDocument, path, err)
	}

	return nil
}

// packageFolderNames lists, in sorted order, the per-package folders one level
// below the publish root that own an index document.
func packageFolderNames(root *FolderNode) []string {
	names := make([]string, 0, 8)
	for _, top := range root.Children {
		topFolder, ok := top.(*FolderNode)
		if !ok {
			continue
		}

		for name, child := range topFolder.Children {
			folder, ok := child.(*FolderNode)
			if !ok {
				continue
			}

			if folderOwnsIndexDocument(folder) {
				names = append(names, name)
			}
		}
	}

	sort.Strings(names)
	return names
}

// folderOwnsIndexDocument reports whether the folder contains its own landing
// document (a file node with the reserved index stem).
func folderOwnsIndexDocument(folder *FolderNode) bool {
	for name, child := range folder.Children {
		if _, ok := child.(*FileNode); !ok {
			continue
		}

		if isIndexStem(name) {
			return true
		}
	}

	return false
}
