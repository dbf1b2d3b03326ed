// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package wavedoc

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
)

const (
	// DefaultPackagesDirName is the published directory the class hierarchy
	// is mounted under, replacing the tree's top-level source segment.
	DefaultPackagesDirName = "Packages"
	// DocumentExtension is the output extension for rendered documents.
	DocumentExtension = ".mdx"

	outputDirMode  = os.FileMode(0o750)
	outputFileMode = os.FileMode(0o600)
)

// writeFileFunc writes one output file; split out so tests can intercept writes.
type writeFileFunc func(path string, data []byte, mode os.FileMode) error

// Materializer writes a virtual documentation tree onto the filesystem and
// accumulates per-folder navigation manifests while doing so.
type Materializer struct {
	// OutputRoot is the directory the published tree is rooted at.
	OutputRoot string
	// PackagesDirName overrides the published top-level directory name;
	// defaults to "Packages".
	PackagesDirName string
	// Logger receives per-file progress; defaults to slog.Default().
	Logger *slog.Logger

	// MkdirAll and WriteFile are the filesystem primitives used for output;
	// they default to the os implementations.
	MkdirAll  func(path string, mode os.FileMode) error
	WriteFile writeFileFunc
}

// normalize fills in defaults for unset materializer fields.
func (m *Materializer) normalize() {
	if m.PackagesDirName == "" {
		m.PackagesDirName = DefaultPackagesDirName
	}

	if m.Logger == nil {
		m.Logger = slog.Default()
	}

	if m.MkdirAll == nil {
		m.MkdirAll = os.MkdirAll
	}

	if m.WriteFile == nil {
		m.WriteFile = os.WriteFile
	}
}

// Materialize writes the tree below root in two strict passes: every folder is
// created first, then every document is written. Index files (stem "init")
// are hoisted one level up and published under their folder's own name. The
// returned manifests map published folders to encoded stem -> class name and
// still have to be flushed with WriteManifests.
func (m *Materializer) Materialize(root *FolderNode) (Manifests, error) {
	m.normalize()

	packagesDir := filepath.Join(m.OutputRoot, m.PackagesDirName)

	if err := m.MkdirAll(m.OutputRoot, outputDirMode); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCreateFolder, m.OutputRoot, err)
	}

	for _, child := range sortedChildren(root) {
		folder, ok := child.(*FolderNode)
		if !ok {
			continue
		}

		if err := m.createFolders(folder, packagesDir); err != nil {
			return nil, err
		}
	}

	manifests := make(Manifests)
	for _, child := range sortedChildren(root) {
		var err error
		switch node := child.(type) {
		case *FolderNode:
			err = m.writeFiles(node, packagesDir, m.OutputRoot, m.PackagesDirName, manifests)
		case *FileNode:
			err = m.writeDocument(node, m.OutputRoot, m.OutputRoot, filepath.Base(m.OutputRoot), manifests)
		}

		if err != nil {
			return nil, err
		}
	}

	return manifests, nil
}

// WriteManifests flushes one _meta.json per accumulated folder.
func (m *Materializer) WriteManifests(manifests Manifests) error {
	m.normalize()
	return manifests.Write(m.WriteFile)
}

// createFolders creates the folder's directory and descends, pre-order, so
// every directory exists before any file write targets it.
func (m *Materializer) createFolders(folder *FolderNode, dir string) error {
	if err := m.MkdirAll(dir, outputDirMode); err != nil {
		return fmt.Errorf("%w %q: %w", ErrCreateFolder, dir, err)
	}

	for _, child := range sortedChildren(folder) {
		sub, ok := child.(*FolderNode)
		if !ok {
			continue
		}

		if err := m.createFolders(sub, filepath.Join(dir, sub.Name)); err != nil {
			return err
		}
	}

	return nil
}

// writeFiles writes every document below folder, which is published at dir
// inside parentDir under publishedName.
func (m *Materializer) writeFiles(folder *FolderNode, dir, parentDir, publishedName string, manifests Manifests) error {
	for _, child := range sortedChildren(folder) {
		var err error
		switch node := child.(type) {
		case *FolderNode:
			err = m.writeFiles(node, filepath.Join(dir, node.Name), dir, node.Name, manifests)
		case *FileNode:
			err = m.writeDocument(node, dir, parentDir, publishedName, manifests)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// writeDocument writes one rendered document and records its manifest entry.
// Index documents target the parent directory under the folder's own name.
func (m *Materializer) writeDocument(file *FileNode, dir, parentDir, publishedName string, manifests Manifests) error {
	targetDir := dir
	baseName := fileStem(file.Name)
	if isIndexStem(file.Name) {
		targetDir = parentDir
		baseName = publishedName
	}

	encoded := encodeFileName(baseName)
	path := filepath.Join(targetDir, encoded+DocumentExtension)
	if err := m.WriteFile(path, []byte(file.Document), outputFileMode); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteDocument, path, err)
	}

	manifests.record(targetDir, encoded, file.ClassName)
	m.Logger.Debug("wrote document", "class", file.ClassName, "path", path)
	return nil
}

// encodeFileName applies URL-safe encoding to a published file stem.
func encodeFileName(name string) string {
	return url.PathEscape(name)
}

// sortedChildren returns folder children in deterministic name order.
func sortedChildren(folder *FolderNode) []TreeNode {
	names := make([]string, 0, len(folder.Children))
	for name := range folder.Children {
		names = append(names, name)
	}

	sort.Strings(names)

	out := make([]TreeNode, 0, len(names))
	for _, name := range names {
		out = append(out, folder.Children[name])
	}

	return out
}
