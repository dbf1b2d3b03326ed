// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package wavedoc

import (
	"fmt"
	"log/slog"
)

// TreeNode is one node of the virtual documentation tree.
type TreeNode interface {
	// NodeName returns the path segment the node is keyed by.
	NodeName() string
}

// FolderNode is a directory in the virtual documentation tree.
type FolderNode struct {
	Name     string
	Children map[string]TreeNode
}

// NodeName returns the folder's path segment.
func (node *FolderNode) NodeName() string { return node.Name }

// FileNode is one rendered class document in the virtual tree.
type FileNode struct {
	// Name is the final source path segment, extension included.
	Name string
	// ClassName is the documented class the file was rendered from.
	ClassName string
	// FullPath is the slash-joined source path after registry segment removal.
	FullPath string
	// Document is the rendered mdx text.
	Document string
}

// NodeName returns the file's path segment.
func (node *FileNode) NodeName() string { return node.Name }

// BuildOptions configures virtual tree construction.
type BuildOptions struct {
	// Render configures per-class document rendering.
	Render RenderOptions
	// Logger receives per-class progress; defaults to slog.Default().
	Logger *slog.Logger
}

// newFolderNode creates an empty folder node.
func newFolderNode(name string) *FolderNode {
	return &FolderNode{Name: name, Children: make(map[string]TreeNode)}
}

// BuildTree renders every class descriptor and places it into a virtual
// folder/file tree keyed by source path segments. The registry container
// segment is dropped before placement. It returns the tree root and the
// number of file nodes created.
func BuildTree(classes []ClassDescriptor, opt BuildOptions) (*FolderNode, int, error) {
	logger := opt.Logger
	if logger == nil {
		logger = slog.Default()
	}

	root := newFolderNode("")
	fileCount := 0

	for _, class := range classes {
		segments := dropSegment(splitSourcePath(class.Source.Path), registrySegmentIndex)
		if len(segments) == 0 {
			return nil, 0, fmt.Errorf("place class %q: empty source path %q", class.Name, class.Source.Path)
		}

		document, err := RenderClass(class, opt.Render)
		if err != nil {
			return nil, 0, fmt.Errorf("render class %q: %w", class.Name, err)
		}

		folder := root
		for _, segment := range segments[:len(segments)-1] {
			folder, err = getOrCreateFolder(folder, segment)
			if err != nil {
				return nil, 0, fmt.Errorf("place class %q: %w", class.Name, err)
			}
		}

		fileName := segments[len(segments)-1]
		if existing, ok := folder.Children[fileName]; ok {
			if _, isFolder := existing.(*FolderNode); isFolder {
				return nil, 0, fmt.Errorf("place class %q: %w: segment %q is a folder",
					class.Name, ErrTreeCollision, fileName)
			}

			// Last descriptor wins; surface likely duplicate-class bugs upstream.
			logger.Warn("duplicate file key, overwriting earlier document",
				"class", class.Name, "file", fileName)
		}

		folder.Children[fileName] = &FileNode{
			Name:      fileName,
			ClassName: class.Name,
			FullPath:  joinSourcePath(segments),
			Document:  document,
		}

		fileCount++
		logger.Debug("rendered class document", "class", class.Name, "path", joinSourcePath(segments))
	}

	return root, fileCount, nil
}

// getOrCreateFolder descends into a child folder, creating it when missing.
// A file node occupying the segment is a build error, never a silent merge.
func getOrCreateFolder(parent *FolderNode, segment string) (*FolderNode, error) {
	child, ok := parent.Children[segment]
	if !ok {
		folder := newFolderNode(segment)
		parent.Children[segment] = folder
		return folder, nil
	}

	folder, ok := child.(*FolderNode)
	if !ok {
		return nil, fmt.Errorf("%w: segment %q is a file", ErrTreeCollision, segment)
	}

	return folder, nil
}
