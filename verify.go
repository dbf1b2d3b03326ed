// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package wavedoc

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractDocumentLinks parses one rendered document and returns every link
// destination in document order.
func ExtractDocumentLinks(document []byte) []string {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(document))

	links := make([]string, 0, 8)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, string(node.URL(document)))
		case *gmast.Link:
			links = append(links, string(node.Destination))
		case *gmast.Image:
			links = append(links, string(node.Destination))
		}

		return gmast.WalkContinue, nil
	})

	return links
}

// VerifyTreeLinks walks every rendered document in the tree and validates its
// link destinations. It returns the total number of links inspected and fails
// on the first malformed destination (empty or containing whitespace).
func VerifyTreeLinks(root *FolderNode) (int, error) {
	total := 0
	for _, child := range sortedChildren(root) {
		switch node := child.(type) {
		case *FolderNode:
			count, err := VerifyTreeLinks(node)
			if err != nil {
				return 0, err
			}

			total += count
		case *FileNode:
			count, err := verifyDocumentLinks(node)
			if err != nil {
				return 0, err
			}

			total += count
		}
	}

	return total, nil
}

// verifyDocumentLinks validates link destinations of one rendered document.
func verifyDocumentLinks(file *FileNode) (int, error) {
	links := ExtractDocumentLinks([]byte(file.Document))
	for _, destination := range links {
		if err := checkLinkDestination(destination); err != nil {
			return 0, fmt.Errorf("class %q: %w", file.ClassName, err)
		}
	}

	return len(links), nil
}

// checkLinkDestination rejects destinations that cannot survive publication.
func checkLinkDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return fmt.Errorf("%w: empty destination", ErrMalformedLink)
	}

	if strings.ContainsAny(destination, " \t\n") {
		return fmt.Errorf("%w: %q contains whitespace", ErrMalformedLink, destination)
	}

	return nil
}
