// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package wavedoc

import (
	"fmt"
	"strings"
)

const (
	// defaultWrapWidth wraps plain description paragraphs at this width.
	defaultWrapWidth = 80
	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName = templateClassName
)

const (
	templateClassName = "class"
	templateIndexName = "index"
)

// RenderOptions configures class document rendering.
type RenderOptions struct {
	// TemplateName selects a built-in template; defaults to "class".
	TemplateName string
	// TemplateText overrides built-in templates with custom template text.
	TemplateText string
	// WrapWidth wraps plain description paragraphs; defaults to 80.
	WrapWidth int
}

// RenderClass converts one class descriptor into a deterministic mdx document.
func RenderClass(class ClassDescriptor, opt RenderOptions) (string, error) {
	view := buildClassView(class, opt)

	documentTemplate, err := resolveTemplate(opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := documentTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteDocTemplate, err)
	}

	return ensureTrailingNewline(normalizeDocumentOutput(out.String())), nil
}
