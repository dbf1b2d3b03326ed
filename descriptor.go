// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package wavedoc

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// FunctionKindMethod marks functions called with instance syntax.
	FunctionKindMethod FunctionKind = "method"
	// FunctionKindStatic marks functions called with dot syntax.
	FunctionKindStatic FunctionKind = "static"
)

// FunctionKind distinguishes instance methods from static functions.
type FunctionKind string

// ClassDescriptor is one documented class or module emitted by the extractor.
type ClassDescriptor struct {
	// Name is the published class name used in headings and signatures.
	Name string `json:"name"`
	// Description is free markdown text and may be empty.
	Description string `json:"desc"`
	// Source locates the file the class was extracted from.
	Source SourceLocation `json:"source"`
	// Properties are rendered in input order.
	Properties []ClassProperty `json:"properties"`
	// Functions hold both methods and static functions, in input order.
	Functions []ClassFunction `json:"functions"`
}

// SourceLocation identifies the originating file of one documented item.
type SourceLocation struct {
	// Path is the slash-delimited source path, for example
	// "Packages/_Index/signal/init.luau".
	Path string `json:"path"`
	// Line is the declaration line inside Path.
	Line int `json:"line"`
}

// ClassProperty is one documented property of a class.
type ClassProperty struct {
	Name        string         `json:"name"`
	Description string         `json:"desc"`
	TypeName    string         `json:"lua_type"`
	Source      SourceLocation `json:"source"`
}

// ClassFunction is one documented callable of a class.
type ClassFunction struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
	// Since carries the raw availability tag, for example "since v1.2.3".
	Since string `json:"since,omitempty"`
	// Unreleased marks functions not yet published to the package registry.
	Unreleased bool         `json:"unreleased,omitempty"`
	Kind       FunctionKind `json:"function_type"`
	// Params may contain null slots; renderers must skip them.
	Params  []*FunctionParam  `json:"params"`
	Returns []*FunctionReturn `json:"returns"`
}

// FunctionParam is one declared parameter of a function.
type FunctionParam struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
	TypeName    string `json:"lua_type"`
}

// FunctionReturn is one declared return value of a function.
type FunctionReturn struct {
	Description string `json:"desc"`
	TypeName    string `json:"lua_type"`
}

// MethodsOf returns the functions rendered under the Methods section.
func (class ClassDescriptor) MethodsOf() []ClassFunction {
	return class.functionsOfKind(FunctionKindMethod)
}

// StaticsOf returns the functions rendered under the Functions section.
func (class ClassDescriptor) StaticsOf() []ClassFunction {
	return class.functionsOfKind(FunctionKindStatic)
}

// functionsOfKind filters class functions by call kind preserving input order.
func (class ClassDescriptor) functionsOfKind(kind FunctionKind) []ClassFunction {
	out := make([]ClassFunction, 0, len(class.Functions))
	for _, function := range class.Functions {
		if function.Kind != kind {
			continue
		}

		out = append(out, function)
	}

	return out
}

// DecodeClasses parses the extractor's JSON class descriptor array.
func DecodeClasses(data []byte) ([]ClassDescriptor, error) {
	var classes []ClassDescriptor
	if err := json.Unmarshal(data, &classes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeClasses, err)
	}

	for index, class := range classes {
		if strings.TrimSpace(class.Name) == "" {
			return nil, fmt.Errorf("%w: class at index %d has empty name", ErrDecodeClasses, index)
		}

		if len(splitSourcePath(class.Source.Path)) < minSourceSegments {
			return nil, fmt.Errorf("%w: class %q has source path %q with fewer than %d segments",
				ErrDecodeClasses, class.Name, class.Source.Path, minSourceSegments)
		}
	}

	return classes, nil
}
