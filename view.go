// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package wavedoc

import "strings"

const (
	// sinceTagOffset is the fixed byte offset where version text starts inside
	// a raw "since ..." tag. The extractor always emits the same six-byte
	// prefix, so the offset is a format contract, not a parser.
	sinceTagOffset = 6

	// defaultTypeToken replaces empty type names before link resolution.
	defaultTypeToken = "any"
	// voidReturnToken is resolved when a function declares no returns.
	voidReturnToken = "nil"
)

// classView is the root view model passed to document templates.
type classView struct {
	Title       string
	Description string
	Properties  []propertyView
	Methods     []functionView
	Statics     []functionView
}

// propertyView represents one property section in document output.
type propertyView struct {
	Name        string
	Signature   string
	Description string
}

// functionView represents one method or static function section.
type functionView struct {
	Name        string
	Signature   string
	Description string
	Callouts    []string
}

// buildClassView prepares one class descriptor for document template rendering.
func buildClassView(class ClassDescriptor, opt RenderOptions) classView {
	wrapWidth := normalizeWrapWidth(opt.WrapWidth)

	view := classView{
		Title:       sanitizeText(class.Name),
		Description: formatDescriptionMarkdown(class.Description, wrapWidth),
		Properties:  make([]propertyView, 0, len(class.Properties)),
	}

	for _, property := range class.Properties {
		view.Properties = append(view.Properties, propertyView{
			Name:        sanitizeText(property.Name),
			Signature:   propertySignature(class.Name, property),
			Description: formatDescriptionMarkdown(property.Description, wrapWidth),
		})
	}

	view.Methods = buildFunctionViews(class.Name, class.MethodsOf(), ":", wrapWidth)
	view.Statics = buildFunctionViews(class.Name, class.StaticsOf(), ".", wrapWidth)
	return view
}

// buildFunctionViews renders one function section with the given call separator.
func buildFunctionViews(className string, functions []ClassFunction, separator string, wrapWidth int) []functionView {
	out := make([]functionView, 0, len(functions))
	for _, function := range functions {
		out = append(out, functionView{
			Name:        sanitizeText(function.Name),
			Signature:   functionSignature(className, function, separator),
			Description: formatDescriptionMarkdown(function.Description, wrapWidth),
			Callouts:    functionCallouts(function),
		})
	}

	return out
}

// propertySignature renders the "Class.prop :: type" signature line.
func propertySignature(className string, property ClassProperty) string {
	return className + "." + property.Name + " :: " + resolveTypeOrDefault(property.TypeName)
}

// functionSignature renders the "Class<sep>name(params) -> returns" line.
func functionSignature(className string, function ClassFunction, separator string) string {
	return className + separator + function.Name +
		"(" + renderParamList(function.Params) + ") -> " + renderReturnList(function.Returns)
}

// renderParamList renders the parenthesized parameter list body. Non-empty
// lists carry one leading and one trailing space; null slots are skipped.
func renderParamList(params []*FunctionParam) string {
	rendered := make([]string, 0, len(params))
	for _, param := range params {
		if param == nil {
			continue
		}

		rendered = append(rendered, "`"+escapeInline(param.Name)+"` "+resolveTypeOrDefault(param.TypeName))
	}

	if len(rendered) == 0 {
		return ""
	}

	return " " + strings.Join(rendered, ", ") + " "
}

// renderReturnList renders the return type list, defaulting to the resolved
// nil link when the function declares no returns.
func renderReturnList(returns []*FunctionReturn) string {
	rendered := make([]string, 0, len(returns))
	for _, ret := range returns {
		if ret == nil {
			continue
		}

		rendered = append(rendered, resolveTypeOrDefault(ret.TypeName))
	}

	if len(rendered) == 0 {
		return ResolveTypeLink(voidReturnToken)
	}

	return strings.Join(rendered, ", ")
}

// resolveTypeOrDefault resolves a type token, substituting "any" for empty names.
func resolveTypeOrDefault(typeName string) string {
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		typeName = defaultTypeToken
	}

	return ResolveTypeLink(typeName)
}

// functionCallouts renders availability callouts for one function.
func functionCallouts(function ClassFunction) []string {
	out := make([]string, 0, 2)
	if version := sinceVersionText(function.Since); version != "" {
		out = append(out, `<Callout type="info">Available since `+version+`</Callout>`)
	}

	if function.Unreleased {
		out = append(out, `<Callout type="warning">This item is not yet released to Wally.</Callout>`)
	}

	return out
}

// sinceVersionText extracts displayed version text from a raw since tag using
// the fixed prefix offset. Tags shorter than the prefix violate the extractor
// contract and yield no callout instead of aborting the render.
func sinceVersionText(since string) string {
	if len(since) <= sinceTagOffset {
		return ""
	}

	return since[sinceTagOffset:]
}
