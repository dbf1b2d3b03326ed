// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package wavedoc

import "errors"

var (
	// ErrDecodeClasses is returned when the extractor class array cannot be decoded.
	ErrDecodeClasses = errors.New("decode class descriptors")
	// ErrExecuteDocTemplate is returned when document template execution fails.
	ErrExecuteDocTemplate = errors.New("execute document template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrTreeCollision is returned when a path segment is used as both folder and file.
	ErrTreeCollision = errors.New("tree collision between folder and file")
	// ErrCreateFolder is returned when an output directory cannot be created.
	ErrCreateFolder = errors.New("create output folder")
	// ErrWriteDocument is returned when a rendered document cannot be written.
	ErrWriteDocument = errors.New("write document file")
	// ErrWriteManifest is returned when a navigation manifest cannot be written.
	ErrWriteManifest = errors.New("write navigation manifest")
	// ErrReadPackageManifest is returned when a wally.toml package manifest cannot be read.
	ErrReadPackageManifest = errors.New("read package manifest")
	// ErrDecodePackageManifest is returned when a wally.toml package manifest cannot be decoded.
	ErrDecodePackageManifest = errors.New("decode package manifest")
	// ErrMalformedLink is returned when a rendered document contains a malformed link destination.
	ErrMalformedLink = errors.New("malformed link destination")
)
