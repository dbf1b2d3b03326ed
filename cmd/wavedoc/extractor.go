// SPDX-License-Identifier: MIT
// Copyright (c) 2026 MoonPulse
// Source: github.com/moonpulse/wavedoc

package main

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// runExtractor invokes the external doc extractor as "<extractor> extract
// <input>" and returns its stdout, the class descriptor JSON array. A failed
// run surfaces the extractor's stderr text verbatim as the error message and
// aborts the pipeline before any output is touched.
func runExtractor(extractor, inputDir string) ([]byte, error) {
	command := exec.Command(extractor, "extract", inputDir)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}

		return nil, fmt.Errorf("run extractor: %s", detail)
	}

	return stdout.Bytes(), nil
}
