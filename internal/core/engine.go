// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core wires the ignore matcher and the detectors into the detection
// engine shared by all scan modes.
package core

import (
	"fmt"

	"secrecy/internal/config"
	"secrecy/internal/detector"
	"secrecy/internal/ignore"
	"secrecy/internal/validators/entropy"
	"secrecy/internal/validators/privatekey"
	"secrecy/internal/validators/vault"
)

// Engine runs every detector against each file it is given. An Engine is
// immutable after construction and safe for concurrent use.
type Engine struct {
	ignored   *ignore.Matcher
	detectors []detector.Detector
}

// NewEngine builds the engine from the loaded configuration. It fails on an
// invalid glob pattern.
func NewEngine(cfg *config.Config) (*Engine, error) {
	ignored, err := ignore.NewMatcher(cfg.IgnorePatterns)
	if err != nil {
		return nil, fmt.Errorf("ignore patterns: %w", err)
	}
	vaultFiles, err := ignore.NewMatcher(cfg.VaultPatterns)
	if err != nil {
		return nil, fmt.Errorf("vault patterns: %w", err)
	}

	return &Engine{
		ignored: ignored,
		// Detectors run in this fixed order for every file; none of them
		// short-circuits the others.
		detectors: []detector.Detector{
			vault.NewValidator(vaultFiles),
			privatekey.NewValidator(),
			entropy.NewValidator(),
		},
	}, nil
}

// IsIgnored reports whether path is excluded by the configuration.
func (e *Engine) IsIgnored(path string) bool {
	return e.ignored.Match(path)
}

// CheckFile scans one file body and records all findings on rctx. Ignored
// paths produce no findings. Findings never abort the scan; the caller keeps
// feeding files so that one pass reports every issue in the input set.
func (e *Engine) CheckFile(rctx *detector.ReportContext, content []byte, path string) {
	e.CheckFileAt(rctx, content, path, "")
}

// CheckFileAt is CheckFile for content taken from a historical commit. The
// commit hash is stamped onto each finding here rather than read from shared
// context state, so files of different commits can be scanned concurrently.
func (e *Engine) CheckFileAt(rctx *detector.ReportContext, content []byte, path, commit string) {
	if e.ignored.Match(path) {
		return
	}
	for _, d := range e.detectors {
		findings := d.Check(content, path)
		if commit != "" {
			for i := range findings {
				findings[i].Commit = commit
			}
		}
		rctx.Record(findings...)
	}
}
