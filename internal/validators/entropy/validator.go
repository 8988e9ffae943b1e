// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entropy

import (
	"fmt"
	"regexp"

	"secrecy/internal/detector"
)

// Threshold is the surprisal score above which a candidate is reported.
const Threshold = 0.5

// candidatePattern matches a run of 6+ ASCII letters immediately enclosed in
// matching "...", '...' or >...< delimiters. Passwords shorter than 6
// characters are a problem this scanner cannot help with.
var candidatePattern = regexp.MustCompile(`"([A-Za-z]{6,})"|'([A-Za-z]{6,})'|>([A-Za-z]{6,})<`)

// Validator extracts delimiter-enclosed letter runs from each line and scores
// them against the transition model.
type Validator struct {
	model *Model
}

// NewValidator builds the transition model and returns an entropy validator.
func NewValidator() *Validator {
	return &Validator{model: NewModel()}
}

// Name returns the validator identifier.
func (v *Validator) Name() string {
	return "ENTROPY"
}

// Check scores every candidate on every line independently and reports those
// whose score exceeds the threshold.
func (v *Validator) Check(content []byte, filePath string) []detector.Finding {
	var findings []detector.Finding
	for i, line := range detector.SplitLines(content) {
		for _, candidate := range extractCandidates(line) {
			score := v.model.Score(candidate)
			if score > Threshold {
				findings = append(findings, detector.Finding{
					Path:    filePath,
					Line:    i + 1,
					Message: fmt.Sprintf("high entropy string: %q (entropy %g)", candidate, score),
				})
			}
		}
	}
	return findings
}

// extractCandidates returns all non-overlapping candidates on one line.
// Exactly one alternation group is set per match; candidates are guaranteed
// to consist only of ASCII letters, which the model relies on.
func extractCandidates(line []byte) []string {
	matches := candidatePattern.FindAllSubmatch(line, -1)
	if matches == nil {
		return nil
	}
	candidates := make([]string, 0, len(matches))
	for _, match := range matches {
		for _, group := range match[1:] {
			if group != nil {
				candidates = append(candidates, string(group))
				break
			}
		}
	}
	return candidates
}
