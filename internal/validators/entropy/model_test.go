// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entropy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetSize(t *testing.T) {
	// 29 punctuation marks + 52 letters + 10 digits.
	require.Equal(t, 91, alphabetSize)
}

func TestNewModel_TableShape(t *testing.T) {
	model := NewModel()
	require.Len(t, model.letters, 52)

	for ch, lp := range model.letters {
		assert.Len(t, lp.afterLetter.probs, 26, "letter %q", ch)
	}

	// The measured frequencies of these letters sum above 1, so their
	// shared remainder is negative. The model loads them as-is; with all
	// 26 letters explicit the remainder is never consulted, and the
	// known-good scores below depend on these rows being untouched.
	for _, ch := range []byte{'a', 'e', 'i', 'l', 'o', 'r', 's', 't'} {
		assert.Negative(t, model.letters[ch].afterLetter.rest, "letter %q", ch)
	}
}

func TestNewTruncatedDist_OversubscribedRowIsKept(t *testing.T) {
	dist := newTruncatedDist(map[byte]float64{'a': 0.9, 'b': 0.2})
	assert.Equal(t, 0.9, dist.get('a'))
	assert.InDelta(t, (1.0-1.1)/89.0, dist.get('z'), 1e-15)
	assert.Negative(t, dist.rest)
}

func TestTruncatedDist_FallsBackToRest(t *testing.T) {
	dist := newTruncatedDist(map[byte]float64{'a': 0.5})

	assert.Equal(t, 0.5, dist.get('a'))
	// 90 remaining alphabet members share the other half evenly.
	assert.InDelta(t, 0.5/90.0, dist.get('z'), 1e-15)
	assert.Equal(t, dist.get('q'), dist.get('z'))
}

func TestProbability_Contexts(t *testing.T) {
	model := NewModel()

	lp := model.letters['h']
	assert.Equal(t, lp.atStart, model.Probability(0, 'h'))
	assert.Equal(t, lp.afterDigit, model.Probability('7', 'h'))
	assert.Equal(t, lp.afterPunct, model.Probability('$', 'h'))
	assert.Equal(t, lp.afterLetter.get('t'), model.Probability('t', 'h'))
	// A lowercase letter after an uppercase one lowers only the previous.
	assert.Equal(t, lp.afterLetter.get('t'), model.Probability('T', 'h'))
}

func TestProbability_UppercasePairFolding(t *testing.T) {
	model := NewModel()

	// Both uppercase: fold the pair and use the lowered letter's table.
	want := model.letters['h'].afterLetter.get('t')
	assert.Equal(t, want, model.Probability('T', 'H'))
	assert.NotEqual(t, want, model.letters['H'].afterLetter.get('t'),
		"folding must not be a no-op for this pair")
}

// Known-good scores for the embedded table, including tokens that exercise
// the oversubscribed rows. The tiny delta absorbs last-ulp float variation.
func TestScore_GoldenValues(t *testing.T) {
	model := NewModel()

	golden := map[string]float64{
		"hello":         0.15395644824567703,
		"password":      0.09917857576143548,
		"mysupersecret": 0.13635103071084714,
		"worldly":       0.12842021065460624,
		"Xqzkwpf":       2.4666762521705823,
		"qwJzXkVp":      3.9227414502280995,
		"AAAAAA":        1.4041520542217998,
		"XKWZQJVT":      1.1445320166743835,
	}
	for token, want := range golden {
		got := model.Score(token)
		assert.InDelta(t, want, got, want*1e-9, "token %q", token)
	}
}

func TestScore_ThresholdSplitsWordsFromNoise(t *testing.T) {
	model := NewModel()

	assert.LessOrEqual(t, model.Score("hello"), Threshold)
	assert.LessOrEqual(t, model.Score("secret"), Threshold)
	assert.Greater(t, model.Score("Xqzkwpf"), Threshold)
}

func TestScore_ZeroAverageIsInfinite(t *testing.T) {
	model := &Model{letters: map[byte]letterProbability{
		'q': {afterLetter: truncatedDist{probs: map[byte]float64{}}},
	}}
	score := model.Score("qqqqqq")
	require.True(t, math.IsInf(score, 1))
	assert.Greater(t, score, Threshold, "an unbounded score must still be flagged")
}
