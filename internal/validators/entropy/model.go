// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package entropy scores quoted letter runs for password-likeness using a
// context-dependent letter transition model, and reports runs whose score
// crosses the detection threshold.
package entropy

// passwordChars is the full password alphabet the model is normalized over:
// a fixed set of punctuation marks, the 52 ASCII letters and the 10 digits.
const passwordChars = `!#$%&()+*,./:;<=>?@_{|}~-\^[]` +
	"abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789"

// alphabetSize is |passwordChars|, the weighting constant of the scorer.
const alphabetSize = len(passwordChars)

// letterEntry is the raw table row for one letter, as generated from the
// bigram counts. afterLetter is keyed by the 26 lowercase letters.
type letterEntry struct {
	atStart     float64
	afterDigit  float64
	afterPunct  float64
	afterLetter map[byte]float64
}

// truncatedDist maps a prior letter to a probability. Letters without an
// explicit entry share the remaining probability mass evenly over the rest
// of the password alphabet.
type truncatedDist struct {
	probs map[byte]float64
	rest  float64
}

// newTruncatedDist derives the shared remainder from the explicit entries.
// Rows whose explicit probabilities sum above 1 get a negative rest; the
// table was measured with relative letter frequencies, not normalized to 1,
// and rows with a full set of explicit entries never have their rest read.
func newTruncatedDist(probs map[byte]float64) truncatedDist {
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	return truncatedDist{
		probs: probs,
		rest:  (1.0 - sum) / float64(alphabetSize-len(probs)),
	}
}

func (d truncatedDist) get(prev byte) float64 {
	if p, ok := d.probs[prev]; ok {
		return p
	}
	return d.rest
}

// letterProbability holds the transition probabilities of one letter in each
// supported context.
type letterProbability struct {
	atStart     float64
	afterDigit  float64
	afterPunct  float64
	afterLetter truncatedDist
}

// Model is the immutable letter transition model. It is built once at startup
// and shared read-only by all scan workers.
type Model struct {
	letters map[byte]letterProbability
}

// NewModel builds the model from the embedded table.
func NewModel() *Model {
	m := &Model{letters: make(map[byte]letterProbability, len(letterData))}
	for ch, entry := range letterData {
		m.letters[ch] = letterProbability{
			atStart:     entry.atStart,
			afterDigit:  entry.afterDigit,
			afterPunct:  entry.afterPunct,
			afterLetter: newTruncatedDist(entry.afterLetter),
		}
	}
	return m
}

// Probability returns the probability of ch occurring after prev. A zero prev
// means ch opens the token. ch must be an ASCII letter; candidate extraction
// guarantees this, so the lookup is unconditional.
//
// When both prev and ch are uppercase the pair is folded to lowercase and the
// lowered letter's table is used instead. This treats ALLCAPS tokens like
// their lowercase spelling rather than as rare capital-to-capital bigrams.
func (m *Model) Probability(prev, ch byte) float64 {
	lp := m.letters[ch]
	switch {
	case prev == 0:
		return lp.atStart
	case isLetter(prev):
		if isUpper(prev) && isUpper(ch) {
			return m.letters[toLower(ch)].afterLetter.get(toLower(prev))
		}
		return lp.afterLetter.get(toLower(prev))
	case prev >= '0' && prev <= '9':
		return lp.afterDigit
	default:
		return lp.afterPunct
	}
}

// Score computes the surprisal score of a candidate: the inverse of the mean
// alphabet-weighted transition probability over the token. Rare transitions
// push the mean down and the score up. An all-zero mean yields +Inf, which
// still counts as exceeding any threshold.
func (m *Model) Score(s string) float64 {
	sum := 0.0
	for i := 0; i < len(s); i++ {
		var prev byte
		if i > 0 {
			prev = s[i-1]
		}
		sum += m.Probability(prev, s[i]) * float64(alphabetSize)
	}
	return 1 / (sum / float64(len(s)))
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func toLower(b byte) byte {
	if isUpper(b) {
		return b + ('a' - 'A')
	}
	return b
}
