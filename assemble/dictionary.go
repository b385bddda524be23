// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package assemble

import "strings"

// Dictionary answers whether a lowercased word is a known term, the
// lookup the dehyphenation policy consults before it trusts a hyphen
// split across a page or column break (spec §4.3).
type Dictionary interface {
	Contains(word string) bool
}

// WordSet is a Dictionary backed by an in-memory set of lowercase words.
type WordSet map[string]struct{}

// NewWordSet builds a WordSet from a list of words, case-folding each one.
func NewWordSet(words ...string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// Contains reports whether word (case-insensitively) is in the set.
func (s WordSet) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// emptyDictionary is used when the caller supplies none; it knows no
// words, which per spec §4.3 still permits dehyphenation as long as the
// hyphen is not preceded by a digit.
type emptyDictionary struct{}

func (emptyDictionary) Contains(string) bool { return false }
