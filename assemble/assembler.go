// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package assemble implements the Paragraph Assembler of spec §4.3: it
// merges consecutive TextBlocks, on a page or across a page boundary,
// into Paragraphs whenever typographic and semantic continuity holds.
package assemble

import (
	"strings"
	"unicode"

	"github.com/sassoftware/pdf-structure/logger"
	"github.com/sassoftware/pdf-structure/model"
)

// Assembler groups a Document's TextBlocks into Paragraphs.
type Assembler struct {
	dict Dictionary
}

// New returns an Assembler that consults dict when deciding whether a
// hyphenated word break is a real continuation. A nil dict falls back to
// the digit-precedes-hyphen rule alone.
func New(dict Dictionary) Assembler {
	if dict == nil {
		dict = emptyDictionary{}
	}
	return Assembler{dict: dict}
}

// Assemble walks the Document's TextBlocks in reading order and merges
// runs of continuous blocks into Paragraphs (spec §4.3). It does not
// mutate doc.
func (a Assembler) Assemble(doc *model.Document) []model.Paragraph {
	blocks := doc.AllTextBlocks()
	if len(blocks) == 0 {
		return nil
	}

	var paragraphs []model.Paragraph
	groupStart := 0
	var hyphenBoundaries []bool

	for i := 1; i <= len(blocks); i++ {
		if i < len(blocks) {
			continues, hyphen := a.continuity(blocks[i-1], blocks[i])
			if continues {
				hyphenBoundaries = append(hyphenBoundaries, hyphen)
				continue
			}
		}
		group := blocks[groupStart:i]
		paragraphs = append(paragraphs, a.buildParagraph(group, hyphenBoundaries))
		groupStart = i
		hyphenBoundaries = nil
	}

	logger.Debug("assembled paragraphs", "blocks", len(blocks), "paragraphs", len(paragraphs))
	return paragraphs
}

// continuity reports whether block b continues block a, and if so,
// whether the boundary between them is a hyphenation join rather than a
// same-role join (spec §4.3: "share the same semanticRole at the time of
// assembly OR the previous block's last line ends with a hyphenated word
// and the next block's first line begins with a lowercase continuation").
func (a Assembler) continuity(prev, next model.TextBlock) (continues, hyphenJoin bool) {
	if prev.SemanticRole != "" && prev.SemanticRole == next.SemanticRole {
		return true, false
	}
	if a.hyphenates(prev, next) {
		return true, true
	}
	return false, false
}

// hyphenates implements the dehyphenation policy of spec §4.3.
func (a Assembler) hyphenates(prev, next model.TextBlock) bool {
	lastWord, ok := lastWordOf(prev)
	if !ok || !strings.HasSuffix(lastWord.Text, "-") {
		return false
	}
	firstWord, ok := firstWordOf(next)
	if !ok || firstWord.Text == "" {
		return false
	}
	if !unicode.IsLower([]rune(firstWord.Text)[0]) {
		return false
	}

	stem := strings.TrimSuffix(lastWord.Text, "-")
	combined := stem + firstWord.Text
	if a.dict.Contains(combined) {
		return true
	}
	if stem == "" {
		return true
	}
	precedingRune := []rune(stem)[len([]rune(stem))-1]
	return !unicode.IsDigit(precedingRune)
}

// buildParagraph assembles a Paragraph from a run of continuous blocks,
// applying the dehyphenation merge at every boundary hyphenBoundaries
// marks as a hyphen join.
func (a Assembler) buildParagraph(blocks []model.TextBlock, hyphenBoundaries []bool) model.Paragraph {
	p := model.NewParagraph(blocks)

	var words []model.Word
	for bi, block := range blocks {
		blockWords := flattenWords(block)
		if bi > 0 && len(hyphenBoundaries) >= bi && hyphenBoundaries[bi-1] && len(words) > 0 && len(blockWords) > 0 {
			words[len(words)-1] = mergeHyphenated(words[len(words)-1], blockWords[0])
			blockWords = blockWords[1:]
		}
		words = append(words, blockWords...)
	}

	p.Words = words
	p.Text = joinWordText(words)
	return p
}

func flattenWords(block model.TextBlock) []model.Word {
	var words []model.Word
	for _, line := range block.TextLines {
		words = append(words, line.Words...)
	}
	return words
}

func lastWordOf(block model.TextBlock) (model.Word, bool) {
	line, ok := block.LastLine()
	if !ok || len(line.Words) == 0 {
		return model.Word{}, false
	}
	return line.Words[len(line.Words)-1], true
}

func firstWordOf(block model.TextBlock) (model.Word, bool) {
	line, ok := block.FirstLine()
	if !ok || len(line.Words) == 0 {
		return model.Word{}, false
	}
	return line.Words[0], true
}

// mergeHyphenated drops a's trailing hyphen and its hyphen glyph, then
// concatenates a and b into one Word.
func mergeHyphenated(a, b model.Word) model.Word {
	stem := strings.TrimSuffix(a.Text, "-")
	chars := a.Characters
	if n := len(chars); n > 0 && chars[n-1].Text == "-" {
		chars = chars[:n-1]
	}
	merged := model.Word{
		Rectangle:  a.Rectangle.Union(b.Rectangle),
		Characters: append(append([]model.Character{}, chars...), b.Characters...),
		Text:       stem + b.Text,
	}
	return merged
}

func joinWordText(words []model.Word) string {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	return strings.Join(texts, " ")
}
