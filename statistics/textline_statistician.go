// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package statistics

import (
	"math"

	"github.com/sassoftware/pdf-structure/model"
)

// TextLineStatistician computes model.TextLineStatistic values: the most
// common line pitch, bucketed by FontFace (spec §4.4).
type TextLineStatistician struct{}

// pitchPrecision rounds a pitch to 0.1pt before bucketing, so floating
// point noise from the producer doesn't fragment what is really one
// dominant pitch into several near-identical buckets.
const pitchPrecision = 10

func roundPitch(p float64) float64 {
	return math.Round(p*pitchPrecision) / pitchPrecision
}

// Compute aggregates the line pitches among a set of lines that already
// belong together (e.g. the lines of one TextBlock), keyed by the lower
// (second, reading-order-later) line's most-common FontFace.
func (TextLineStatistician) Compute(lines []model.TextLine) model.TextLineStatistic {
	return model.NewTextLineStatistic(bucketPitches(adjacentPitches(lines)))
}

// ComputeDocument aggregates line pitches across every page of the
// document: each adjacent pair of lines on a page contributes one pitch
// observation, keyed by the lower line's most-common FontFace (spec
// §4.4). This is the statistic the Block Tokenizer's
// linePitchLargerThanExpected reads.
func (TextLineStatistician) ComputeDocument(pages []model.Page) model.TextLineStatistic {
	var all []pitchObservation
	for _, page := range pages {
		all = append(all, adjacentPitches(page.TextLines)...)
	}
	return model.NewTextLineStatistic(bucketPitches(all))
}

type pitchObservation struct {
	face  model.FontFace
	pitch float64
}

// adjacentPitches walks consecutive lines and records the pitch between
// each pair, keyed by the lower line's (line[i+1]'s) most-common
// FontFace. Lines must already be in reading order (non-increasing
// baseline Y, spec §3).
func adjacentPitches(lines []model.TextLine) []pitchObservation {
	var out []pitchObservation
	for i := 1; i < len(lines); i++ {
		prev, line := lines[i-1], lines[i]
		baselineA, baselineB := prev.Baseline, line.Baseline
		pitch := model.LinePitch(&baselineA, &baselineB)
		if math.IsNaN(pitch) {
			continue
		}
		out = append(out, pitchObservation{
			face:  line.CharacterStatistic.MostCommonFontFace,
			pitch: pitch,
		})
	}
	return out
}

// bucketPitches groups observations by FontFace key and returns, for
// each key, the most frequent rounded pitch (argmax, ties broken by
// first-seen order — spec §4.4).
func bucketPitches(observations []pitchObservation) map[model.FontFaceKey]float64 {
	type pitchCounts struct {
		order []float64
		count map[float64]int
	}
	byFace := make(map[model.FontFaceKey]*pitchCounts)

	for _, obs := range observations {
		key := obs.face.Key()
		pc, ok := byFace[key]
		if !ok {
			pc = &pitchCounts{count: make(map[float64]int)}
			byFace[key] = pc
		}
		rounded := roundPitch(obs.pitch)
		if _, seen := pc.count[rounded]; !seen {
			pc.order = append(pc.order, rounded)
		}
		pc.count[rounded]++
	}

	result := make(map[model.FontFaceKey]float64, len(byFace))
	for key, pc := range byFace {
		best := 0.0
		bestCount := -1
		for _, pitch := range pc.order {
			if pc.count[pitch] > bestCount {
				bestCount = pc.count[pitch]
				best = pitch
			}
		}
		result[key] = best
	}
	return result
}
