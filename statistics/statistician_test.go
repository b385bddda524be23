// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sassoftware/pdf-structure/model"
)

func face(family string, size float64) model.FontFace {
	return model.FontFace{Font: model.Font{FamilyName: family}, FontSize: size}
}

func TestCharacterStatistician_FromCharacters_MostCommonFontFaceTieBrokenByFirstSeen(t *testing.T) {
	chars := []model.Character{
		{FontFace: face("Times", 10), Color: model.NewColor(0, 0, 0)},
		{FontFace: face("Arial", 12), Color: model.NewColor(0, 0, 0)},
		{FontFace: face("Times", 10), Color: model.NewColor(0, 0, 0)},
		{FontFace: face("Arial", 12), Color: model.NewColor(0, 0, 0)},
	}
	stat := CharacterStatistician{}.FromCharacters(chars)
	// Both faces appear twice; "Times" was seen first, so it wins the tie.
	assert.Equal(t, "Times", stat.MostCommonFontFace.Font.FamilyName)
	assert.Equal(t, 4, stat.CharacterCount)
}

func TestCharacterStatistician_FromCharacters_AverageFontSize(t *testing.T) {
	chars := []model.Character{
		{FontFace: face("Times", 10), Color: model.NewColor(0, 0, 0)},
		{FontFace: face("Times", 20), Color: model.NewColor(0, 0, 0)},
	}
	stat := CharacterStatistician{}.FromCharacters(chars)
	assert.Equal(t, 15.0, stat.AverageFontSize)
}

func TestCharacterStatistician_Merge_WeightsByCharacterCount(t *testing.T) {
	small := model.CharacterStatistic{
		MostCommonFontFace: face("Arial", 12),
		AverageFontSize:     12,
		CharacterCount:      2,
	}
	large := model.CharacterStatistic{
		MostCommonFontFace: face("Times", 10),
		AverageFontSize:     10,
		CharacterCount:      20,
	}
	merged := CharacterStatistician{}.Merge([]model.CharacterStatistic{small, large})
	assert.Equal(t, "Times", merged.MostCommonFontFace.Font.FamilyName)
	assert.Equal(t, 22, merged.CharacterCount)
}

func line(pageNumber int, baselineY float64, f model.FontFace) model.TextLine {
	return model.TextLine{
		PageNumber:         pageNumber,
		Baseline:           model.Line{StartY: baselineY},
		CharacterStatistic: model.CharacterStatistic{MostCommonFontFace: f},
	}
}

func TestTextLineStatistician_ComputeDocument_ArgmaxPitchPerFontFace(t *testing.T) {
	f := face("Times", 10)
	pages := []model.Page{
		{
			Number: 1,
			TextLines: []model.TextLine{
				line(1, 700, f),
				line(1, 688, f), // pitch 12
				line(1, 676, f), // pitch 12
				line(1, 660, f), // pitch 16
			},
		},
	}
	stat := TextLineStatistician{}.ComputeDocument(pages)
	assert.Equal(t, 12.0, stat.MostCommonLinePitch(f))
}

func TestTextLineStatistician_ComputeDocument_UnknownFaceReturnsZero(t *testing.T) {
	stat := TextLineStatistician{}.ComputeDocument(nil)
	assert.Equal(t, 0.0, stat.MostCommonLinePitch(face("Helvetica", 9)))
}
