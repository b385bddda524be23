// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package serialize

import (
	"strings"

	"github.com/sassoftware/pdf-structure/model"
)

// txtSerializer renders the view's paragraph text, one paragraph per
// line, separated by a blank line, with a trailing newline. It ignores
// Words/Characters/Figures/Shapes/Pages: plain text has no room for
// them, and spec §4.6 only requires the three backends share the same
// filtering contract, not the same element set.
type txtSerializer struct {
	cfg Config
}

func (s txtSerializer) Serialize(doc *model.Document) ([]byte, error) {
	v := buildView(doc, s.cfg)
	if len(v.paragraphs) == 0 {
		return nil, nil
	}

	texts := make([]string, len(v.paragraphs))
	for i, p := range v.paragraphs {
		texts[i] = p.Text
	}
	out := strings.Join(texts, "\n\n")
	out += "\n"
	return []byte(out), nil
}
