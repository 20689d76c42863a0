// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"regexp"
	"strings"
)

// DraftInfo describes detected JSON Schema draft from "$schema" URI.
type DraftInfo struct {
	// Raw is the trimmed "$schema" value.
	Raw string `json:"raw,omitempty"`
	// Canonical is the normalized draft name, for example "2020-12" or "draft-07".
	Canonical string `json:"canonical,omitempty"`
	// Supported reports whether the draft is one of the known published drafts.
	Supported bool `json:"supported"`
}

// supportedDrafts lists canonical draft names recognized by DetectDraft.
var supportedDrafts = map[string]struct{}{
	"draft-04": {},
	"draft-05": {},
	"draft-06": {},
	"draft-07": {},
	"2019-09":  {},
	"2020-12":  {},
}

var (
	datedDraftPattern    = regexp.MustCompile(`(\d{4}-\d{2})`)
	numberedDraftPattern = regexp.MustCompile(`draft-(\d{2})`)
)

// DetectDraft normalizes "$schema" URI or bare draft name.
func DetectDraft(uri string) DraftInfo {
	raw := strings.TrimSpace(uri)
	info := DraftInfo{Raw: raw}
	if raw == "" {
		return info
	}

	normalized := strings.ToLower(strings.TrimRight(raw, "#/"))
	if match := numberedDraftPattern.FindStringSubmatch(normalized); match != nil {
		info.Canonical = "draft-" + match[1]
	} else if match := datedDraftPattern.FindStringSubmatch(normalized); match != nil {
		info.Canonical = match[1]
	}

	_, info.Supported = supportedDrafts[info.Canonical]
	return info
}

// draftText formats draft marker for schema header.
func draftText(info DraftInfo) string {
	switch {
	case info.Raw == "":
		return ""
	case info.Supported:
		return info.Canonical
	case info.Canonical != "":
		return "unknown (" + info.Canonical + ")"
	default:
		return "unknown"
	}
}
