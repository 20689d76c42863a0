// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"strconv"
	"strings"
)

// Detail line names.
const (
	detailMinItems  = "Min items"
	detailMinLength = "Min length"
	detailMalformed = "Malformed schema"
)

// nodeDetails renders secondary lines for one node.
// Count constraints are shown whenever present, zero included.
func nodeDetails(node SchemaNode) []Detail {
	switch node.Kind {
	case KindArray:
		if node.Array.MinItems != nil {
			return []Detail{{Name: detailMinItems, Value: strconv.Itoa(*node.Array.MinItems)}}
		}
	case KindScalar:
		if node.Scalar.MinLength != nil {
			return []Detail{{Name: detailMinLength, Value: strconv.Itoa(*node.Scalar.MinLength)}}
		}
	case KindInvalid:
		return []Detail{{Name: detailMalformed, Value: node.Problem}}
	}

	return nil
}

// constraintSummary joins block details and pattern into one table cell.
func constraintSummary(block Block) string {
	parts := make([]string, 0, len(block.Details)+1)
	if block.Pattern != "" {
		parts = append(parts, "pattern="+block.Pattern)
	}

	for _, detail := range block.Details {
		if detail.Name == detailMalformed {
			continue
		}

		parts = append(parts, strings.ToLower(detail.Name)+"="+detail.Value)
	}

	return strings.Join(parts, "; ")
}

// yesNo renders bool as "yes" or "no".
func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
