package questiongen

import "strings"

// splitBlocks splits a raw LLM response on the leading question marker
// (e.g. "QUESTION:" or "STATEMENT:") and returns the non-empty blocks.
func splitBlocks(raw, marker string) []string {
	parts := strings.Split(raw, marker)
	blocks := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			blocks = append(blocks, trimmed)
		}
	}
	return blocks
}

// section extracts the text between marker and the first of the stop
// markers that follows it. Returns "" when marker is absent.
func section(block, marker string, stops ...string) string {
	idx := strings.Index(block, marker)
	if idx == -1 {
		return ""
	}
	rest := block[idx+len(marker):]
	end := len(rest)
	for _, stop := range stops {
		if stopIdx := strings.Index(rest, stop); stopIdx != -1 && stopIdx < end {
			end = stopIdx
		}
	}
	return strings.TrimSpace(rest[:end])
}

// leadingText returns the text before the first of the given markers,
// or the whole block when none is present.
func leadingText(block string, markers ...string) string {
	end := len(block)
	for _, marker := range markers {
		if idx := strings.Index(block, marker); idx != -1 && idx < end {
			end = idx
		}
	}
	return strings.TrimSpace(block[:end])
}
