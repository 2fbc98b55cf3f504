// Package scope decodes the free-text scope descriptor attached to generated
// quizzes into a display label. The descriptor follows an informal grammar
// ("chapters=<json-array>", "chapter=<text>", or free text), so parsing is
// lenient best-effort extraction, never an error.
package scope

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	chaptersMarker = "chapters="
	chapterMarker  = "chapter="
)

// Placeholder is rendered when a quiz has no scope descriptor at all.
const Placeholder = "-"

// Label renders a raw scope string for display.
//
// If the string contains "chapters=", the remainder is parsed as a JSON
// array and joined with commas. When that parse fails, leading/trailing
// bracket, brace, quote and whitespace characters are stripped and the rest
// is rendered verbatim under the same prefix. "chapter=" renders the
// remainder directly. Anything else is returned unchanged.
func Label(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return Placeholder
	}

	if idx := strings.Index(raw, chaptersMarker); idx >= 0 {
		rest := raw[idx+len(chaptersMarker):]
		if items, ok := parseArray(rest); ok {
			return "Chapters: " + strings.Join(items, ", ")
		}
		return "Chapters: " + strings.Trim(rest, "[]{}\"' \t")
	}

	if idx := strings.Index(raw, chapterMarker); idx >= 0 {
		return "Chapter: " + raw[idx+len(chapterMarker):]
	}

	return raw
}

// parseArray attempts to read rest as a JSON array of scalars.
func parseArray(rest string) ([]string, bool) {
	var items []any
	if err := json.Unmarshal([]byte(strings.TrimSpace(rest)), &items); err != nil {
		return nil, false
	}
	out := make([]string, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			out[i] = v
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out, true
}
