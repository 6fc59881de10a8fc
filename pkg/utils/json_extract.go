package utils

import (
	"regexp"
	"strings"
)

var fencedBlockPattern = regexp.MustCompile("```(?:json|JSON)?\\s*([\\s\\S]*?)\\s*```")

// ExtractJSON strips markdown fencing from a completion. It returns the trimmed
// body of the first fenced block, or the trimmed text when there is none. The
// result is not guaranteed to be valid JSON.
func ExtractJSON(raw string) string {
	if match := fencedBlockPattern.FindStringSubmatch(raw); match != nil {
		return strings.TrimSpace(match[1])
	}
	return strings.TrimSpace(raw)
}

// ExtractJSONArray returns the first balanced [...] in raw, ignoring brackets
// inside string literals.
func ExtractJSONArray(raw string) (string, bool) {
	text := ExtractJSON(raw)
	start := strings.Index(text, "[")
	if start == -1 {
		return "", false
	}
	end := findMatchingBracket(text, start, '[', ']')
	if end == -1 {
		return "", false
	}
	return text[start : end+1], true
}

func findMatchingBracket(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
