package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedBlockRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// ExtractJSON pulls a JSON value out of raw LLM response content. It
// tolerates three shapes, tried in order:
//
//  1. raw JSON,
//  2. JSON inside a triple-backtick fence (optionally tagged "json"),
//  3. JSON embedded in narrative text, found by balanced-brace scanning
//     that is string- and escape-aware.
//
// Returns (value, true) on success. The value is a map for objects and a
// []any for top-level arrays.
func ExtractJSON(content string) (any, bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, false
	}

	if v, ok := tryDecode(content); ok {
		return v, true
	}

	if match := fencedBlockRe.FindStringSubmatch(content); match != nil {
		if v, ok := tryDecode(strings.TrimSpace(match[1])); ok {
			return v, true
		}
	}

	// Scan for the earliest balanced object or array.
	for _, candidate := range scanBalanced(content) {
		if v, ok := tryDecode(candidate); ok {
			return v, true
		}
	}

	return nil, false
}

// ParseResponse converts raw response content into the provider result
// contract: a JSON object on success, an error object otherwise. Top-level
// arrays are wrapped under "items" so the contract stays object-shaped.
func ParseResponse(content, service string) map[string]any {
	if strings.TrimSpace(content) == "" {
		return ErrorResult(service, "Empty response", "empty")
	}

	value, ok := ExtractJSON(content)
	if !ok {
		return ErrorResult(service, "Invalid JSON response", "invalid_json")
	}

	switch v := value.(type) {
	case map[string]any:
		return v
	case []any:
		return map[string]any{"items": v}
	default:
		return ErrorResult(service, "Invalid JSON response", "invalid_json")
	}
}

func tryDecode(s string) (any, bool) {
	if s == "" || (s[0] != '{' && s[0] != '[') {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return v, true
}

// scanBalanced returns candidate substrings for each opening brace kind,
// ordered by where the opener first appears in the text. The scanner
// tracks string literals and escapes so a '}' inside a string never
// terminates the match.
func scanBalanced(content string) []string {
	type pair struct {
		open, close byte
		idx         int
	}
	pairs := []pair{
		{'{', '}', strings.IndexByte(content, '{')},
		{'[', ']', strings.IndexByte(content, '[')},
	}
	if pairs[1].idx != -1 && (pairs[0].idx == -1 || pairs[1].idx < pairs[0].idx) {
		pairs[0], pairs[1] = pairs[1], pairs[0]
	}

	var out []string
	for _, p := range pairs {
		if p.idx == -1 {
			continue
		}
		if candidate, ok := matchBalanced(content[p.idx:], p.open, p.close); ok {
			out = append(out, candidate)
		}
	}
	return out
}

func matchBalanced(s string, open, close byte) (string, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// Ignore structural characters inside string literals.
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}
