package provider

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractRankings pulls a rankings document out of raw model text. Models
// wrap JSON in markdown fences or chatter around it despite instructions,
// so this strips fences and takes the first balanced object it finds.
func extractRankings(raw string) (rankingsDoc, error) {
	var doc rankingsDoc

	block := firstJSONObject(stripCodeFences(raw))
	if block == "" {
		return doc, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	if err := json.Unmarshal([]byte(block), &doc); err != nil {
		return doc, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return doc, nil
}

func stripCodeFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// firstJSONObject returns the first balanced {...} block, honoring string
// literals and escapes so braces inside values don't confuse the scan.
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	for i := start; i < len(s); i++ {
		switch c := s[i]; {
		case inString && c == '\\':
			i++
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
