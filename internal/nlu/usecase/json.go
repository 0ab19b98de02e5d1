package usecase

import (
	"strings"

	"github.com/tidwall/gjson"
)

// extractJSON strips markdown fences and returns the outermost JSON object
// in text, or "" when there is none.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	if gjson.Valid(text) && strings.HasPrefix(text, "{") {
		return text
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	candidate := text[start : end+1]
	if !gjson.Valid(candidate) {
		return ""
	}
	return candidate
}

func stringList(v gjson.Result) []string {
	out := []string{}
	if v.IsArray() {
		for _, item := range v.Array() {
			if s := strings.TrimSpace(item.String()); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if s := strings.TrimSpace(v.String()); v.Exists() && s != "" {
		out = append(out, s)
	}
	return out
}
