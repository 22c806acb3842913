package ai

import (
	"regexp"
	"strings"
)

// trailingComma matches a comma immediately before a closing brace or
// bracket, a common model slip that breaks strict JSON parsing.
var trailingComma = regexp.MustCompile(`,(\s*[}\]])`)

// StripFences removes markdown code-fence wrapping the model may add around
// JSON output, plus trailing commas before closers.
func StripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	cleaned = strings.TrimSpace(cleaned)

	return trailingComma.ReplaceAllString(cleaned, "$1")
}
