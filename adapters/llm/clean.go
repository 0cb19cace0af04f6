package llm

import "strings"

// cleanJSONContent removes markdown code fences and conversational chatter
// that models sometimes wrap around JSON output
func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	} else if strings.HasPrefix(content, "```") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	// Drop lines that read as explanations rather than payload
	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if trimmed == "" ||
			strings.HasPrefix(lower, "here is") ||
			strings.HasPrefix(lower, "the json") ||
			strings.HasPrefix(lower, "output:") ||
			strings.HasPrefix(lower, "response:") ||
			strings.HasPrefix(lower, "##") {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	content = strings.TrimSpace(strings.Join(cleaned, "\n"))

	// Anything before the first opening brace that contains no JSON at all
	// is prefix chatter
	if strings.Contains(content, "\n{") {
		parts := strings.SplitN(content, "\n{", 2)
		if len(parts) == 2 && !strings.ContainsAny(parts[0], "{[") {
			content = "{" + parts[1]
		}
	}

	return content
}
