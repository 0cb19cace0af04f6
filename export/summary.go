package export

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"triagelock/domain/schema"
)

// SlackSummary renders a record as Slack-flavored share text: single
// asterisks for bold, bulleted lists, comma-grouped floats
func SlackSummary(record schema.Record, modelLabel string, latencySeconds float64) string {
	lines := []string{
		fmt.Sprintf("*Triage — %s*", record.Schema.Title),
		fmt.Sprintf("Model: %s | Latency: %.2fs", modelLabel, latencySeconds),
		strings.Repeat("─", 36),
	}
	for _, fv := range record.OrderedFields() {
		label := FieldLabel(fv.Field.Name)
		switch v := fv.Value.(type) {
		case []string:
			lines = append(lines, fmt.Sprintf("*%s:*", label))
			for _, item := range v {
				lines = append(lines, fmt.Sprintf("  • %s", item))
			}
		case float64:
			lines = append(lines, fmt.Sprintf("*%s:* %s", label, groupedFloat(v)))
		default:
			lines = append(lines, fmt.Sprintf("*%s:* %s", label, FormatValue(fv.Value)))
		}
	}
	return strings.Join(lines, "\n")
}

// JiraSummary is the Slack summary with markdown-style double-asterisk
// bold, suitable for Jira and email clients
func JiraSummary(record schema.Record, modelLabel string, latencySeconds float64) string {
	return strings.ReplaceAll(SlackSummary(record, modelLabel, latencySeconds), "*", "**")
}

// HTMLSummary renders the markdown-flavored summary as an HTML fragment
func HTMLSummary(record schema.Record, modelLabel string, latencySeconds float64) []byte {
	md := JiraSummary(record, modelLabel, latencySeconds)
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.HardLineBreak)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}
