// Package export renders a validated record in the shapes the console
// offers for download and sharing. All renderers walk fields in schema
// order; none of them re-validate.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"triagelock/domain/schema"
)

// FieldLabel turns a snake_case field name into its display label
// ("incident_severity" becomes "Incident Severity")
func FieldLabel(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// FormatValue renders a validated field value as display text. Lists join
// with "; "; floats drop trailing zeros.
func FormatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, "; ")
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// groupedFloat formats a float with two decimals and comma-grouped
// thousands ("12,450.50")
func groupedFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

// ExportName builds the download file name for a record
// ("triage_healthcare_1714063512.json")
func ExportName(domain schema.Domain, unixSeconds int64, format string) string {
	return fmt.Sprintf("triage_%s_%d.%s", domain, unixSeconds, format)
}
