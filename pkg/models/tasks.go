package models

import "strings"

// TaskDisplayName extracts the human-readable name from an Operations task
// label. Labels may use Slack hyperlink syntax ("<url|Name>"), in which case
// the trailing name segment is returned; plain labels are returned trimmed.
func TaskDisplayName(label string) string {
	if strings.HasPrefix(label, "<") && strings.Contains(label, "|") {
		name := label[strings.LastIndex(label, "|")+1:]
		return strings.TrimSpace(strings.TrimSuffix(name, ">"))
	}
	return strings.TrimSpace(label)
}
