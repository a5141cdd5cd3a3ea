package utils

import "strings"

// NormalizeList flattens form values into a trimmed list. Each value may
// itself be comma- or newline-delimited (the dashboard sends both shapes),
// and empty entries are dropped.
func NormalizeList(values []string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == '\n' || r == '\r'
		}) {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
