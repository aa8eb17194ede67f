package lang

import (
	"strings"

	"github.com/goccy/go-yaml"
)

// ParseLiteral converts command line text to the scalar a manifest would
// hold for the same text: "2" is int64(2), "2.5" is float64(2.5), "true" is
// a bool and anything else, including quoted numbers like `"2"`, is a string.
func ParseLiteral(s string) any {
	if strings.TrimSpace(s) == "" {
		return s
	}

	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}

	n, err := Normalize(v)
	if err != nil {
		return s
	}

	return n
}
