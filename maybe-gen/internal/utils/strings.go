package utils

import (
	"regexp"
	"strings"
)

var (
	reComma  = regexp.MustCompile(`\s*,\s*`)
	reOption = regexp.MustCompile(`^([a-z][a-z-]*)=(\S+)$`)
)

func ParseDirectives(spec string) []string {
	trailing := strings.TrimSpace(spec)
	if len(trailing) == 0 {
		return nil
	}
	return reComma.Split(trailing, -1)
}

// ParseValueWithOptions splits "value, k1=v1, k2=v2". Options are peeled
// off the end only, so the value itself may contain commas.
func ParseValueWithOptions(spec string) (value string, opts map[string]string) {
	parts := ParseDirectives(spec)
	opts = make(map[string]string)
	for len(parts) > 1 {
		m := reOption.FindStringSubmatch(parts[len(parts)-1])
		if m == nil {
			break
		}
		if _, dup := opts[m[1]]; !dup {
			opts[m[1]] = m[2]
		}
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, ", "), opts
}

// Capitalize turns a kebab-case name into an exported Go identifier.
func Capitalize(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
