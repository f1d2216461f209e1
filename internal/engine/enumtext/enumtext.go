// Package enumtext maps small integer enums to lowercase names so settings
// read naturally in yaml and toml files.
package enumtext

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the name of v, or its number when out of range.
func String[T ~int](v T, names []string) string {
	if int(v) >= 0 && int(v) < len(names) {
		return names[v]
	}
	return strconv.Itoa(int(v))
}

// Marshal encodes v as its name.
func Marshal[T ~int](v T, names []string) ([]byte, error) {
	if int(v) < 0 || int(v) >= len(names) {
		return nil, fmt.Errorf("value %d out of range", int(v))
	}
	return []byte(names[v]), nil
}

// Unmarshal decodes a name (case-insensitive) or a plain index into dst.
func Unmarshal[T ~int](text []byte, names []string, dst *T) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range names {
		if n == s {
			*dst = T(i)
			return nil
		}
	}
	if i, err := strconv.Atoi(s); err == nil && i >= 0 && i < len(names) {
		*dst = T(i)
		return nil
	}
	return fmt.Errorf("unknown value %q, want one of %s", s, strings.Join(names, ", "))
}
