// Package env renders .env files.
package env

import (
	"fmt"
	"sort"
	"strings"
)

// Marshal renders vars as dotenv content with deterministic key order.
// Values a dotenv parser could misread are double-quoted.
func Marshal(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(fmt.Sprintf("%s=%s\n", key, quote(vars[key])))
	}
	return b.String()
}

func quote(value string) string {
	if !strings.ContainsAny(value, " #\"'\n") {
		return value
	}
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `"`, `\"`)
	value = strings.ReplaceAll(value, "\n", `\n`)
	return `"` + value + `"`
}
