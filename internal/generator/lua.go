package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var luaEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
)

// quote returns s as a single-quoted Lua string literal.
func quote(s string) string {
	return "'" + luaEscaper.Replace(s) + "'"
}

// luaBool renders a Go bool as a Lua boolean literal.
func luaBool(b bool) string {
	return strconv.FormatBool(b)
}

// luaNumber renders a float with at least one decimal place, so 1 becomes
// 1.0 and 0.95 stays 0.95.
func luaNumber(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%w: %v is not a finite number", ErrInvalidSettings, v)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s, nil
}
