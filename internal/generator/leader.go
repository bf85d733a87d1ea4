package generator

import "strings"

// DefaultLeaderMods is used when a leader key has no modifier part.
const DefaultLeaderMods = "CTRL"

// LeaderTimeoutMillis is the fixed leader key timeout.
const LeaderTimeoutMillis = 1000

// ParseLeaderKey splits a "MOD[+MOD...]+KEY" string. The last part,
// lower-cased, is the key; the preceding parts, upper-cased and joined
// with "+", are the modifiers. A string without "+" is taken as the key
// with DefaultLeaderMods. ok is false only for blank input.
func ParseLeaderKey(raw string) (key, mods string, ok bool) {
	if strings.TrimSpace(raw) == "" {
		return "", "", false
	}

	parts := strings.Split(raw, "+")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 {
		return strings.ToLower(parts[0]), DefaultLeaderMods, true
	}

	modParts := make([]string, 0, len(parts)-1)
	for _, p := range parts[:len(parts)-1] {
		modParts = append(modParts, strings.ToUpper(p))
	}
	return strings.ToLower(parts[len(parts)-1]), strings.Join(modParts, "+"), true
}
