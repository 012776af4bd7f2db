package threatmodel

import (
	"encoding/json"
	"log/slog"
	"math"
	"sort"
	"strings"
	"unicode"
)

// Documented defaults for missing scalar fields in raw LLM records.
const (
	defaultID          = "unknown"
	defaultType        = "Unknown"
	defaultName        = "Unnamed"
	defaultDescription = "No description"
	defaultMitigation  = "No mitigation provided"
)

// dedupDescriptionLimit bounds the normalized description used in the
// threat dedup key.
const dedupDescriptionLimit = 500

// ParseComponents converts raw component maps into strict Components.
// Malformed items are logged and dropped; they never fail the caller.
func ParseComponents(raw []any) []Component {
	out := make([]Component, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			slog.Warn("Failed to parse component: not an object")
			continue
		}
		out = append(out, Component{
			ID:          stringField(m, "id", defaultID),
			Type:        stringField(m, "type", defaultType),
			Name:        stringField(m, "name", defaultName),
			Description: stringField(m, "description", ""),
		})
	}
	return out
}

// ParseConnections converts raw connection maps into strict Connections.
// The raw "from"/"to" keys map to FromID/ToID.
func ParseConnections(raw []any) []Connection {
	out := make([]Connection, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			slog.Warn("Failed to parse connection: not an object")
			continue
		}
		conn := Connection{
			FromID:      stringField(m, "from", defaultID),
			ToID:        stringField(m, "to", defaultID),
			Protocol:    stringField(m, "protocol", ""),
			Description: stringField(m, "description", ""),
		}
		if b, ok := boolField(m, "encrypted"); ok {
			conn.Encrypted = &b
		}
		out = append(out, conn)
	}
	return out
}

// ParseThreats converts raw threat maps into strict Threats, removing
// duplicates. Only one threat per (threat_type, normalized description)
// is kept; the first occurrence wins. Applying the function to its own
// output yields the same list.
func ParseThreats(raw []map[string]any) []Threat {
	seen := make(map[[2]string]struct{}, len(raw))
	out := make([]Threat, 0, len(raw))
	for _, m := range raw {
		key := dedupKey(m)
		if _, dup := seen[key]; dup {
			slog.Debug("Dropping duplicate threat", "threat_type", key[0])
			continue
		}
		seen[key] = struct{}{}

		threat := Threat{
			ComponentID: stringField(m, "component_id", defaultID),
			ThreatType:  stringField(m, "threat_type", defaultType),
			Description: stringField(m, "description", defaultDescription),
			Mitigation:  stringField(m, "mitigation", defaultMitigation),
		}
		if score, ok := floatField(m, "dread_score"); ok {
			clamped := clamp(score, 0, 10)
			threat.DreadScore = &clamped
		}
		if details, ok := m["dread_details"].(map[string]any); ok {
			threat.DreadDetails = parseDreadDetails(details)
		}
		out = append(out, threat)
	}
	if len(out) != len(raw) {
		slog.Info("Deduplicated threats", "before", len(raw), "after", len(out))
	}
	return out
}

// SortThreats orders threats by dread_score descending; a missing score
// sorts as 0. The sort is stable so equal scores keep their input order.
func SortThreats(threats []Threat) {
	sort.SliceStable(threats, func(i, j int) bool {
		return scoreOrZero(threats[i]) > scoreOrZero(threats[j])
	})
}

// RiskScore computes the aggregate risk: the arithmetic mean of
// dread_score across all threats (missing scores count as 0), or 0 when
// there are no threats.
func RiskScore(threats []Threat) float64 {
	if len(threats) == 0 {
		return 0
	}
	var total float64
	for _, t := range threats {
		total += scoreOrZero(t)
	}
	return total / float64(len(threats))
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func scoreOrZero(t Threat) float64 {
	if t.DreadScore == nil {
		return 0
	}
	return *t.DreadScore
}

// dedupKey builds the threat dedup key:
// (Title-Cased trimmed threat_type, lowercased whitespace-collapsed
// description truncated to 500 runes).
func dedupKey(m map[string]any) [2]string {
	threatType := strings.TrimSpace(stringField(m, "threat_type", defaultType))
	if threatType != "" {
		threatType = titleCase(threatType)
	}
	desc := strings.ToLower(strings.TrimSpace(stringField(m, "description", "")))
	desc = collapseWhitespace(desc)
	if runes := []rune(desc); len(runes) > dedupDescriptionLimit {
		desc = string(runes[:dedupDescriptionLimit])
	}
	return [2]string{threatType, desc}
}

// titleCase uppercases the first letter of each word and lowercases the
// rest, e.g. "information disclosure" -> "Information Disclosure".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			startOfWord = true
			b.WriteRune(r)
		case startOfWord:
			startOfWord = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func parseDreadDetails(m map[string]any) *DreadDetails {
	sub := func(key string) float64 {
		v, _ := floatField(m, key)
		return clamp(v, 0, 10)
	}
	return &DreadDetails{
		Damage:          sub("damage"),
		Reproducibility: sub("reproducibility"),
		Exploitability:  sub("exploitability"),
		AffectedUsers:   sub("affected_users"),
		Discoverability: sub("discoverability"),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func stringField(m map[string]any, key, defaultVal string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return defaultVal
}

func floatField(m map[string]any, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func boolField(m map[string]any, key string) (bool, bool) {
	b, ok := m[key].(bool)
	return b, ok
}
