// Package digest computes the canonicalized SHA-256 fingerprint used for
// change-aware cache lookups (ScenarioFingerprint) and the plain SHA-256
// used for the report generator's digest artifact (Hash). Only
// ScenarioFingerprint canonicalizes its input; Hash hashes the bytes as
// given.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EngineVersion is the "semantic version" of the template engine and
// validator contract. Bump it whenever a change to rendering or
// validation semantics should invalidate every existing cache entry,
// rather than attempting a schema migration.
const EngineVersion = "clnrm-engine-v1"

// ScenarioFingerprint canonicalizes a scenario's rendered TOML fragment
// plus the TOML fragments of every service it transitively references,
// then hashes the concatenation together with EngineVersion.
func ScenarioFingerprint(scenarioTOML string, serviceTOMLs ...string) (string, error) {
	canon, err := Canonicalize(scenarioTOML)
	if err != nil {
		return "", fmt.Errorf("canonicalizing scenario fragment: %w", err)
	}

	parts := []string{canon}
	sortedServices := append([]string{}, serviceTOMLs...)
	sort.Strings(sortedServices)
	for _, svc := range sortedServices {
		c, err := Canonicalize(svc)
		if err != nil {
			return "", fmt.Errorf("canonicalizing service fragment: %w", err)
		}
		parts = append(parts, c)
	}
	parts = append(parts, EngineVersion)

	return hashString(strings.Join(parts, "\x00")), nil
}

// Canonicalize decodes a TOML fragment and re-encodes it deterministically:
// all mappings sorted by key, numeric literals normalized, comments and
// insignificant whitespace stripped by virtue of round-tripping through
// the decoder.
func Canonicalize(src string) (string, error) {
	var raw map[string]any
	if err := toml.Unmarshal([]byte(src), &raw); err != nil {
		return "", err
	}
	var sb strings.Builder
	writeValue(&sb, normalize(raw))
	return sb.String(), nil
}

// normalize walks a decoded TOML value tree, normalizing numeric types so
// that e.g. int64(3) and float64(3.0) canonicalize identically when the
// author's formatting differs but the semantic value does not.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case int:
		return float64(val)
	case int64:
		return float64(val)
	default:
		return val
	}
}

// writeValue serializes a normalized value tree to a canonical, sorted,
// compact textual form. The exact grammar is private to this package; it
// only needs to be stable across calls with equal input, not human-read.
func writeValue(sb *strings.Builder, v any) {
	switch val := v.(type) {
	case map[string]any:
		sb.WriteByte('{')
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			writeValue(sb, val[k])
		}
		sb.WriteByte('}')
	case []any:
		sb.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeValue(sb, item)
		}
		sb.WriteByte(']')
	case string:
		sb.WriteString(strconv.Quote(val))
	case bool:
		if val {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case float64:
		sb.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
	case nil:
		sb.WriteString("null")
	default:
		sb.WriteString(fmt.Sprintf("%v", val))
	}
}

func hashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Hash computes a plain SHA-256 hex digest of s, with no canonicalization
// applied. Used by the report generator for the normalized span tree,
// which is already canonical by construction.
func Hash(s string) string {
	return hashString(s)
}
