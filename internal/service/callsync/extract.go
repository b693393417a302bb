package callsync

import (
	"sort"

	"github.com/heartmarshall/callhistory-backend/internal/provider"
)

const (
	scopeRoot     = ""
	scopeAnalysis = "call_analysis"
	scopeNested   = "*"
)

var (
	transcriptKeys = []string{"transcript", "transcription", "call_transcript"}

	agentKeys = []string{
		"agent_name", "agent", "assistant_name", "assistant",
		"agent_id", "assistant_id", "bot_name", "bot_id",
		"voice_agent", "ai_agent", "virtual_agent",
	}
)

// extractRule names where to look for a value and what counts as a hit.
// Scope is "" for the top level, an object key such as "call_analysis", or
// "*" for every nested object visited in key order.
type extractRule struct {
	Scope     string
	Keys      []string
	Predicate func(any) bool
}

// extractionPolicy is an ordered rule list; the first rule that yields a
// value wins.
type extractionPolicy []extractRule

var (
	transcriptPolicy = newPolicy(transcriptKeys)
	agentPolicy      = newPolicy(agentKeys)
)

func newPolicy(keys []string) extractionPolicy {
	return extractionPolicy{
		{Scope: scopeRoot, Keys: keys, Predicate: isPresent},
		{Scope: scopeAnalysis, Keys: keys, Predicate: isPresent},
		{Scope: scopeNested, Keys: keys, Predicate: isPresent},
	}
}

// Find returns the first matching value and the path it was found at,
// e.g. "transcript", "call_analysis.agent_name" or "metadata.bot_name".
func (p extractionPolicy) Find(call provider.RawCall) (value any, path string, ok bool) {
	for _, rule := range p {
		if value, path, ok = rule.apply(call); ok {
			return value, path, true
		}
	}
	return nil, "", false
}

func (r extractRule) apply(call provider.RawCall) (any, string, bool) {
	switch r.Scope {
	case scopeRoot:
		return r.search(call, "")
	case scopeNested:
		for _, name := range sortedKeys(call) {
			obj, ok := call[name].(map[string]any)
			if !ok {
				continue
			}
			if v, path, ok := r.search(obj, name+"."); ok {
				return v, path, true
			}
		}
		return nil, "", false
	default:
		obj, ok := call[r.Scope].(map[string]any)
		if !ok {
			return nil, "", false
		}
		return r.search(obj, r.Scope+".")
	}
}

func (r extractRule) search(obj map[string]any, prefix string) (any, string, bool) {
	for _, key := range r.Keys {
		if v, ok := obj[key]; ok && r.Predicate(v) {
			return v, prefix + key, true
		}
	}
	return nil, "", false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
