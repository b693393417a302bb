package callsync

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/callhistory-backend/internal/domain"
	"github.com/heartmarshall/callhistory-backend/internal/provider"
)

// toCallRecord extracts the stored fields from a raw remote call. It reports
// false when the call has no identifier. Text fields are not yet cleaned.
func toCallRecord(raw provider.RawCall) (domain.CallRecord, bool) {
	id := stringValue(raw["call_id"])
	if id == "" {
		return domain.CallRecord{}, false
	}

	phone := stringValue(raw["to_number"])
	if phone == "" {
		phone = stringValue(raw["from_number"])
	}

	status := stringValue(raw["call_status"])
	if status == "" {
		status = string(domain.CallStatusUnknown)
	}

	rec := domain.CallRecord{
		ExternalID:          id,
		ContactName:         domain.DefaultContactName,
		Phone:               phone,
		Status:              domain.ParseCallStatus(status),
		Direction:           domain.ParseCallDirection(stringValue(raw["direction"])),
		CallDate:            epochMillis(raw["start_timestamp"]),
		FromNumber:          stringValue(raw["from_number"]),
		ToNumber:            stringValue(raw["to_number"]),
		DisconnectionReason: stringValue(raw["disconnection_reason"]),
	}
	rec.SetDurationMS(intValue(raw["duration_ms"]))

	if analysis, ok := raw["call_analysis"].(map[string]any); ok {
		rec.Summary = flattenText(analysis["call_summary"])
	}
	if v, _, ok := transcriptPolicy.Find(raw); ok {
		rec.Transcript = flattenText(v)
	}
	if v, _, ok := agentPolicy.Find(raw); ok {
		rec.AgentName = stringValue(v)
	}

	return rec, true
}

// flattenText turns a free-text value into plain text: lists are joined line
// by line, objects become indented JSON.
func flattenText(v any) string {
	switch t := v.(type) {
	case []any:
		lines := make([]string, len(t))
		for i, item := range t {
			lines[i] = stringValue(item)
		}
		return strings.Join(lines, "\n")
	case map[string]any:
		return domain.IndentJSON(t)
	default:
		return stringValue(t)
	}
}

// stringValue renders a decoded JSON value as plain text. Nested values are
// rendered as compact JSON.
func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}

func intValue(v any) int64 {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return int64(f)
		}
	case float64:
		return int64(t)
	case int:
		return int64(t)
	case int64:
		return t
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// epochMillis converts a millisecond epoch timestamp to UTC. Zero or missing
// timestamps yield nil.
func epochMillis(v any) *time.Time {
	ms := intValue(v)
	if ms == 0 {
		return nil
	}
	t := time.UnixMilli(ms).UTC()
	return &t
}

// isPresent reports whether a decoded JSON value carries data: non-empty
// strings, lists and objects, non-zero numbers and true.
func isPresent(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
