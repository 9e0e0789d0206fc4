package mailersend

import (
	"encoding/json"
	"regexp"
	"strings"
)

const redactedPlaceholder = "[REDACTED]"

// sensitiveFieldParts is the denylist of field-name substrings whose
// values must never reach a log sink.
var sensitiveFieldParts = []string{
	"api_key",
	"apikey",
	"token",
	"secret",
	"password",
	"authorization",
	"bearer",
}

var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._~+/=-]+`)

func isSensitiveField(name string) bool {
	lower := strings.ToLower(name)
	for _, part := range sensitiveFieldParts {
		if strings.Contains(lower, part) {
			return true
		}
	}

	return false
}

// redactString masks bearer-token patterns in free text.
func redactString(s string) string {
	return bearerPattern.ReplaceAllString(s, "Bearer "+redactedPlaceholder)
}

// redactValue walks decoded JSON and masks values under sensitive keys.
func redactValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if isSensitiveField(k) {
				out[k] = redactedPlaceholder
			} else {
				out[k] = redactValue(val)
			}
		}

		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = redactValue(val)
		}

		return out
	case string:
		return redactString(t)
	default:
		return v
	}
}

func redactQuery(params map[string]string) map[string]string {
	if len(params) == 0 {
		return nil
	}

	out := make(map[string]string, len(params))
	for k, v := range params {
		if isSensitiveField(k) {
			out[k] = redactedPlaceholder
		} else {
			out[k] = redactString(v)
		}
	}

	return out
}

// redactBody normalizes an arbitrary request body through JSON before
// masking, so struct bodies are covered as well as maps.
func redactBody(body any) any {
	if body == nil {
		return nil
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return redactedPlaceholder
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return redactedPlaceholder
	}

	return redactValue(decoded)
}
