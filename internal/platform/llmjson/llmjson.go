// Package llmjson extracts JSON payloads from chat-model responses, which
// may wrap the JSON in markdown code fences or surrounding prose.
package llmjson

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Extract returns the JSON object embedded in a model response. It strips
// ```json / ``` fences first, then falls back to the outermost brace pair.
func Extract(response string) (string, error) {
	s := strings.TrimSpace(response)

	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	} else if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object in response")
	}
	return s[start : end+1], nil
}

// Unmarshal extracts the JSON object from a model response and decodes it
// into v.
func Unmarshal(response string, v any) error {
	payload, err := Extract(response)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return fmt.Errorf("decode model response: %w", err)
	}
	return nil
}
