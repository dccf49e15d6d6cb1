package gateway

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CleanJSON strips the markdown code fences models like to wrap JSON in.
func CleanJSON(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```JSON")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	return strings.TrimSpace(clean)
}

// Decode parses the model output into v. Any failure is reported as ErrMalformed
// so callers can branch into their fallback policy.
func Decode(raw string, v any) error {
	clean := CleanJSON(raw)
	if clean == "" {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal([]byte(clean), v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return nil
}
