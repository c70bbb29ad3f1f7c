package action

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decodeArgs unmarshals the model's JSON arguments. An empty payload decodes to the zero value.
func decodeArgs(arguments string, v any) error {
	arguments = strings.TrimSpace(arguments)
	if arguments == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(arguments), v); err != nil {
		return fmt.Errorf("invalid input format: %w", err)
	}
	return nil
}

func indexProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Index of the element as listed by page_state.",
	}
}
