package esig

import (
	"encoding/json"
	"fmt"
)

// marshalTagged encodes v as a JSON object with the Type discriminator added.
func marshalTagged(typ string, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	obj := map[string]any{}

	err = json.Unmarshal(data, &obj)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", typ, err)
	}

	obj["Type"] = typ

	return json.Marshal(obj)
}

// rawType returns the Type key of a plain object.
func rawType(obj map[string]any) string {
	typ, _ := obj["Type"].(string)

	return typ
}
