package handlers

import "encoding/json"

// decodeParams returns a dispatch.Entry.Decode closure for param type T,
// unknown JSON fields are ignored by encoding/json's default behavior.
func decodeParams[T any](raw json.RawMessage) (interface{}, error) {
	var v T
	if len(raw) == 0 || string(raw) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
