package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. Payloads published in-process are
// already typed; anything else (a map from a JSON source) is re-encoded into T.
func DecodePayload[T any](payload interface{}) (T, error) {
	if typed, ok := payload.(T); ok {
		return typed, nil
	}

	var out T
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%s into %T: %w", ErrMsgDecodePayload, out, err)
	}
	return out, nil
}
