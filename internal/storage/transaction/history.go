package transaction

import (
	"encoding/json"
)

// MarshalHistory encodes a history, most recent first.
func MarshalHistory(history []*Transaction) ([]byte, error) {
	return json.Marshal(history)
}

// UnmarshalHistory decodes a history produced by MarshalHistory, keeping its
// order.
func UnmarshalHistory(data []byte) ([]*Transaction, error) {
	var history []*Transaction
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	return history, nil
}
