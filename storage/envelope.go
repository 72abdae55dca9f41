package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSchemaMismatch is returned when a stored blob cannot be decoded into the
// expected shape or version. Callers must treat it as a hard reset signal and
// overwrite the blob with defaults.
var ErrSchemaMismatch = errors.New("storage: blob schema mismatch")

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// EncodeBlob wraps v in a versioned envelope.
func EncodeBlob(version int, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Version: version, Data: data})
}

// DecodeBlob unwraps a versioned envelope into v. A parse failure or a
// version other than the expected one yields ErrSchemaMismatch.
func DecodeBlob(raw []byte, version int, v any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	if env.Version != version {
		return fmt.Errorf("%w: got version %d, want %d", ErrSchemaMismatch, env.Version, version)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	return nil
}
