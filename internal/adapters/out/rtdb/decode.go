// internal/adapters/out/rtdb/decode.go
package rtdb

import (
	"encoding/json"
	"sort"
)

// childDecoder turns one stored child into a record. ok=false skips the
// child: per-record decode failures are never fatal for a collection.
type childDecoder[T any] func(key string, raw json.RawMessage) (T, bool)

// decodeRecord decodes raw into T and substitutes the collection key into
// the record id (stored records may omit their own id).
func decodeRecord[T any](key string, raw json.RawMessage, setID func(*T, string)) (T, bool) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, false
	}
	setID(&v, key)
	return v, true
}

// decodeChildren decodes a keyed collection snapshot in key order, so a
// snapshot has a deterministic baseline ordering before any sort applies.
func decodeChildren[T any](raw map[string]json.RawMessage, decode childDecoder[T]) []T {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]T, 0, len(raw))
	for _, k := range keys {
		if v, ok := decode(k, raw[k]); ok {
			out = append(out, v)
		}
	}
	return out
}
