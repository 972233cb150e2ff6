// Package storage provides the key-value persistence boundary: one JSON
// document per key, with a file backend, a Postgres backend and an
// in-memory backend for tests.
package storage

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Adapter persists one JSON document per key. It is the only component
// touching durable storage and is stateless per call.
type Adapter interface {
	// Load decodes the document stored under key into v. It reports
	// whether a stored document was found and decoded; when the document
	// is absent or corrupt v is left untouched (the caller pre-fills it
	// with the default), and Load never panics or propagates the cause.
	Load(key string, v any) bool

	// Save serializes v as JSON and writes it under key. Failures are
	// logged and swallowed: a failed save must never disturb the caller
	// or the in-memory session state.
	Save(key string, v any)
}

// decodeDocument unmarshals data into v all-or-nothing. encoding/json
// fills every field it can decode before reporting a type error, so
// unmarshaling straight into the caller's pre-filled default would leave
// a hybrid of stored fragments and defaults behind on a corrupt document.
// Decoding into a fresh value and assigning only on success keeps the
// default intact.
func decodeDocument(data []byte, v any) error {
	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("destination must be a non-nil pointer")
	}
	fresh := reflect.New(target.Type().Elem())
	if err := json.Unmarshal(data, fresh.Interface()); err != nil {
		return err
	}
	target.Elem().Set(fresh.Elem())
	return nil
}
