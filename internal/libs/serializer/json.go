// Package serializer provides serialization interfaces and implementations for converting
// Go values to and from byte slices. The report sink uses it to append structured run
// records next to the human readable reports.
//
// The package ships a JSON serializer backed by goccy/go-json, a MessagePack serializer
// and a CBOR serializer, selectable by name through a Registry.
package serializer

import (
	"github.com/goccy/go-json"

	"github.com/hyp3rd/ewrap"
)

// JSONSerializer leverages goccy/go-json to serialize records.
type JSONSerializer struct{}

// Marshal serializes the given value into a byte slice.
func (*JSONSerializer) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to marshal json")
	}

	return data, nil
}

// Unmarshal deserializes the given byte slice into the given value.
func (*JSONSerializer) Unmarshal(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	if err != nil {
		return ewrap.Wrap(err, "failed to unmarshal json")
	}

	return nil
}
