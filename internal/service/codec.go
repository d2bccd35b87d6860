package service

import (
	"bytes"
	"encoding/json"
)

// jsonCodec lets Connect handlers exchange the plain request and response
// structs of this package. It registers under "json", replacing Connect's
// default JSON codec, which only accepts protobuf messages.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal rejects unknown fields so a misspelled key fails loudly instead of
// silently computing with a zero year. An empty body is an empty message.
func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
