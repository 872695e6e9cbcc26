package cloudevents

import (
	"encoding/base64"
	"encoding/json"

	"github.com/friendsofgo/errors"
)

type dataKind int

const (
	dataEmpty dataKind = iota
	dataText
	dataStructured
	dataBinary
)

// Data is an event payload. It holds exactly one of four representations:
// empty, text, a structured JSON value, or binary. Representations never
// convert into each other implicitly; a text payload "5" is distinct from a
// structured payload holding the number 5.
//
// The zero value is the empty payload.
type Data struct {
	kind  dataKind
	text  string
	value any
	bytes []byte
}

// DataFromString returns a text payload. On the wire it serializes as a
// JSON string containing s verbatim.
func DataFromString(s string) Data {
	return Data{kind: dataText, text: s}
}

// DataFromJSON returns a structured payload holding v. The value is
// normalized through the JSON model, so any serializable Go value is
// accepted and equal payloads compare equal regardless of how they were
// constructed. Values that cannot be represented as JSON are rejected here,
// which keeps encoding of a built event infallible.
func DataFromJSON(v any) (Data, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Data{}, errors.Wrap(err, "cloudevents: data is not representable as JSON")
	}
	var norm any
	if err := json.Unmarshal(raw, &norm); err != nil {
		return Data{}, errors.Wrap(err, "cloudevents: data is not representable as JSON")
	}
	return Data{kind: dataStructured, value: norm}, nil
}

// DataFromBytes returns a binary payload. On the wire it serializes as a
// base64 (standard encoding) JSON string. The JSON format cannot tell a
// base64 string apart from text, so decoding always yields a text payload;
// it is up to the consumer to know when to base64-decode.
func DataFromBytes(b []byte) Data {
	buf := make([]byte, len(b))
	copy(buf, b)
	return Data{kind: dataBinary, bytes: buf}
}

// IsEmpty reports whether d is the empty payload.
func (d Data) IsEmpty() bool {
	return d.kind == dataEmpty
}

// Text returns the text content and whether d is a text payload.
func (d Data) Text() (string, bool) {
	return d.text, d.kind == dataText
}

// JSON returns the structured value and whether d is a structured payload.
func (d Data) JSON() (any, bool) {
	return d.value, d.kind == dataStructured
}

// Bytes returns the binary content and whether d is a binary payload.
func (d Data) Bytes() ([]byte, bool) {
	return d.bytes, d.kind == dataBinary
}

// MarshalJSON implements json.Marshaler.
func (d Data) MarshalJSON() ([]byte, error) {
	switch d.kind {
	case dataText:
		return json.Marshal(d.text)
	case dataStructured:
		return json.Marshal(d.value)
	case dataBinary:
		return json.Marshal(base64.StdEncoding.EncodeToString(d.bytes))
	}
	return []byte("null"), nil
}

// decodeData maps a raw data attribute onto a payload: JSON strings become
// text, null or a missing attribute becomes empty, everything else becomes
// a structured value.
func decodeData(raw json.RawMessage) (Data, error) {
	if len(raw) == 0 {
		return Data{}, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return Data{}, &InvalidFieldError{Field: "data", Reason: err.Error()}
	}
	switch t := v.(type) {
	case nil:
		return Data{}, nil
	case string:
		return DataFromString(t), nil
	default:
		return Data{kind: dataStructured, value: v}, nil
	}
}

// Extensions holds extension attributes: free-form metadata keyed by
// attribute name. Unknown JSON keys encountered while decoding are
// preserved here so that re-encoding is lossless.
type Extensions map[string]any

func (ext Extensions) clone() Extensions {
	if ext == nil {
		return nil
	}
	out := make(Extensions, len(ext))
	for k, v := range ext {
		out[k] = v
	}
	return out
}
