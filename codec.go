package cloudevents

import (
	"encoding/json"
	"time"

	"github.com/friendsofgo/errors"
)

// Attribute names understood by each format. Anything outside the table is
// treated as an extension attribute on decode.
var (
	v02Keys = map[string]struct{}{
		"specversion": {}, "id": {}, "source": {}, "type": {}, "time": {},
		"schemaurl": {}, "contenttype": {}, "data": {}, "extensions": {},
	}
	v10Keys = map[string]struct{}{
		"specversion": {}, "id": {}, "source": {}, "type": {}, "time": {},
		"subject": {}, "dataschema": {}, "datacontenttype": {}, "data": {},
	}
)

// MarshalJSON implements json.Marshaler, emitting the JSON format of the
// held event's specification version.
func (e Event) MarshalJSON() ([]byte, error) {
	switch {
	case e.v02 != nil:
		return e.v02.MarshalJSON()
	case e.v10 != nil:
		return e.v10.MarshalJSON()
	}
	return nil, errors.New("cloudevents: cannot encode a zero Event")
}

// UnmarshalJSON implements json.Unmarshaler. It reads the specversion
// attribute first and only then commits to one version's schema, so
// attributes of one version never leak into an event of the other.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "cloudevents: decode")
	}
	svRaw, ok := raw["specversion"]
	if !ok {
		return &UnknownVersionError{}
	}
	var sv string
	if err := json.Unmarshal(svRaw, &sv); err != nil {
		return &UnknownVersionError{Version: string(svRaw)}
	}
	switch sv {
	case SpecVersionV02:
		ev, err := decodeV02(raw)
		if err != nil {
			return err
		}
		*e = FromV02(ev)
	case SpecVersionV10:
		ev, err := decodeV10(raw)
		if err != nil {
			return err
		}
		*e = FromV10(ev)
	default:
		return &UnknownVersionError{Version: sv}
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Absent optional attributes are
// omitted rather than emitted as null; extensions serialize nested under
// the extensions attribute, as the 0.2 JSON format specifies.
func (e EventV02) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"specversion": SpecVersionV02,
		"id":          e.id,
		"source":      e.source,
		"type":        e.eventType,
	}
	if !e.time.IsZero() {
		m["time"] = e.time.Format(time.RFC3339Nano)
	}
	if e.schemaURL != "" {
		m["schemaurl"] = e.schemaURL
	}
	if e.contentType != "" {
		m["contenttype"] = e.contentType
	}
	if !e.data.IsEmpty() {
		m["data"] = e.data
	}
	if len(e.extensions) > 0 {
		m["extensions"] = e.extensions
	}
	return json.Marshal(m)
}

// UnmarshalJSON implements json.Unmarshaler, rejecting documents of any
// other specification version.
func (e *EventV02) UnmarshalJSON(data []byte) error {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return err
	}
	v, ok := ev.AsV02()
	if !ok {
		return &UnknownVersionError{Version: ev.SpecVersion()}
	}
	*e = v
	return nil
}

// MarshalJSON implements json.Marshaler. Absent optional attributes are
// omitted; extensions are flattened into the top-level object, as the 1.0
// JSON format specifies. Specification attributes win over an extension of
// the same name.
func (e EventV10) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(e.extensions)+9)
	for k, v := range e.extensions {
		m[k] = v
	}
	m["specversion"] = SpecVersionV10
	m["id"] = e.id
	m["source"] = e.source
	m["type"] = e.eventType
	if !e.time.IsZero() {
		m["time"] = e.time.Format(time.RFC3339Nano)
	}
	if e.subject != "" {
		m["subject"] = e.subject
	}
	if e.dataSchema != "" {
		m["dataschema"] = e.dataSchema
	}
	if e.dataContentType != "" {
		m["datacontenttype"] = e.dataContentType
	}
	if !e.data.IsEmpty() {
		m["data"] = e.data
	}
	return json.Marshal(m)
}

// UnmarshalJSON implements json.Unmarshaler, rejecting documents of any
// other specification version.
func (e *EventV10) UnmarshalJSON(data []byte) error {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return err
	}
	v, ok := ev.AsV10()
	if !ok {
		return &UnknownVersionError{Version: ev.SpecVersion()}
	}
	*e = v
	return nil
}

func decodeV02(raw map[string]json.RawMessage) (EventV02, error) {
	id, err := requiredString(raw, "id")
	if err != nil {
		return EventV02{}, err
	}
	source, err := requiredString(raw, "source")
	if err != nil {
		return EventV02{}, err
	}
	eventType, err := requiredString(raw, "type")
	if err != nil {
		return EventV02{}, err
	}
	if err := checkURIRef("source", source); err != nil {
		return EventV02{}, err
	}

	e := EventV02{id: id, source: source, eventType: eventType}
	if e.time, err = optionalTime(raw, "time"); err != nil {
		return EventV02{}, err
	}
	if e.schemaURL, err = optionalString(raw, "schemaurl"); err != nil {
		return EventV02{}, err
	}
	if e.schemaURL != "" {
		if err := checkURIRef("schemaurl", e.schemaURL); err != nil {
			return EventV02{}, err
		}
	}
	if e.contentType, err = optionalString(raw, "contenttype"); err != nil {
		return EventV02{}, err
	}
	if e.data, err = decodeData(raw["data"]); err != nil {
		return EventV02{}, err
	}

	ext := Extensions{}
	if extRaw, ok := raw["extensions"]; ok {
		if err := json.Unmarshal(extRaw, &ext); err != nil {
			return EventV02{}, &InvalidFieldError{Field: "extensions", Reason: "must be a JSON object"}
		}
	}
	if err := collectExtensions(raw, v02Keys, ext); err != nil {
		return EventV02{}, err
	}
	if len(ext) > 0 {
		e.extensions = ext
	}
	return e, nil
}

func decodeV10(raw map[string]json.RawMessage) (EventV10, error) {
	id, err := requiredString(raw, "id")
	if err != nil {
		return EventV10{}, err
	}
	source, err := requiredString(raw, "source")
	if err != nil {
		return EventV10{}, err
	}
	eventType, err := requiredString(raw, "type")
	if err != nil {
		return EventV10{}, err
	}
	if err := checkURIRef("source", source); err != nil {
		return EventV10{}, err
	}

	e := EventV10{id: id, source: source, eventType: eventType}
	if e.time, err = optionalTime(raw, "time"); err != nil {
		return EventV10{}, err
	}
	if e.subject, err = optionalString(raw, "subject"); err != nil {
		return EventV10{}, err
	}
	if e.dataSchema, err = optionalString(raw, "dataschema"); err != nil {
		return EventV10{}, err
	}
	if e.dataSchema != "" {
		if err := checkURIRef("dataschema", e.dataSchema); err != nil {
			return EventV10{}, err
		}
	}
	if e.dataContentType, err = optionalString(raw, "datacontenttype"); err != nil {
		return EventV10{}, err
	}
	if e.data, err = decodeData(raw["data"]); err != nil {
		return EventV10{}, err
	}

	ext := Extensions{}
	if err := collectExtensions(raw, v10Keys, ext); err != nil {
		return EventV10{}, err
	}
	if len(ext) > 0 {
		e.extensions = ext
	}
	return e, nil
}

// collectExtensions preserves every attribute outside the version's table
// into ext, so unknown keys survive a decode/encode round trip.
func collectExtensions(raw map[string]json.RawMessage, known map[string]struct{}, ext Extensions) error {
	for k, r := range raw {
		if _, ok := known[k]; ok {
			continue
		}
		var v any
		if err := json.Unmarshal(r, &v); err != nil {
			return errors.Wrapf(err, "cloudevents: decode extension %q", k)
		}
		ext[k] = v
	}
	return nil
}

func requiredString(raw map[string]json.RawMessage, key string) (string, error) {
	r, ok := raw[key]
	if !ok {
		return "", &MissingFieldError{Field: key}
	}
	var s string
	if err := json.Unmarshal(r, &s); err != nil {
		return "", &InvalidFieldError{Field: key, Reason: "must be a JSON string"}
	}
	if isBlank(s) {
		return "", &MissingFieldError{Field: key}
	}
	return s, nil
}

func optionalString(raw map[string]json.RawMessage, key string) (string, error) {
	r, ok := raw[key]
	if !ok {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(r, &s); err != nil {
		return "", &InvalidFieldError{Field: key, Reason: "must be a JSON string"}
	}
	return s, nil
}

func optionalTime(raw map[string]json.RawMessage, key string) (time.Time, error) {
	s, err := optionalString(raw, key)
	if err != nil || s == "" {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, &InvalidFieldError{Field: key, Reason: err.Error()}
	}
	return t, nil
}
