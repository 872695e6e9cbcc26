package cloudevents

import "time"

// EventV10 is an event according to specification version 1.0, the current
// version. The Event union is the type external code should hold.
type EventV10 struct {
	id              string
	source          string
	eventType       string
	time            time.Time
	subject         string
	dataSchema      string
	dataContentType string
	data            Data
	extensions      Extensions
}

// NewEventV10 builds a 1.0 event from its required attributes. Optional
// attributes start at their defaults and are filled in with the With
// methods.
func NewEventV10(id, source, eventType string) (EventV10, error) {
	if err := checkRequired(id, source, eventType); err != nil {
		return EventV10{}, err
	}
	return EventV10{id: id, source: source, eventType: eventType}, nil
}

// ID returns the event id.
func (e EventV10) ID() string { return e.id }

// Source returns the event source.
func (e EventV10) Source() string { return e.source }

// Type returns the event type.
func (e EventV10) Type() string { return e.eventType }

// Time returns the event timestamp; the zero time means unset.
func (e EventV10) Time() time.Time { return e.time }

// Subject returns the subject attribute; empty means unset.
func (e EventV10) Subject() string { return e.subject }

// DataSchema returns the dataschema attribute; empty means unset.
func (e EventV10) DataSchema() string { return e.dataSchema }

// DataContentType returns the datacontenttype attribute; empty means unset.
func (e EventV10) DataContentType() string { return e.dataContentType }

// Data returns the payload.
func (e EventV10) Data() Data { return e.data }

// Extensions returns the extension attributes. The returned map is owned by
// the event and must not be modified.
func (e EventV10) Extensions() Extensions { return e.extensions }

// WithTime returns a copy of the event with the timestamp set.
func (e EventV10) WithTime(t time.Time) EventV10 {
	e.time = t
	return e
}

// WithSubject returns a copy of the event with the subject set.
func (e EventV10) WithSubject(s string) EventV10 {
	e.subject = s
	return e
}

// WithDataSchema returns a copy of the event with the dataschema set.
func (e EventV10) WithDataSchema(u string) EventV10 {
	e.dataSchema = u
	return e
}

// WithDataContentType returns a copy of the event with the datacontenttype
// set.
func (e EventV10) WithDataContentType(ct string) EventV10 {
	e.dataContentType = ct
	return e
}

// WithData returns a copy of the event with the payload set.
func (e EventV10) WithData(d Data) EventV10 {
	e.data = d
	return e
}

// WithExtensions returns a copy of the event with the extension attributes
// replaced. The map is copied, not aliased.
func (e EventV10) WithExtensions(ext Extensions) EventV10 {
	e.extensions = ext.clone()
	return e
}

// WithExtension returns a copy of the event with one extension attribute
// set.
func (e EventV10) WithExtension(name string, value any) EventV10 {
	ext := e.extensions.clone()
	if ext == nil {
		ext = Extensions{}
	}
	ext[name] = value
	e.extensions = ext
	return e
}
