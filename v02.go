package cloudevents

import "time"

// EventV02 is an event according to specification version 0.2. The Event
// union is the type external code should hold; EventV02 mostly matters when
// constructing events by hand or reaching version-specific attributes.
type EventV02 struct {
	id          string
	source      string
	eventType   string
	time        time.Time
	schemaURL   string
	contentType string
	data        Data
	extensions  Extensions
}

// NewEventV02 builds a 0.2 event from its required attributes. Optional
// attributes start at their defaults (no time, no schema URL, no content
// type, empty payload, no extensions) and are filled in with the With
// methods.
func NewEventV02(id, source, eventType string) (EventV02, error) {
	if err := checkRequired(id, source, eventType); err != nil {
		return EventV02{}, err
	}
	return EventV02{id: id, source: source, eventType: eventType}, nil
}

// ID returns the event id.
func (e EventV02) ID() string { return e.id }

// Source returns the event source.
func (e EventV02) Source() string { return e.source }

// Type returns the event type.
func (e EventV02) Type() string { return e.eventType }

// Time returns the event timestamp; the zero time means unset.
func (e EventV02) Time() time.Time { return e.time }

// SchemaURL returns the schemaurl attribute; empty means unset.
func (e EventV02) SchemaURL() string { return e.schemaURL }

// ContentType returns the contenttype attribute; empty means unset.
func (e EventV02) ContentType() string { return e.contentType }

// Data returns the payload.
func (e EventV02) Data() Data { return e.data }

// Extensions returns the extension attributes. The returned map is owned by
// the event and must not be modified.
func (e EventV02) Extensions() Extensions { return e.extensions }

// WithTime returns a copy of the event with the timestamp set.
func (e EventV02) WithTime(t time.Time) EventV02 {
	e.time = t
	return e
}

// WithSchemaURL returns a copy of the event with the schemaurl set.
func (e EventV02) WithSchemaURL(u string) EventV02 {
	e.schemaURL = u
	return e
}

// WithContentType returns a copy of the event with the contenttype set.
func (e EventV02) WithContentType(ct string) EventV02 {
	e.contentType = ct
	return e
}

// WithData returns a copy of the event with the payload set.
func (e EventV02) WithData(d Data) EventV02 {
	e.data = d
	return e
}

// WithExtensions returns a copy of the event with the extension attributes
// replaced. The map is copied, not aliased.
func (e EventV02) WithExtensions(ext Extensions) EventV02 {
	e.extensions = ext.clone()
	return e
}

// WithExtension returns a copy of the event with one extension attribute
// set.
func (e EventV02) WithExtension(name string, value any) EventV02 {
	ext := e.extensions.clone()
	if ext == nil {
		ext = Extensions{}
	}
	ext[name] = value
	e.extensions = ext
	return e
}
