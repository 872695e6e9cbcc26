package cloudevents

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// NewBuilder returns a builder targeting the current specification version
// (1.0).
func NewBuilder() *BuilderV10 { return NewBuilderV10() }

// NewBuilderV02 returns a builder targeting specification version 0.2.
func NewBuilderV02() *BuilderV02 { return &BuilderV02{} }

// NewBuilderV10 returns a builder targeting specification version 1.0.
func NewBuilderV10() *BuilderV10 { return &BuilderV10{} }

// BuilderV10 accumulates the attributes of a 1.0 event. Setters chain and
// return the same builder; Build validates and produces the event. A
// builder is not safe for concurrent use.
//
// The version is fixed at construction: attributes the 1.0 format does not
// know (such as 0.2's schemaurl) simply do not exist on this type.
type BuilderV10 struct {
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

// ID sets the event id.
func (b *BuilderV10) ID(id string) *BuilderV10 {
	b.id = id
	return b
}

// NewID sets a freshly generated UUID as the event id.
func (b *BuilderV10) NewID() *BuilderV10 {
	b.id = uuid.NewString()
	return b
}

// Source sets the event source, a URI reference.
func (b *BuilderV10) Source(source string) *BuilderV10 {
	b.source = source
	return b
}

// Type sets the event type.
func (b *BuilderV10) Type(eventType string) *BuilderV10 {
	b.eventType = eventType
	return b
}

// Time sets the event timestamp.
func (b *BuilderV10) Time(t time.Time) *BuilderV10 {
	b.time = t
	return b
}

// Subject sets the subject attribute.
func (b *BuilderV10) Subject(s string) *BuilderV10 {
	b.subject = s
	return b
}

// DataSchema sets the dataschema attribute, a URI.
func (b *BuilderV10) DataSchema(u string) *BuilderV10 {
	b.dataSchema = u
	return b
}

// DataContentType sets the datacontenttype attribute.
func (b *BuilderV10) DataContentType(ct string) *BuilderV10 {
	b.dataContentType = ct
	return b
}

// Data sets the payload.
func (b *BuilderV10) Data(d Data) *BuilderV10 {
	b.data = d
	return b
}

// Extension sets one extension attribute.
func (b *BuilderV10) Extension(name string, value any) *BuilderV10 {
	if b.extensions == nil {
		b.extensions = Extensions{}
	}
	b.extensions[name] = value
	return b
}

// Extensions replaces the extension attributes. The map is copied.
func (b *BuilderV10) Extensions(ext Extensions) *BuilderV10 {
	b.extensions = ext.clone()
	return b
}

// Build validates the accumulated attributes and produces the event.
// Required attributes are checked in a fixed order (id, source, type) and
// the first one missing or blank is reported. On failure the builder is
// left untouched and can be corrected and built again.
func (b *BuilderV10) Build() (Event, error) {
	if err := checkRequired(b.id, b.source, b.eventType); err != nil {
		return Event{}, err
	}
	if err := checkURIRef("source", b.source); err != nil {
		return Event{}, err
	}
	if b.dataSchema != "" {
		if err := checkURIRef("dataschema", b.dataSchema); err != nil {
			return Event{}, err
		}
	}
	return FromV10(EventV10{
		id:              b.id,
		source:          b.source,
		eventType:       b.eventType,
		time:            b.time,
		subject:         b.subject,
		dataSchema:      b.dataSchema,
		dataContentType: b.dataContentType,
		data:            b.data,
		extensions:      b.extensions.clone(),
	}), nil
}

// BuilderV02 accumulates the attributes of a 0.2 event. It mirrors
// BuilderV10 with the 0.2 attribute set: schemaurl and contenttype instead
// of dataschema, datacontenttype and subject.
type BuilderV02 struct {
	id          string
	source      string
	eventType   string
	time        time.Time
	schemaURL   string
	contentType string
	data        Data
	extensions  Extensions
}

// ID sets the event id.
func (b *BuilderV02) ID(id string) *BuilderV02 {
	b.id = id
	return b
}

// NewID sets a freshly generated UUID as the event id.
func (b *BuilderV02) NewID() *BuilderV02 {
	b.id = uuid.NewString()
	return b
}

// Source sets the event source, a URI reference.
func (b *BuilderV02) Source(source string) *BuilderV02 {
	b.source = source
	return b
}

// Type sets the event type.
func (b *BuilderV02) Type(eventType string) *BuilderV02 {
	b.eventType = eventType
	return b
}

// Time sets the event timestamp.
func (b *BuilderV02) Time(t time.Time) *BuilderV02 {
	b.time = t
	return b
}

// SchemaURL sets the schemaurl attribute, a URI.
func (b *BuilderV02) SchemaURL(u string) *BuilderV02 {
	b.schemaURL = u
	return b
}

// ContentType sets the contenttype attribute.
func (b *BuilderV02) ContentType(ct string) *BuilderV02 {
	b.contentType = ct
	return b
}

// Data sets the payload.
func (b *BuilderV02) Data(d Data) *BuilderV02 {
	b.data = d
	return b
}

// Extension sets one extension attribute.
func (b *BuilderV02) Extension(name string, value any) *BuilderV02 {
	if b.extensions == nil {
		b.extensions = Extensions{}
	}
	b.extensions[name] = value
	return b
}

// Extensions replaces the extension attributes. The map is copied.
func (b *BuilderV02) Extensions(ext Extensions) *BuilderV02 {
	b.extensions = ext.clone()
	return b
}

// Build validates the accumulated attributes and produces the event, with
// the same ordering and reuse semantics as BuilderV10.Build.
func (b *BuilderV02) Build() (Event, error) {
	if err := checkRequired(b.id, b.source, b.eventType); err != nil {
		return Event{}, err
	}
	if err := checkURIRef("source", b.source); err != nil {
		return Event{}, err
	}
	if b.schemaURL != "" {
		if err := checkURIRef("schemaurl", b.schemaURL); err != nil {
			return Event{}, err
		}
	}
	return FromV02(EventV02{
		id:          b.id,
		source:      b.source,
		eventType:   b.eventType,
		time:        b.time,
		schemaURL:   b.schemaURL,
		contentType: b.contentType,
		data:        b.data,
		extensions:  b.extensions.clone(),
	}), nil
}

// checkRequired enforces the required attributes in reporting order: id,
// then source, then type. Blank strings count as missing.
func checkRequired(id, source, eventType string) error {
	if isBlank(id) {
		return &MissingFieldError{Field: "id"}
	}
	if isBlank(source) {
		return &MissingFieldError{Field: "source"}
	}
	if isBlank(eventType) {
		return &MissingFieldError{Field: "type"}
	}
	return nil
}

// checkURIRef accepts anything url.Parse accepts, which includes relative
// references, URNs and mailto addresses.
func checkURIRef(field, value string) error {
	if _, err := url.Parse(value); err != nil {
		return &InvalidFieldError{Field: field, Reason: err.Error()}
	}
	return nil
}
