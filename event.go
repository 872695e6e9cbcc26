package cloudevents

import (
	"encoding/json"
	"strings"
	"time"
)

// Specification versions understood by this package, as they appear in the
// specversion attribute.
const (
	SpecVersionV02 = "0.2"
	SpecVersionV10 = "1.0"
)

// Event is an event of either supported specification version. It is the
// type external code passes around: common attributes are readable without
// knowing the version, and marshaling picks the wire format of whichever
// version is held.
//
// Events are immutable once constructed and safe to share across
// goroutines.
type Event struct {
	v02 *EventV02
	v10 *EventV10
}

// FromV02 wraps a 0.2 event.
func FromV02(e EventV02) Event { return Event{v02: &e} }

// FromV10 wraps a 1.0 event.
func FromV10(e EventV10) Event { return Event{v10: &e} }

// SpecVersion returns the specification version string of the held event,
// or "" for the zero Event.
func (e Event) SpecVersion() string {
	switch {
	case e.v02 != nil:
		return SpecVersionV02
	case e.v10 != nil:
		return SpecVersionV10
	}
	return ""
}

// AsV02 returns the 0.2 event when one is held.
func (e Event) AsV02() (EventV02, bool) {
	if e.v02 == nil {
		return EventV02{}, false
	}
	return *e.v02, true
}

// AsV10 returns the 1.0 event when one is held.
func (e Event) AsV10() (EventV10, bool) {
	if e.v10 == nil {
		return EventV10{}, false
	}
	return *e.v10, true
}

// ID returns the event id.
func (e Event) ID() string {
	switch {
	case e.v02 != nil:
		return e.v02.ID()
	case e.v10 != nil:
		return e.v10.ID()
	}
	return ""
}

// Source returns the event source.
func (e Event) Source() string {
	switch {
	case e.v02 != nil:
		return e.v02.Source()
	case e.v10 != nil:
		return e.v10.Source()
	}
	return ""
}

// Type returns the event type.
func (e Event) Type() string {
	switch {
	case e.v02 != nil:
		return e.v02.Type()
	case e.v10 != nil:
		return e.v10.Type()
	}
	return ""
}

// Time returns the event timestamp; the zero time means unset.
func (e Event) Time() time.Time {
	switch {
	case e.v02 != nil:
		return e.v02.Time()
	case e.v10 != nil:
		return e.v10.Time()
	}
	return time.Time{}
}

// ContentType returns the payload content type: the contenttype attribute
// for 0.2 events, datacontenttype for 1.0. Empty means unset.
func (e Event) ContentType() string {
	switch {
	case e.v02 != nil:
		return e.v02.ContentType()
	case e.v10 != nil:
		return e.v10.DataContentType()
	}
	return ""
}

// Data returns the payload.
func (e Event) Data() Data {
	switch {
	case e.v02 != nil:
		return e.v02.Data()
	case e.v10 != nil:
		return e.v10.Data()
	}
	return Data{}
}

// Extensions returns the extension attributes. The returned map is owned by
// the event and must not be modified.
func (e Event) Extensions() Extensions {
	switch {
	case e.v02 != nil:
		return e.v02.Extensions()
	case e.v10 != nil:
		return e.v10.Extensions()
	}
	return nil
}

// ValidateData is a strict consistency check between the payload and the
// content type: if the content type implies JSON and the payload is text
// that does not parse as JSON, a *MalformedPayloadError is returned.
// Decoding stays lenient so that every encoded event decodes back; callers
// that want the stricter contract run this check themselves.
func (e Event) ValidateData() error {
	ct := e.ContentType()
	if !isJSONContentType(ct) {
		return nil
	}
	if s, ok := e.Data().Text(); ok && !json.Valid([]byte(s)) {
		return &MalformedPayloadError{ContentType: ct, Reason: "text payload is not valid JSON"}
	}
	return nil
}

// isJSONContentType matches application/json and any +json structured
// syntax suffix, ignoring media type parameters.
func isJSONContentType(ct string) bool {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	ct = strings.ToLower(strings.TrimSpace(ct))
	return ct == "application/json" || strings.HasSuffix(ct, "+json")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
