package cloudevents

import "fmt"

// MissingFieldError reports a required attribute that was absent or blank.
// It is returned both by builder validation and by decoding.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("cloudevents: %s is required", e.Field)
}

// UnknownVersionError reports a specversion attribute that was absent or
// did not match any supported specification version. Version is empty when
// the attribute was missing entirely.
type UnknownVersionError struct {
	Version string
}

func (e *UnknownVersionError) Error() string {
	if e.Version == "" {
		return "cloudevents: specversion is missing"
	}
	return fmt.Sprintf("cloudevents: unknown specversion %q", e.Version)
}

// InvalidFieldError reports an attribute whose value is present but
// malformed: a non-string value for a string attribute, a timestamp that is
// not RFC 3339, or an unparseable URI reference.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("cloudevents: invalid %s: %s", e.Field, e.Reason)
}

// MalformedPayloadError reports a data payload whose shape contradicts the
// event's content type. It is only produced by the opt-in strict check on
// Event.ValidateData.
type MalformedPayloadError struct {
	ContentType string
	Reason      string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("cloudevents: malformed %s payload: %s", e.ContentType, e.Reason)
}
