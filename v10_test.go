package cloudevents

import (
	"errors"
	"testing"
	"time"
)

func TestNewEventV10Defaults(t *testing.T) {
	e, err := NewEventV10("id", "http://www.google.com", "test type")
	if err != nil {
		t.Fatalf("NewEventV10: %v", err)
	}
	if e.ID() != "id" || e.Source() != "http://www.google.com" || e.Type() != "test type" {
		t.Fatalf("required attributes not set")
	}
	if !e.Time().IsZero() || e.Subject() != "" || e.DataSchema() != "" || e.DataContentType() != "" {
		t.Fatalf("optional attributes should default to unset")
	}
	if !e.Data().IsEmpty() {
		t.Fatalf("payload should default to empty")
	}
	if e.Extensions() != nil {
		t.Fatalf("extensions should default to nil")
	}
}

func TestNewEventV10RejectsBlankRequired(t *testing.T) {
	_, err := NewEventV10("id", "   ", "test type")
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "source" {
		t.Fatalf("expected source reported, got %s", missing.Field)
	}
}

func TestEventV10UpdatesDoNotMutate(t *testing.T) {
	base, err := NewEventV10("id", "/source", "test type")
	if err != nil {
		t.Fatalf("NewEventV10: %v", err)
	}

	at := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	structured, err := DataFromJSON(map[string]any{"hello": "world"})
	if err != nil {
		t.Fatalf("DataFromJSON: %v", err)
	}
	updated := base.
		WithTime(at).
		WithSubject("orders/123").
		WithDataSchema("http://schema.example.com/v1").
		WithDataContentType("application/json").
		WithData(structured).
		WithExtension("customkey", "v")

	if !base.Time().IsZero() || base.Subject() != "" || base.Extensions() != nil {
		t.Fatalf("base event was mutated by updates")
	}
	if updated.Subject() != "orders/123" || updated.DataSchema() != "http://schema.example.com/v1" {
		t.Fatalf("updates not applied")
	}
	if v, ok := updated.Data().JSON(); !ok || v.(map[string]any)["hello"] != "world" {
		t.Fatalf("payload not applied: %v", updated.Data())
	}
}
