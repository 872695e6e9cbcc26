package cloudevents

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBuilderV10(t *testing.T) {
	event, err := NewBuilderV10().
		ID("id").
		Source("http://www.google.com").
		Type("test type").
		DataContentType("application/json").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if event.SpecVersion() != SpecVersionV10 {
		t.Fatalf("expected specversion 1.0, got %s", event.SpecVersion())
	}
	if event.ID() != "id" || event.Source() != "http://www.google.com" || event.Type() != "test type" {
		t.Fatalf("unexpected required attributes: %s %s %s", event.ID(), event.Source(), event.Type())
	}
	if event.ContentType() != "application/json" {
		t.Fatalf("unexpected content type %q", event.ContentType())
	}
	if !event.Data().IsEmpty() {
		t.Fatalf("expected empty payload")
	}

	v10, ok := event.AsV10()
	if !ok {
		t.Fatalf("expected a 1.0 event")
	}
	if v10.Subject() != "" || v10.DataSchema() != "" || !v10.Time().IsZero() {
		t.Fatalf("optional attributes should default to unset")
	}
	if v10.Extensions() != nil {
		t.Fatalf("expected no extensions, got %v", v10.Extensions())
	}
}

func TestBuilderV02(t *testing.T) {
	event, err := NewBuilderV02().
		ID("id").
		Source("http://www.google.com").
		Type("test type").
		ContentType("application/json").
		Data(DataFromString("test")).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if event.SpecVersion() != SpecVersionV02 {
		t.Fatalf("expected specversion 0.2, got %s", event.SpecVersion())
	}
	v02, ok := event.AsV02()
	if !ok {
		t.Fatalf("expected a 0.2 event")
	}
	if v02.ContentType() != "application/json" || v02.SchemaURL() != "" {
		t.Fatalf("unexpected optional attributes")
	}
	if s, ok := v02.Data().Text(); !ok || s != "test" {
		t.Fatalf("unexpected payload %v", v02.Data())
	}
}

func TestDefaultBuilderTargetsCurrentVersion(t *testing.T) {
	event, err := NewBuilder().
		ID("id").
		Source("/source").
		Type("test type").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if event.SpecVersion() != SpecVersionV10 {
		t.Fatalf("default builder must target 1.0, got %s", event.SpecVersion())
	}
}

func TestBuildValidationOrder(t *testing.T) {
	// The first missing attribute in the order id, source, type is the one
	// reported, and a failed build leaves the builder reusable.
	b := NewBuilder()

	assertMissing := func(field string) {
		t.Helper()
		_, err := b.Build()
		var missing *MissingFieldError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingFieldError, got %v", err)
		}
		if missing.Field != field {
			t.Fatalf("expected %s to be reported, got %s", field, missing.Field)
		}
	}

	assertMissing("id")
	b.ID("id")
	assertMissing("source")
	b.Source("/source")
	assertMissing("type")
	b.Type("test type")

	if _, err := b.Build(); err != nil {
		t.Fatalf("build after supplying all attributes: %v", err)
	}
}

func TestBlankSourceEqualsAbsentSource(t *testing.T) {
	_, errBlank := NewBuilder().ID("id").Source("   ").Type("test type").Build()
	_, errAbsent := NewBuilder().ID("id").Type("test type").Build()

	var blank, absent *MissingFieldError
	if !errors.As(errBlank, &blank) || !errors.As(errAbsent, &absent) {
		t.Fatalf("expected MissingFieldError for both, got %v and %v", errBlank, errAbsent)
	}
	if blank.Field != "source" || absent.Field != "source" {
		t.Fatalf("expected source reported for both, got %s and %s", blank.Field, absent.Field)
	}
}

func TestSourceFormats(t *testing.T) {
	sources := []string{
		"/cloudevents/spec/pull/123",
		"urn:event:from:myapi/resourse/123",
		"mailto:cncf-wg-serverless@lists.cncf.io",
	}
	for _, source := range sources {
		event, err := NewBuilder().ID("id").Source(source).Type("test type").Build()
		if err != nil {
			t.Fatalf("source %q rejected: %v", source, err)
		}
		if event.Source() != source {
			t.Fatalf("source %q not preserved, got %q", source, event.Source())
		}
	}
}

func TestNewIDGeneratesUUIDs(t *testing.T) {
	first, err := NewBuilder().NewID().Source("/source").Type("test type").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	second, err := NewBuilderV02().NewID().Source("/source").Type("test type").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if _, err := uuid.Parse(first.ID()); err != nil {
		t.Fatalf("generated id %q is not a UUID: %v", first.ID(), err)
	}
	if _, err := uuid.Parse(second.ID()); err != nil {
		t.Fatalf("generated id %q is not a UUID: %v", second.ID(), err)
	}
	if first.ID() == second.ID() {
		t.Fatalf("generated ids must differ")
	}
}

func TestBuilderExtensions(t *testing.T) {
	event, err := NewBuilder().
		ID("id").
		Source("/source").
		Type("test type").
		Extension("customkey", "v").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := event.Extensions()["customkey"]; got != "v" {
		t.Fatalf("expected extension customkey=v, got %v", got)
	}
}

func TestBuilderTime(t *testing.T) {
	at := time.Date(2018, 4, 5, 17, 31, 0, 0, time.UTC)
	event, err := NewBuilder().ID("id").Source("/source").Type("test type").Time(at).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !event.Time().Equal(at) {
		t.Fatalf("expected time %v, got %v", at, event.Time())
	}
}
