// Package cloudevents implements the core CloudEvents event model in
// specification versions 0.2 and 1.0, together with their JSON formats.
//
// An event is assembled through a version-specific builder and wrapped in
// the version-agnostic Event type:
//
//	event, err := cloudevents.NewBuilder().
//		NewID().
//		Source("https://example.com/orders").
//		Type("com.example.order.created").
//		DataContentType("application/json").
//		Build()
//
// NewBuilder targets the current specification version (1.0); NewBuilderV02
// targets 0.2. Marshaling an Event emits the JSON format of its version,
// and unmarshaling inspects the specversion attribute to pick the matching
// schema, so both versions decode through the same entry point:
//
//	var event cloudevents.Event
//	err := json.Unmarshal(payload, &event)
//
// The package only covers the event model and its JSON binding. Transport
// bindings (HTTP, Kafka, batching) are expected to be layered on top.
package cloudevents
