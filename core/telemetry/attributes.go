package telemetry

import "go.opentelemetry.io/otel/attribute"

// Step names the demonstration step a span belongs to.
func Step(name string) attribute.KeyValue {
	return attribute.String("step", name)
}

// HandleKind is the kind of handle invoked in a span: getter, setter, virtual, static or constructor.
func HandleKind(kind string) attribute.KeyValue {
	return attribute.String("handle_kind", kind)
}

// HandleAccess is the access level the handle was resolved at.
func HandleAccess(access string) attribute.KeyValue {
	return attribute.String("handle_access", access)
}

// RunID identifies one run of the demonstration.
func RunID(id string) attribute.KeyValue {
	return attribute.String("run_id", id)
}
