// Package tracer provides a lightweight tracing abstraction for the registry
// client. It keeps the client decoupled from OpenTelemetry APIs while still
// emitting spans for the one network hop a verification makes.
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording any error that occurred.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span and attribute names used by the registry client.
const (
	SpanCarrierLookup = "registry.carrier.lookup"

	AttrRegistryID     = "registry_id"
	AttrLookupStatus   = "lookup.status"
	AttrLookupDuration = "lookup.duration_ms"
	AttrHTTPStatus     = "http.status_code"
)
