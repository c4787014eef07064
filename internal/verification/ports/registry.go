package ports

import (
	"context"

	registrycontracts "loadguard/contracts/registry"
)

// LookupStatus is the bounded set of registry lookup outcomes. Every failure
// mode of the integration maps onto one of these; the engine never sees a raw
// transport error.
type LookupStatus string

const (
	// LookupActive: carrier found, authorized, not out of service.
	LookupActive LookupStatus = "active"
	// LookupNotAuthorized: carrier found but not authorized to operate.
	LookupNotAuthorized LookupStatus = "not_authorized"
	// LookupOutOfService: carrier found but placed out of service.
	LookupOutOfService LookupStatus = "out_of_service"
	// LookupNotFound: registry answered but no carrier record exists.
	LookupNotFound LookupStatus = "not_found"
	// LookupSkipped: no credential configured; integration degraded.
	LookupSkipped LookupStatus = "skipped"
	// LookupTimeout: connection or deadline failure; possibly transient.
	LookupTimeout LookupStatus = "timeout"
	// LookupError: any other upstream or client failure.
	LookupError LookupStatus = "error"
)

// Lookup is the normalized result of one registry query. Carrier is set only
// when the registry returned a record (active, not_authorized, out_of_service).
type Lookup struct {
	Status  LookupStatus
	Reason  string
	Carrier *registrycontracts.CarrierRecord
}

// RegistryPort defines the interface for carrier registry lookups. It lets
// the verification engine consume authorization evidence without depending on
// the HTTP client implementation.
//
// Implementations must honor the never-fails contract: an unreachable or
// misbehaving registry is itself a Lookup outcome, not an error.
type RegistryPort interface {
	LookupCarrier(ctx context.Context, registryID string) *Lookup
}
