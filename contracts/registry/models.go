package registry

// ContractVersion identifies the schema for carrier evidence shared across modules.
const ContractVersion = "v0.1.0"

// CarrierRecord is the normalized carrier evidence produced by a registry lookup.
// It lives for the duration of a single verification and is never stored.
type CarrierRecord struct {
	RegistryID   string `json:"registry_id"`
	LegalName    string `json:"legal_name"`
	Authorized   bool   `json:"authorized"`
	OutOfService bool   `json:"out_of_service"`
	Operation    string `json:"operation"`
}
