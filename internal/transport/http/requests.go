package httptransport

import (
	"fmt"
	"time"

	"loadguard/internal/verification"
	dErrors "loadguard/pkg/domain-errors"
)

// maxBatchSize bounds one batch request. The engine itself has no batch
// limit; the bound belongs to the caller-facing boundary.
const maxBatchSize = 50

// BatchVerifyRequest is the payload for POST /verify/batch.
type BatchVerifyRequest struct {
	Offers []verification.LoadOffer `json:"offers"`
}

// validateOffer performs the boundary validation the engine is allowed to
// assume: required fields, numeric range, timestamp parseability. The engine
// itself degrades rather than crashes on bad input, but malformed requests
// should be refused before any check runs.
func validateOffer(offer verification.LoadOffer) error {
	if offer.ID == "" {
		return dErrors.New(dErrors.CodeValidation, "id is required")
	}
	if offer.BrokerName == "" {
		return dErrors.New(dErrors.CodeValidation, "broker_name is required")
	}
	if offer.BrokerRegistryID == "" {
		return dErrors.New(dErrors.CodeValidation, "broker_registry_id is required")
	}
	if offer.CreditScore < 0 || offer.CreditScore > 100 {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("credit_score %d outside range 0-100", offer.CreditScore))
	}
	if offer.PostedAt == "" {
		return dErrors.New(dErrors.CodeValidation, "posted_at is required")
	}
	if _, err := time.Parse(time.RFC3339, offer.PostedAt); err != nil {
		return dErrors.Wrap(err, dErrors.CodeValidation, "posted_at must be an RFC 3339 timestamp")
	}
	return nil
}

// Validate checks the batch envelope and every offer in it.
func (r BatchVerifyRequest) Validate() error {
	if len(r.Offers) == 0 {
		return dErrors.New(dErrors.CodeValidation, "offers must not be empty")
	}
	if len(r.Offers) > maxBatchSize {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("batch size %d exceeds maximum %d", len(r.Offers), maxBatchSize))
	}
	for i, offer := range r.Offers {
		if err := validateOffer(offer); err != nil {
			return dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("offer %d", i))
		}
	}
	return nil
}
