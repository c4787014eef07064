package verification

import "time"

// Status enumerates the terminal verification outcomes.
type Status string

const (
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
	StatusNeedsReview Status = "NEEDS_REVIEW"
)

// Disposition classifies a single check result before aggregation.
type Disposition string

const (
	DispositionPass   Disposition = "pass"
	DispositionWarn   Disposition = "warn"
	DispositionReject Disposition = "reject"
)

// Check names, used as metadata keys and in reason strings.
const (
	CheckCredit    = "credit"
	CheckRegistry  = "registry"
	CheckFreshness = "freshness"
)

// LoadOffer is the externally supplied load record under verification. The
// commercial fields are pass-through context only; they never influence the
// decision. PostedAt stays a string so a malformed timestamp that slips past
// boundary validation degrades inside the engine instead of being
// unrepresentable.
type LoadOffer struct {
	ID               string  `json:"id"`
	BrokerName       string  `json:"broker_name"`
	BrokerRegistryID string  `json:"broker_registry_id"`
	CreditScore      int     `json:"credit_score"`
	PostedAt         string  `json:"posted_at"`
	PickupCity       string  `json:"pickup_city,omitempty"`
	DeliveryCity     string  `json:"delivery_city,omitempty"`
	Rate             float64 `json:"rate,omitempty"`
	Equipment        string  `json:"equipment,omitempty"`
}

// CheckOutcome is the tagged result of one check. Evidence specific to the
// check goes into the result metadata under the check name, never into the
// inputs of a later check.
type CheckOutcome struct {
	Check       string
	Disposition Disposition
	Status      string
	Reason      string
	Evidence    map[string]any
}

// Pass builds a passing outcome, optionally carrying a status label.
func Pass(check, status string) CheckOutcome {
	return CheckOutcome{Check: check, Disposition: DispositionPass, Status: status}
}

// Warn builds a warning outcome with a human-readable reason.
func Warn(check, reason string) CheckOutcome {
	return CheckOutcome{Check: check, Disposition: DispositionWarn, Reason: reason}
}

// Reject builds a rejecting outcome with a human-readable reason.
// Rejection terminates evaluation.
func Reject(check, reason string) CheckOutcome {
	return CheckOutcome{Check: check, Disposition: DispositionReject, Reason: reason}
}

// Result is the immutable output of one verification.
//
// Invariants: exactly one status is set; REJECTED carries exactly one reason;
// NEEDS_REVIEW carries at least one; APPROVED carries none.
type Result struct {
	Status     Status         `json:"status"`
	Reasons    []string       `json:"reasons"`
	VerifiedAt time.Time      `json:"verified_at"`
	Metadata   map[string]any `json:"metadata"`
}

// BatchResult pairs one offer with its verification result. Batch output
// preserves input order.
type BatchResult struct {
	OfferID string  `json:"offer_id"`
	Result  *Result `json:"result"`
}

// Config holds the check thresholds. Zero values are replaced with the
// defaults by New, so an empty Config is usable in tests.
type Config struct {
	CreditMinScore         int
	CreditMaxScore         int
	FreshnessWarnMinutes   int
	FreshnessRejectMinutes int
}

// Default thresholds, matching the documented contract.
const (
	DefaultCreditMinScore         = 82
	DefaultCreditMaxScore         = 97
	DefaultFreshnessWarnMinutes   = 30
	DefaultFreshnessRejectMinutes = 60
)

func (c Config) withDefaults() Config {
	if c.CreditMinScore == 0 {
		c.CreditMinScore = DefaultCreditMinScore
	}
	if c.CreditMaxScore == 0 {
		c.CreditMaxScore = DefaultCreditMaxScore
	}
	if c.FreshnessWarnMinutes == 0 {
		c.FreshnessWarnMinutes = DefaultFreshnessWarnMinutes
	}
	if c.FreshnessRejectMinutes == 0 {
		c.FreshnessRejectMinutes = DefaultFreshnessRejectMinutes
	}
	return c
}
