package verification

import (
	"fmt"
	"time"

	dErrors "loadguard/pkg/domain-errors"
)

// checkCredit applies the credit score rule chain. The score is range-validated
// upstream; this check only positions it against the configured thresholds.
// Rule priority (fail-fast):
//  1. Below minimum - hard reject, broker is not creditworthy
//  2. Above maximum - warn, a score hugging the ceiling reads as fabricated
//  3. Otherwise pass
func checkCredit(score int, cfg Config) CheckOutcome {
	if score < cfg.CreditMinScore {
		out := Reject(CheckCredit, fmt.Sprintf("credit score %d below minimum %d", score, cfg.CreditMinScore))
		out.Evidence = map[string]any{"score": score}
		return out
	}
	if score > cfg.CreditMaxScore {
		out := Warn(CheckCredit, fmt.Sprintf("suspiciously high credit score %d (max expected %d)", score, cfg.CreditMaxScore))
		out.Evidence = map[string]any{"score": score}
		return out
	}
	out := Pass(CheckCredit, "in_range")
	out.Evidence = map[string]any{"score": score}
	return out
}

// checkFreshness positions the load age against the staleness thresholds.
// Negative ages (clock skew, future postings) are not special-cased; they
// simply never exceed a threshold. The computed age is always attached as
// evidence regardless of disposition.
//
// Errors: returns CodeInvalidInput when postedAt cannot be parsed; the engine
// boundary converts that into a NEEDS_REVIEW system fault.
func checkFreshness(postedAt string, now time.Time, cfg Config) (CheckOutcome, error) {
	posted, err := time.Parse(time.RFC3339, postedAt)
	if err != nil {
		return CheckOutcome{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "unparseable posted_at timestamp")
	}

	ageMinutes := int64(now.Sub(posted) / time.Minute)
	evidence := map[string]any{"age_minutes": ageMinutes}

	switch {
	case ageMinutes > int64(cfg.FreshnessRejectMinutes):
		out := Reject(CheckFreshness, fmt.Sprintf("load posted %d minutes ago, too old and likely unavailable", ageMinutes))
		out.Evidence = evidence
		return out, nil
	case ageMinutes > int64(cfg.FreshnessWarnMinutes):
		out := Warn(CheckFreshness, fmt.Sprintf("load posted %d minutes ago, may be stale", ageMinutes))
		out.Evidence = evidence
		return out, nil
	default:
		out := Pass(CheckFreshness, "fresh")
		out.Evidence = evidence
		return out, nil
	}
}
