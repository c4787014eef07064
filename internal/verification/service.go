package verification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"loadguard/internal/verification/metrics"
	"loadguard/internal/verification/ports"
)

// Service runs the three verification checks against one load offer and
// aggregates their outcomes. Checks run in fixed order [credit, registry,
// freshness]; a reject short-circuits (the registry call is never made once a
// local check has already failed), warnings accumulate.
//
// The caller-facing contract has no failure path: Verify always resolves to
// one of the three terminal statuses. An internal fault means "insufficient
// information to approve", never an automatic rejection.
type Service struct {
	registry ports.RegistryPort
	cfg      Config
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithMetrics sets the metrics collector for the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger sets the logger for the service.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// New creates a verification service. Panics if the registry port is nil -
// fail fast at startup; degraded registry operation is the port's concern,
// not a wiring option.
func New(registry ports.RegistryPort, cfg Config, opts ...Option) *Service {
	if registry == nil {
		panic("verification.New: registry port is required")
	}

	s := &Service{
		registry: registry,
		cfg:      cfg.withDefaults(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

const reasonSystemError = "verification system error, manual review required"

// Verify evaluates one load offer to a terminal decision. It never returns an
// error and never panics: any fault escaping a check is caught here and
// converted to NEEDS_REVIEW with a system-error reason.
func (s *Service) Verify(ctx context.Context, offer LoadOffer) (result *Result) {
	evalTime := s.now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveVerifyLatency(time.Since(evalTime))
			if result != nil {
				s.metrics.IncrementStatus(string(result.Status))
			}
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			if s.logger != nil {
				s.logger.ErrorContext(ctx, "panic during verification, degrading to review",
					"offer_id", offer.ID,
					"panic", r,
				)
			}
			result = s.systemFaultResult(evalTime, map[string]any{"fault": fmt.Sprint(r)})
		}
	}()

	res, err := s.evaluate(ctx, offer, evalTime)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "verification check failed internally, degrading to review",
				"offer_id", offer.ID,
				"error", err,
			)
		}
		return s.systemFaultResult(evalTime, map[string]any{"fault": err.Error()})
	}
	return res
}

// evaluate is the ordered fold over the checks. Pure aside from the single
// registry suspension point.
func (s *Service) evaluate(ctx context.Context, offer LoadOffer, evalTime time.Time) (*Result, error) {
	agg := newAggregator(evalTime)

	if done := agg.fold(s.observeCheck(checkCredit(offer.CreditScore, s.cfg))); done {
		return agg.result(), nil
	}

	if done := agg.fold(s.observeCheck(s.checkRegistry(ctx, offer.BrokerRegistryID))); done {
		return agg.result(), nil
	}

	freshness, err := checkFreshness(offer.PostedAt, evalTime, s.cfg)
	if err != nil {
		return nil, err
	}
	agg.fold(s.observeCheck(freshness))

	return agg.result(), nil
}

// checkRegistry folds the normalized lookup outcome into a check disposition.
// Reject only on authoritative registry answers (not found, not authorized,
// out of service); unavailability of the registry is degraded evidence, not a
// rejection.
func (s *Service) checkRegistry(ctx context.Context, registryID string) CheckOutcome {
	start := time.Now()
	lookup := s.registry.LookupCarrier(ctx, registryID)
	if lookup == nil {
		lookup = &ports.Lookup{Status: ports.LookupError, Reason: "registry lookup returned no outcome"}
	}
	if s.metrics != nil {
		s.metrics.ObserveLookupLatency(string(lookup.Status), time.Since(start))
	}

	evidence := map[string]any{"status": string(lookup.Status)}
	if lookup.Carrier != nil {
		evidence["legal_name"] = lookup.Carrier.LegalName
		evidence["authorized"] = lookup.Carrier.Authorized
		evidence["out_of_service"] = lookup.Carrier.OutOfService
		evidence["operation"] = lookup.Carrier.Operation
	}

	var out CheckOutcome
	switch lookup.Status {
	case ports.LookupActive:
		out = Pass(CheckRegistry, string(lookup.Status))
	case ports.LookupNotFound, ports.LookupNotAuthorized, ports.LookupOutOfService:
		out = Reject(CheckRegistry, lookup.Reason)
	default:
		// skipped, timeout, error: degraded evidence.
		out = Warn(CheckRegistry, lookup.Reason)
	}
	out.Evidence = evidence
	return out
}

func (s *Service) observeCheck(out CheckOutcome) CheckOutcome {
	if s.metrics != nil {
		s.metrics.IncrementCheck(out.Check, string(out.Disposition))
	}
	return out
}

func (s *Service) systemFaultResult(evalTime time.Time, evidence map[string]any) *Result {
	if s.metrics != nil {
		s.metrics.IncrementSystemFaults()
	}
	return &Result{
		Status:     StatusNeedsReview,
		Reasons:    []string{reasonSystemError},
		VerifiedAt: evalTime,
		Metadata:   map[string]any{"system": evidence},
	}
}

// aggregator is the evaluation state machine: warnings accumulate, the first
// reject terminates, metadata is additive and keyed by check name.
type aggregator struct {
	evalTime time.Time
	warnings []string
	rejected *string
	metadata map[string]any
}

func newAggregator(evalTime time.Time) *aggregator {
	return &aggregator{
		evalTime: evalTime,
		metadata: make(map[string]any),
	}
}

// fold records one outcome and reports whether evaluation is done.
func (a *aggregator) fold(out CheckOutcome) bool {
	if out.Evidence != nil {
		a.metadata[out.Check] = out.Evidence
	}
	switch out.Disposition {
	case DispositionReject:
		reason := out.Reason
		a.rejected = &reason
		return true
	case DispositionWarn:
		a.warnings = append(a.warnings, out.Reason)
	}
	return false
}

func (a *aggregator) result() *Result {
	res := &Result{
		Reasons:    []string{},
		VerifiedAt: a.evalTime,
		Metadata:   a.metadata,
	}
	switch {
	case a.rejected != nil:
		res.Status = StatusRejected
		res.Reasons = []string{*a.rejected}
	case len(a.warnings) > 0:
		res.Status = StatusNeedsReview
		res.Reasons = a.warnings
	default:
		res.Status = StatusApproved
	}
	return res
}
