package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	registrycontracts "loadguard/contracts/registry"
	"loadguard/internal/registry/tracer"
	"loadguard/internal/verification/ports"
)

// allowedSentinel is the authorization value the registry uses for carriers
// cleared to operate.
const allowedSentinel = "Y"

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client resolves a broker registry identifier to an authorization status via
// the external carrier registry. Exactly one GET per lookup, no retries, no
// caching, no state retained between calls.
//
// Client implements ports.RegistryPort and honors its never-fails contract:
// every failure mode is folded into a bounded Lookup outcome. An unreachable
// registry must not by itself block a load.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient HTTPDoer
	tracer     tracer.Tracer
	logger     *slog.Logger
}

var _ ports.RegistryPort = (*Client)(nil)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(client HTTPDoer) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTracer sets the tracer for lookup spans.
func WithTracer(t tracer.Tracer) ClientOption {
	return func(c *Client) {
		c.tracer = t
	}
}

// WithLogger sets the logger for the client.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a carrier registry client. An empty apiKey is valid and
// puts the client into degraded mode: every lookup returns a skipped outcome
// so the engine stays decision-capable without the integration.
func NewClient(baseURL, apiKey string, timeout time.Duration, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tracer: tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// lookupResponse mirrors the registry wire format: a carrier object nested
// under content. Anything else is treated as carrier-not-found.
type lookupResponse struct {
	Content struct {
		Carrier *carrierPayload `json:"carrier"`
	} `json:"content"`
}

type carrierPayload struct {
	LegalName        string  `json:"legalName"`
	AllowedToOperate string  `json:"allowedToOperate"`
	OutOfServiceDate *string `json:"outOfServiceDate"`
	CarrierOperation struct {
		OperationDesc string `json:"carrierOperationDesc"`
	} `json:"carrierOperation"`
}

// LookupCarrier queries the registry for one carrier identifier and
// normalizes the response (or failure) into a bounded Lookup outcome.
func (c *Client) LookupCarrier(ctx context.Context, registryID string) *ports.Lookup {
	ctx, span := c.tracer.Start(ctx, tracer.SpanCarrierLookup,
		tracer.String(tracer.AttrRegistryID, registryID),
	)
	start := time.Now()
	lookup := c.lookup(ctx, registryID, span)
	span.SetAttributes(
		tracer.String(tracer.AttrLookupStatus, string(lookup.Status)),
		tracer.Duration(tracer.AttrLookupDuration, time.Since(start)),
	)
	span.End(nil)

	if c.logger != nil {
		c.logger.DebugContext(ctx, "carrier registry lookup",
			"registry_id", registryID,
			"status", string(lookup.Status),
			"contract_version", registrycontracts.ContractVersion,
		)
	}
	return lookup
}

func (c *Client) lookup(ctx context.Context, registryID string, span tracer.Span) *ports.Lookup {
	if c.apiKey == "" {
		return &ports.Lookup{
			Status: ports.LookupSkipped,
			Reason: "registry lookup skipped: no API credential configured",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/%s?webKey=%s", c.baseURL, url.PathEscape(registryID), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &ports.Lookup{
			Status: ports.LookupError,
			Reason: fmt.Sprintf("carrier registry lookup failed: %v", err),
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return &ports.Lookup{
				Status: ports.LookupTimeout,
				Reason: "carrier registry unreachable (timeout), authorization unconfirmed",
			}
		}
		return &ports.Lookup{
			Status: ports.LookupError,
			Reason: fmt.Sprintf("carrier registry lookup failed: %v", err),
		}
	}
	defer resp.Body.Close()

	span.SetAttributes(tracer.Attribute{Key: tracer.AttrHTTPStatus, Value: resp.StatusCode})

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return notFound(registryID)
	case resp.StatusCode != http.StatusOK:
		return &ports.Lookup{
			Status: ports.LookupError,
			Reason: fmt.Sprintf("carrier registry returned status %d", resp.StatusCode),
		}
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Content.Carrier == nil {
		// Empty body, malformed JSON, or no carrier at the expected path.
		return notFound(registryID)
	}

	return classify(registryID, body.Content.Carrier)
}

// classify maps a parsed carrier payload onto the outcome taxonomy. The
// carrier record rides along on every found outcome so the engine can attach
// it as evidence.
func classify(registryID string, payload *carrierPayload) *ports.Lookup {
	record := &registrycontracts.CarrierRecord{
		RegistryID:   registryID,
		LegalName:    payload.LegalName,
		Authorized:   payload.AllowedToOperate == allowedSentinel,
		OutOfService: payload.OutOfServiceDate != nil && *payload.OutOfServiceDate != "",
		Operation:    payload.CarrierOperation.OperationDesc,
	}

	switch {
	case !record.Authorized:
		return &ports.Lookup{
			Status:  ports.LookupNotAuthorized,
			Reason:  fmt.Sprintf("carrier %q is not authorized to operate", record.LegalName),
			Carrier: record,
		}
	case record.OutOfService:
		return &ports.Lookup{
			Status:  ports.LookupOutOfService,
			Reason:  fmt.Sprintf("carrier %q has been placed out of service", record.LegalName),
			Carrier: record,
		}
	default:
		return &ports.Lookup{
			Status:  ports.LookupActive,
			Reason:  "",
			Carrier: record,
		}
	}
}

func notFound(registryID string) *ports.Lookup {
	return &ports.Lookup{
		Status: ports.LookupNotFound,
		Reason: fmt.Sprintf("carrier %s not found in registry", registryID),
	}
}

// isTimeout reports whether a transport failure is a connection or deadline
// timeout. Those are possibly transient and therefore warn rather than
// reject; everything else falls through to the generic error outcome.
func isTimeout(ctx context.Context, err error) bool {
	if ctx.Err() == context.DeadlineExceeded {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
