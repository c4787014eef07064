package verification

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// VerifyBatch verifies up to the caller-enforced bound of offers concurrently.
// Each verification is independent and writes to its own slot, so a fault in
// one offer never affects its siblings. Output order matches input order.
func (s *Service) VerifyBatch(ctx context.Context, offers []LoadOffer) []BatchResult {
	if s.metrics != nil {
		s.metrics.ObserveBatchSize(len(offers))
	}

	results := make([]BatchResult, len(offers))

	g, ctx := errgroup.WithContext(ctx)
	for i, offer := range offers {
		g.Go(func() error {
			results[i] = BatchResult{
				OfferID: offer.ID,
				Result:  s.Verify(ctx, offer),
			}
			// Verify never fails; sibling verifications must not be cancelled.
			return nil
		})
	}
	_ = g.Wait()

	return results
}
