package verification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "loadguard/pkg/domain-errors"
)

// CreditCheckSuite tests the credit score rule chain. Pure function with the
// threshold boundaries that drive reject/warn behavior.
type CreditCheckSuite struct {
	suite.Suite
	cfg Config
}

func TestCreditCheckSuite(t *testing.T) {
	suite.Run(t, new(CreditCheckSuite))
}

func (s *CreditCheckSuite) SetupTest() {
	s.cfg = Config{}.withDefaults()
}

func (s *CreditCheckSuite) TestBoundaries() {
	s.Run("score below minimum rejects", func() {
		out := checkCredit(81, s.cfg)
		s.Equal(DispositionReject, out.Disposition)
		s.Contains(out.Reason, "below minimum")
	})

	s.Run("score at minimum passes", func() {
		out := checkCredit(82, s.cfg)
		s.Equal(DispositionPass, out.Disposition)
		s.Empty(out.Reason)
	})

	s.Run("score at maximum passes", func() {
		out := checkCredit(97, s.cfg)
		s.Equal(DispositionPass, out.Disposition)
	})

	s.Run("score above maximum warns, never rejects", func() {
		out := checkCredit(98, s.cfg)
		s.Equal(DispositionWarn, out.Disposition)
		s.Contains(out.Reason, "suspiciously high")
	})

	s.Run("score of zero rejects", func() {
		out := checkCredit(0, s.cfg)
		s.Equal(DispositionReject, out.Disposition)
	})

	s.Run("ceiling score warns", func() {
		out := checkCredit(100, s.cfg)
		s.Equal(DispositionWarn, out.Disposition)
	})
}

func (s *CreditCheckSuite) TestEvidence() {
	out := checkCredit(85, s.cfg)
	s.Equal(CheckCredit, out.Check)
	s.Equal(85, out.Evidence["score"])
}

// FreshnessCheckSuite tests the load age rule chain, including the negative
// age edge case and the parse failure path that feeds the engine fault
// boundary.
type FreshnessCheckSuite struct {
	suite.Suite
	cfg Config
	now time.Time
}

func TestFreshnessCheckSuite(t *testing.T) {
	suite.Run(t, new(FreshnessCheckSuite))
}

func (s *FreshnessCheckSuite) SetupTest() {
	s.cfg = Config{}.withDefaults()
	s.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func (s *FreshnessCheckSuite) postedAgo(age time.Duration) string {
	return s.now.Add(-age).Format(time.RFC3339)
}

func (s *FreshnessCheckSuite) TestThresholds() {
	s.Run("recent load passes", func() {
		out, err := checkFreshness(s.postedAgo(10*time.Minute), s.now, s.cfg)
		s.Require().NoError(err)
		s.Equal(DispositionPass, out.Disposition)
		s.Equal(int64(10), out.Evidence["age_minutes"])
	})

	s.Run("age at warn threshold passes", func() {
		out, err := checkFreshness(s.postedAgo(30*time.Minute), s.now, s.cfg)
		s.Require().NoError(err)
		s.Equal(DispositionPass, out.Disposition)
	})

	s.Run("age past warn threshold warns", func() {
		out, err := checkFreshness(s.postedAgo(45*time.Minute), s.now, s.cfg)
		s.Require().NoError(err)
		s.Equal(DispositionWarn, out.Disposition)
		s.Contains(out.Reason, "stale")
	})

	s.Run("age at reject threshold still warns", func() {
		out, err := checkFreshness(s.postedAgo(60*time.Minute), s.now, s.cfg)
		s.Require().NoError(err)
		s.Equal(DispositionWarn, out.Disposition)
	})

	s.Run("age past reject threshold rejects", func() {
		out, err := checkFreshness(s.postedAgo(90*time.Minute), s.now, s.cfg)
		s.Require().NoError(err)
		s.Equal(DispositionReject, out.Disposition)
		s.Contains(out.Reason, "too old")
		s.Equal(int64(90), out.Evidence["age_minutes"])
	})

	s.Run("future posting passes with negative age", func() {
		out, err := checkFreshness(s.postedAgo(-20*time.Minute), s.now, s.cfg)
		s.Require().NoError(err)
		s.Equal(DispositionPass, out.Disposition)
		s.Equal(int64(-20), out.Evidence["age_minutes"])
	})
}

func (s *FreshnessCheckSuite) TestUnparseableTimestamp() {
	_, err := checkFreshness("yesterday around noon", s.now, s.cfg)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
