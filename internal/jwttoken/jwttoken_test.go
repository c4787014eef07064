package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "loadguard/pkg/domain-errors"
)

type TokenSuite struct {
	suite.Suite
	service *Service
}

func TestTokenSuite(t *testing.T) {
	suite.Run(t, new(TokenSuite))
}

func (s *TokenSuite) SetupTest() {
	s.service = NewService("test-signing-key", "loadguard", time.Hour)
}

func (s *TokenSuite) TestRoundTrip() {
	token, err := s.service.GenerateToken("dispatch-desk")
	s.Require().NoError(err)
	s.NotEmpty(token)

	claims, err := s.service.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal("dispatch-desk", claims.ClientID)
	s.Equal("loadguard", claims.Issuer)
	s.NotEmpty(claims.ID)
}

func (s *TokenSuite) TestRejections() {
	s.Run("token signed with a different key", func() {
		other := NewService("other-key", "loadguard", time.Hour)
		token, err := other.GenerateToken("dispatch-desk")
		s.Require().NoError(err)

		_, err = s.service.ValidateToken(token)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("expired token", func() {
		expired := NewService("test-signing-key", "loadguard", -time.Minute)
		token, err := expired.GenerateToken("dispatch-desk")
		s.Require().NoError(err)

		_, err = s.service.ValidateToken(token)
		s.Require().Error(err)
	})

	s.Run("wrong issuer", func() {
		other := NewService("test-signing-key", "someone-else", time.Hour)
		token, err := other.GenerateToken("dispatch-desk")
		s.Require().NoError(err)

		_, err = s.service.ValidateToken(token)
		s.Require().Error(err)
	})

	s.Run("garbage token", func() {
		_, err := s.service.ValidateToken("not.a.token")
		s.Require().Error(err)
	})
}
