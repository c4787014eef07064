package jwttoken

import "loadguard/internal/platform/middleware"

// MiddlewareAdapter bridges the token service to the middleware.TokenValidator
// interface without the middleware package importing jwt types.
type MiddlewareAdapter struct {
	service *Service
}

// NewMiddlewareAdapter wraps a token service for use by middleware.RequireAuth.
func NewMiddlewareAdapter(service *Service) *MiddlewareAdapter {
	return &MiddlewareAdapter{service: service}
}

// ValidateToken implements middleware.TokenValidator.
func (a *MiddlewareAdapter) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.TokenClaims{
		ClientID: claims.ClientID,
		JTI:      claims.ID,
	}, nil
}

var _ middleware.TokenValidator = (*MiddlewareAdapter)(nil)
