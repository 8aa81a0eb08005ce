package usecase

import (
	"car-rental/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (jwt.UserData, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (jwt.UserData, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return jwt.UserData{}, err
	}
	return claims.Data, nil
}
